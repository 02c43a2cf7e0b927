package runtime

import (
	"fmt"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindObject
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

//-----------------------------------------------------------------------------
// Objects
//-----------------------------------------------------------------------------

// ObjectValue maps property names to values. Keys records insertion order so
// display output is deterministic.
type ObjectValue struct {
	Properties map[string]Value
	Keys       []string
}

func NewObjectValue() *ObjectValue {
	return &ObjectValue{Properties: make(map[string]Value)}
}

func (v *ObjectValue) Kind() Kind { return KindObject }

// Set stores a property; a repeated key keeps its original position.
func (v *ObjectValue) Set(key string, value Value) {
	if v.Properties == nil {
		v.Properties = make(map[string]Value)
	}
	if _, exists := v.Properties[key]; !exists {
		v.Keys = append(v.Keys, key)
	}
	v.Properties[key] = value
}

func (v *ObjectValue) Get(key string) (Value, bool) {
	val, ok := v.Properties[key]
	return val, ok
}

//-----------------------------------------------------------------------------
// Callables
//-----------------------------------------------------------------------------

// FunctionValue is a user function closed over its declaration environment.
type FunctionValue struct {
	Name       string
	Parameters []string
	Body       []ast.Statement
	Closure    *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// NativeCallContext is handed to every native call.
type NativeCallContext struct {
	Env *Environment
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

type NativeFunctionValue struct {
	Name string
	Impl NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

// IsCallable reports whether v can be the callee of a call expression.
func IsCallable(v Value) bool {
	switch v.(type) {
	case *FunctionValue, NativeFunctionValue:
		return true
	default:
		return false
	}
}
