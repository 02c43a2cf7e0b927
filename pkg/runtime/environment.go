package runtime

import (
	"sort"
	"sync"
)

// Environment is one lexical scope. Lookups walk the parent chain; a name may
// be declared only once per environment but may shadow an outer binding.
type Environment struct {
	values    map[string]Value
	constants map[string]struct{}
	parent    *Environment
	mu        sync.RWMutex
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		constants: make(map[string]struct{}),
		parent:    parent,
	}
}

// Parent exposes the lexical parent (nil for the root).
func (e *Environment) Parent() *Environment {
	e.mu.RLock()
	parent := e.parent
	e.mu.RUnlock()
	return parent
}

// Declare binds name in this environment and returns the bound value.
func (e *Environment) Declare(name string, value Value, constant bool) (Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.values[name]; exists {
		return nil, &NameError{Name: name, Redeclared: true}
	}
	e.values[name] = value
	if constant {
		e.constants[name] = struct{}{}
	}
	return value, nil
}

// Assign updates the binding in the nearest environment that declares name.
func (e *Environment) Assign(name string, value Value) (Value, error) {
	owner := e.resolve(name)
	if owner == nil {
		return nil, &NameError{Name: name}
	}
	owner.mu.Lock()
	defer owner.mu.Unlock()
	if _, isConst := owner.constants[name]; isConst {
		return nil, &ConstError{Name: name}
	}
	owner.values[name] = value
	return value, nil
}

// Lookup retrieves a binding, searching outward through the scope chain.
func (e *Environment) Lookup(name string) (Value, error) {
	owner := e.resolve(name)
	if owner == nil {
		return nil, &NameError{Name: name}
	}
	owner.mu.RLock()
	value := owner.values[name]
	owner.mu.RUnlock()
	return value, nil
}

// resolve returns the nearest environment holding name, or nil.
func (e *Environment) resolve(name string) *Environment {
	for env := e; env != nil; {
		env.mu.RLock()
		_, ok := env.values[name]
		parent := env.parent
		env.mu.RUnlock()
		if ok {
			return env
		}
		env = parent
	}
	return nil
}

// Has reports whether the binding exists anywhere in the scope chain.
func (e *Environment) Has(name string) bool {
	return e.resolve(name) != nil
}

// HasInCurrentScope reports whether the binding exists in this environment.
func (e *Environment) HasInCurrentScope(name string) bool {
	e.mu.RLock()
	_, ok := e.values[name]
	e.mu.RUnlock()
	return ok
}

// IsConstant reports whether the nearest binding of name is constant.
func (e *Environment) IsConstant(name string) bool {
	owner := e.resolve(name)
	if owner == nil {
		return false
	}
	owner.mu.RLock()
	_, ok := owner.constants[name]
	owner.mu.RUnlock()
	return ok
}

// Keys returns this environment's own names in sorted order.
func (e *Environment) Keys() []string {
	e.mu.RLock()
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	e.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of this environment's own bindings.
func (e *Environment) Snapshot() map[string]Value {
	e.mu.RLock()
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	e.mu.RUnlock()
	return out
}
