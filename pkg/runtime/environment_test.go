package runtime

import (
	"errors"
	"reflect"
	"testing"
)

func TestDeclareAndLookup(t *testing.T) {
	env := NewEnvironment(nil)
	got, err := env.Declare("x", NumberValue{Val: 5}, false)
	if err != nil {
		t.Fatalf("declare: %v", err)
	}
	if got != (NumberValue{Val: 5}) {
		t.Fatalf("declare returned %#v", got)
	}
	val, err := env.Lookup("x")
	if err != nil || val != (NumberValue{Val: 5}) {
		t.Fatalf("lookup = %#v, %v", val, err)
	}
}

func TestRedeclareInSameScopeFails(t *testing.T) {
	env := NewEnvironment(nil)
	if _, err := env.Declare("x", NumberValue{Val: 1}, false); err != nil {
		t.Fatalf("declare: %v", err)
	}
	_, err := env.Declare("x", NumberValue{Val: 2}, false)
	var nameErr *NameError
	if !errors.As(err, &nameErr) || !nameErr.Redeclared {
		t.Fatalf("expected redeclaration NameError, got %v", err)
	}
	val, _ := env.Lookup("x")
	if val != (NumberValue{Val: 1}) {
		t.Fatalf("binding changed after failed redeclare: %#v", val)
	}
}

func TestShadowingInChildScope(t *testing.T) {
	root := NewEnvironment(nil)
	root.Declare("x", NumberValue{Val: 1}, true)
	child := NewEnvironment(root)
	if _, err := child.Declare("x", NumberValue{Val: 2}, false); err != nil {
		t.Fatalf("shadowing declare failed: %v", err)
	}
	inner, _ := child.Lookup("x")
	outer, _ := root.Lookup("x")
	if inner != (NumberValue{Val: 2}) || outer != (NumberValue{Val: 1}) {
		t.Fatalf("inner=%#v outer=%#v", inner, outer)
	}
	if child.Parent() != root || root.Parent() != nil {
		t.Fatalf("unexpected parent chain")
	}
}

func TestAssignUpdatesNearestOwner(t *testing.T) {
	root := NewEnvironment(nil)
	root.Declare("count", NumberValue{Val: 0}, false)
	child := NewEnvironment(NewEnvironment(root))
	if _, err := child.Assign("count", NumberValue{Val: 3}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	val, _ := root.Lookup("count")
	if val != (NumberValue{Val: 3}) {
		t.Fatalf("root count = %#v", val)
	}
	if child.HasInCurrentScope("count") {
		t.Fatalf("assign must not create a local binding")
	}
}

func TestAssignUndefinedFails(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Assign("missing", NullValue{})
	var nameErr *NameError
	if !errors.As(err, &nameErr) || nameErr.Redeclared {
		t.Fatalf("expected undefined NameError, got %v", err)
	}
	if got, want := err.Error(), "undefined variable 'missing'"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
	if env.Has("missing") {
		t.Fatalf("failed assign created a binding")
	}
}

func TestAssignConstantFails(t *testing.T) {
	root := NewEnvironment(nil)
	root.Declare("y", NumberValue{Val: 1}, true)
	child := NewEnvironment(root)
	_, err := child.Assign("y", NumberValue{Val: 2})
	var constErr *ConstError
	if !errors.As(err, &constErr) || constErr.Name != "y" {
		t.Fatalf("expected ConstError, got %v", err)
	}
	val, _ := root.Lookup("y")
	if val != (NumberValue{Val: 1}) {
		t.Fatalf("constant changed: %#v", val)
	}
	if !child.IsConstant("y") {
		t.Fatalf("IsConstant should see through the chain")
	}
}

func TestLookupUndefinedFails(t *testing.T) {
	_, err := NewEnvironment(nil).Lookup("ghost")
	var nameErr *NameError
	if !errors.As(err, &nameErr) || nameErr.Name != "ghost" {
		t.Fatalf("expected NameError, got %v", err)
	}
}

func TestKeysAndSnapshot(t *testing.T) {
	env := NewEnvironment(nil)
	env.Declare("b", NumberValue{Val: 2}, false)
	env.Declare("a", NumberValue{Val: 1}, false)
	if got := env.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("keys = %v", got)
	}
	snap := env.Snapshot()
	snap["c"] = NullValue{}
	if env.Has("c") {
		t.Fatalf("snapshot must be a copy")
	}
}

func TestNewGlobalEnvironment(t *testing.T) {
	called := false
	env, err := NewGlobalEnvironment(map[string]NativeFunc{
		"ping": func(*NativeCallContext, []Value) (Value, error) {
			called = true
			return NullValue{}, nil
		},
	})
	if err != nil {
		t.Fatalf("NewGlobalEnvironment: %v", err)
	}
	for name, want := range map[string]Value{
		"true":  BoolValue{Val: true},
		"false": BoolValue{Val: false},
		"null":  NullValue{},
	} {
		got, err := env.Lookup(name)
		if err != nil || got != want {
			t.Fatalf("%s = %#v, %v", name, got, err)
		}
		if !env.IsConstant(name) {
			t.Fatalf("%s should be constant", name)
		}
	}
	val, err := env.Lookup("ping")
	if err != nil {
		t.Fatalf("lookup ping: %v", err)
	}
	native, ok := val.(NativeFunctionValue)
	if !ok || native.Name != "ping" {
		t.Fatalf("ping = %#v", val)
	}
	native.Impl(&NativeCallContext{Env: env}, nil)
	if !called {
		t.Fatalf("native impl not wired")
	}
	if _, err := env.Assign("true", BoolValue{Val: false}); err == nil {
		t.Fatalf("expected reassigning true to fail")
	}
}

func TestNewGlobalEnvironmentRejectsShadowedBuiltin(t *testing.T) {
	_, err := NewGlobalEnvironment(map[string]NativeFunc{
		"null": func(*NativeCallContext, []Value) (Value, error) { return NullValue{}, nil },
	})
	var nameErr *NameError
	if !errors.As(err, &nameErr) {
		t.Fatalf("expected NameError for native named null, got %v", err)
	}
}
