package runtime

import "testing"

func TestValueKinds(t *testing.T) {
	cases := []struct {
		value Value
		kind  Kind
	}{
		{NullValue{}, KindNull},
		{BoolValue{Val: true}, KindBool},
		{NumberValue{Val: 1}, KindNumber},
		{NewObjectValue(), KindObject},
		{&FunctionValue{Name: "f"}, KindFunction},
		{NativeFunctionValue{Name: "print"}, KindNativeFunction},
	}
	for _, tc := range cases {
		if tc.value.Kind() != tc.kind {
			t.Fatalf("%#v kind = %v, want %v", tc.value, tc.value.Kind(), tc.kind)
		}
	}
	if KindNativeFunction.String() != "native_function" || Kind(99).String() != "unknown_kind_99" {
		t.Fatalf("unexpected kind names")
	}
}

func TestObjectKeepsInsertionOrder(t *testing.T) {
	obj := NewObjectValue()
	obj.Set("b", NumberValue{Val: 1})
	obj.Set("a", NumberValue{Val: 2})
	obj.Set("b", NumberValue{Val: 3})
	if len(obj.Keys) != 2 || obj.Keys[0] != "b" || obj.Keys[1] != "a" {
		t.Fatalf("keys = %v", obj.Keys)
	}
	if v, ok := obj.Get("b"); !ok || v != (NumberValue{Val: 3}) {
		t.Fatalf("b = %#v", v)
	}
	if _, ok := obj.Get("c"); ok {
		t.Fatalf("unexpected property c")
	}
}

func TestFormat(t *testing.T) {
	inner := NewObjectValue()
	inner.Set("c", BoolValue{Val: false})
	obj := NewObjectValue()
	obj.Set("a", NumberValue{Val: 1})
	obj.Set("b", inner)
	obj.Set("f", &FunctionValue{Name: "add", Parameters: []string{"x", "y"}})

	cases := []struct {
		value Value
		want  string
	}{
		{NullValue{}, "null"},
		{nil, "null"},
		{BoolValue{Val: true}, "true"},
		{NumberValue{Val: 15}, "15"},
		{NumberValue{Val: 2.5}, "2.5"},
		{NumberValue{Val: -0.125}, "-0.125"},
		{NewObjectValue(), "{}"},
		{obj, "{ a: 1, b: { c: false }, f: fn add(x, y) }"},
		{NativeFunctionValue{Name: "print"}, "native fn print"},
		{foreignValue{}, "<number>"},
	}
	for _, tc := range cases {
		if got := Format(tc.value); got != tc.want {
			t.Fatalf("Format(%#v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

// foreignValue is a Value outside the built-in set.
type foreignValue struct{}

func (foreignValue) Kind() Kind { return KindNumber }

func TestIsCallable(t *testing.T) {
	if !IsCallable(&FunctionValue{}) || !IsCallable(NativeFunctionValue{}) {
		t.Fatalf("functions should be callable")
	}
	if IsCallable(NumberValue{}) || IsCallable(NewObjectValue()) {
		t.Fatalf("non-functions should not be callable")
	}
}
