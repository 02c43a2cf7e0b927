package runtime

import "sort"

// NewGlobalEnvironment builds a root environment holding the constants true,
// false and null plus one constant per native function.
func NewGlobalEnvironment(natives map[string]NativeFunc) (*Environment, error) {
	env := NewEnvironment(nil)
	builtins := []struct {
		name  string
		value Value
	}{
		{"true", BoolValue{Val: true}},
		{"false", BoolValue{Val: false}},
		{"null", NullValue{}},
	}
	for _, b := range builtins {
		if _, err := env.Declare(b.name, b.value, true); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(natives))
	for name := range natives {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		native := NativeFunctionValue{Name: name, Impl: natives[name]}
		if _, err := env.Declare(name, native, true); err != nil {
			return nil, err
		}
	}
	return env, nil
}
