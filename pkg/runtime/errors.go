package runtime

import "fmt"

// NameError reports a lookup or assignment of an unbound name, or a second
// declaration of a name in the same environment.
type NameError struct {
	Name       string
	Redeclared bool
}

func (e *NameError) Error() string {
	if e.Redeclared {
		return fmt.Sprintf("cannot redeclare variable '%s'", e.Name)
	}
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// ConstError reports an assignment to a constant binding.
type ConstError struct {
	Name string
}

func (e *ConstError) Error() string {
	return fmt.Sprintf("cannot reassign constant '%s'", e.Name)
}
