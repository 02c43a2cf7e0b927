package runtime

import (
	"fmt"
	"strings"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
)

// Format renders a value the way print displays it.
func Format(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch val := v.(type) {
	case nil, NullValue:
		b.WriteString("null")
	case BoolValue:
		if val.Val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case NumberValue:
		b.WriteString(ast.FormatNumber(val.Val))
	case *ObjectValue:
		if len(val.Keys) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{ ")
		for i, key := range val.Keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(key)
			b.WriteString(": ")
			writeValue(b, val.Properties[key])
		}
		b.WriteString(" }")
	case *FunctionValue:
		fmt.Fprintf(b, "fn %s(%s)", val.Name, strings.Join(val.Parameters, ", "))
	case NativeFunctionValue:
		b.WriteString("native fn ")
		b.WriteString(val.Name)
	default:
		fmt.Fprintf(b, "<%s>", v.Kind())
	}
}
