package interpreter

import (
	"io"
	"time"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

// StandardNatives returns the built-in native functions:
//
//	print(args...)  writes each argument followed by a space, then a newline
//	time()          wall clock in milliseconds
func StandardNatives(out io.Writer, now func() time.Time) map[string]runtime.NativeFunc {
	return map[string]runtime.NativeFunc{
		"print": func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
			for _, arg := range args {
				if _, err := io.WriteString(out, runtime.Format(arg)+" "); err != nil {
					return nil, err
				}
			}
			if _, err := io.WriteString(out, "\n"); err != nil {
				return nil, err
			}
			return runtime.NullValue{}, nil
		},
		"time": func(_ *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
			return runtime.NumberValue{Val: float64(now().UnixMilli())}, nil
		},
	}
}

// StandardNativeNames lists the names StandardNatives provides, sorted.
func StandardNativeNames() []string {
	return []string{"print", "time"}
}
