package driver

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
)

// EncodeAST writes program to w as "json" or "yaml". Both formats carry the
// same fields: every node has a type and a position.
func EncodeAST(w io.Writer, program *ast.Program, format string) error {
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ast: %w", err)
	}
	switch format {
	case "", "json":
		data = append(data, '\n')
		_, err := w.Write(data)
		return err
	case "yaml", "yml":
		var tree any
		if err := json.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("encode ast: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encode ast: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("encode ast: unsupported format %q (want json or yaml)", format)
	}
}
