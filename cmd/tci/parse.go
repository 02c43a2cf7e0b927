package main

import (
	"fmt"
	"strings"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/driver"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/parser"
)

func runParse(args []string, opts cliOptions) int {
	format := "json"
	var targets []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--format":
			if i+1 >= len(args) {
				fmt.Fprintln(opts.stderr, "--format expects a value")
				return exitUsage
			}
			format = args[i+1]
			i++
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
		default:
			targets = append(targets, arg)
		}
	}
	switch format {
	case "json", "yaml":
	default:
		fmt.Fprintf(opts.stderr, "unknown --format value '%s' (expected json or yaml)\n", format)
		return exitUsage
	}
	if len(targets) != 1 {
		fmt.Fprintln(opts.stderr, "tci parse requires exactly one file")
		printUsage(opts.stderr)
		return exitUsage
	}

	cfg, err := loadConfig(opts, configSearchStart(targets[0]))
	if err != nil {
		fmt.Fprintf(opts.stderr, "failed to load config: %v\n", err)
		return exitError
	}
	src, err := driver.ReadSource(targets[0], cfg.CacheDir)
	if err != nil {
		fmt.Fprintln(opts.stderr, err)
		return exitError
	}
	program, err := parser.ProduceAST(src.Text)
	if err != nil {
		fmt.Fprintf(opts.stderr, "%s: %s\n", src.Name, driver.Describe(err))
		return exitError
	}
	if err := driver.EncodeAST(opts.stdout, program, format); err != nil {
		fmt.Fprintln(opts.stderr, err)
		return exitError
	}
	return exitOK
}
