package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/driver"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/parser"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

// linePrompter is the part of *liner.State the loop needs.
type linePrompter interface {
	Prompt(prompt string) (string, error)
}

func runRepl(args []string, opts cliOptions) int {
	if len(args) > 0 {
		fmt.Fprintf(opts.stderr, "tci repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return exitUsage
	}
	cfg, err := loadConfig(opts, ".")
	if err != nil {
		fmt.Fprintf(opts.stderr, "failed to load config: %v\n", err)
		return exitError
	}
	session, err := driver.NewSession(cfg, opts.stdout, newLogger(opts))
	if err != nil {
		fmt.Fprintf(opts.stderr, "failed to start interpreter: %v\n", err)
		return exitError
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if path := cfg.REPL.History; path != "" {
		if f, err := os.Open(path); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(path); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintf(opts.stdout, "%s (type :quit to exit)\n", cliToolVersion)
	replLoop(ln, session, cfg.REPL, opts.stdout, opts.stderr, ln.AppendHistory)
	return exitOK
}

// replLoop evaluates one input at a time until end of input or :quit. Errors
// are reported and the loop carries on with the same root environment.
func replLoop(in linePrompter, session *driver.Session, cfg driver.REPLConfig, stdout, stderr io.Writer, remember func(string)) {
	for {
		code, ok := readByParseProbe(in, cfg.Prompt, cfg.Continuation)
		if !ok {
			fmt.Fprintln(stdout)
			return
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":exit":
				return
			case ":env":
				env := session.Interpreter().GlobalEnvironment()
				for _, name := range env.Keys() {
					val, _ := env.Lookup(name)
					fmt.Fprintf(stdout, "%s = %s\n", name, runtime.Format(val))
				}
			default:
				fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")
			}
			continue
		}

		if remember != nil {
			remember(strings.ReplaceAll(code, "\n", " "))
		}
		val, err := session.Run(code)
		if err != nil {
			fmt.Fprintln(stderr, driver.Describe(err))
			continue
		}
		fmt.Fprintln(stdout, runtime.Format(val))
	}
}

// readByParseProbe keeps prompting with the continuation prompt while the
// accumulated input only fails because it ended too early.
func readByParseProbe(in linePrompter, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}
		line, err := in.Prompt(current)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, perr := parser.ProduceAST(src); perr != nil && parser.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
