package driver

import (
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/ast"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/interpreter"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

// Session is one interpreter configured from a Config. Bindings made by one
// Run call stay visible to the next.
type Session struct {
	config *Config
	interp *interpreter.Interpreter
}

// NewSession builds an interpreter with the configured natives, globals and
// call depth. Native output goes to stdout.
func NewSession(cfg *Config, stdout io.Writer, logger *slog.Logger) (*Session, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	all := interpreter.StandardNatives(stdout, time.Now)
	natives := all
	if cfg.Natives != nil {
		natives = make(map[string]runtime.NativeFunc, len(cfg.Natives))
		for _, name := range cfg.Natives {
			if impl, ok := all[name]; ok {
				natives[name] = impl
			}
		}
	}

	interp, err := interpreter.New(interpreter.Options{
		Natives:      natives,
		Logger:       logger,
		MaxCallDepth: cfg.MaxCallDepth,
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cfg.Globals))
	for name := range cfg.Globals {
		names = append(names, name)
	}
	sort.Strings(names)
	global := interp.GlobalEnvironment()
	for _, name := range names {
		if _, err := global.Declare(name, runtime.NumberValue{Val: cfg.Globals[name]}, true); err != nil {
			return nil, err
		}
	}

	if logger != nil {
		logger.Debug("session ready",
			slog.String("config", cfg.Path),
			slog.Int("natives", len(natives)),
			slog.Int("globals", len(names)))
	}
	return &Session{config: cfg, interp: interp}, nil
}

// Config returns the settings the session was built from.
func (s *Session) Config() *Config {
	return s.config
}

// Interpreter exposes the underlying interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Run parses and evaluates source in the session's root environment.
func (s *Session) Run(source string) (runtime.Value, error) {
	return s.interp.EvaluateSource(source)
}

// RunProgram evaluates an already parsed program.
func (s *Session) RunProgram(program *ast.Program) (runtime.Value, error) {
	return s.interp.EvaluateProgram(program)
}
