package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/interpreter"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/lexer"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "tci.yml"

// Config holds the interpreter settings read from tci.yml.
type Config struct {
	// Path is the absolute path of the loaded file, empty for DefaultConfig.
	Path string

	REPL REPLConfig
	// Globals are extra numeric constants declared in the root environment.
	Globals map[string]float64
	// Natives selects the builtins to expose; nil exposes all of them.
	Natives      []string
	MaxCallDepth int
	CacheDir     string
}

// REPLConfig configures the interactive prompt.
type REPLConfig struct {
	Prompt       string
	Continuation string
	// History is the liner history file; empty disables history.
	History string
}

type configFile struct {
	REPL         *replFile          `yaml:"repl"`
	Globals      map[string]float64 `yaml:"globals"`
	Natives      *[]string          `yaml:"natives"`
	MaxCallDepth *int               `yaml:"max_call_depth"`
	CacheDir     string             `yaml:"cache_dir"`
}

type replFile struct {
	Prompt       *string `yaml:"prompt"`
	Continuation *string `yaml:"continuation"`
	History      *string `yaml:"history"`
}

// ValidationError aggregates every problem found in a config file.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no tci.yml is present.
func DefaultConfig() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:       "> ",
			Continuation: "... ",
			History:      defaultHistoryPath(),
		},
		Globals:      map[string]float64{},
		MaxCallDepth: interpreter.DefaultMaxCallDepth,
		CacheDir:     defaultCacheDir(),
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".tci_history")
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return filepath.Join(os.TempDir(), "tci-cache")
	}
	return filepath.Join(dir, "tci")
}

// LoadConfig parses and validates a tci.yml file. Keys left out keep their
// DefaultConfig values; relative paths resolve against the file's directory.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw configFile) toConfig(absPath string) *Config {
	cfg := DefaultConfig()
	cfg.Path = absPath
	baseDir := filepath.Dir(absPath)

	if raw.REPL != nil {
		if raw.REPL.Prompt != nil {
			cfg.REPL.Prompt = *raw.REPL.Prompt
		}
		if raw.REPL.Continuation != nil {
			cfg.REPL.Continuation = *raw.REPL.Continuation
		}
		if raw.REPL.History != nil {
			cfg.REPL.History = resolveRelative(baseDir, *raw.REPL.History)
		}
	}
	if raw.Globals != nil {
		cfg.Globals = raw.Globals
	}
	if raw.Natives != nil {
		cfg.Natives = append([]string{}, (*raw.Natives)...)
	}
	if raw.MaxCallDepth != nil {
		cfg.MaxCallDepth = *raw.MaxCallDepth
	}
	if dir := strings.TrimSpace(raw.CacheDir); dir != "" {
		cfg.CacheDir = resolveRelative(baseDir, dir)
	}
	return cfg
}

func resolveRelative(baseDir, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func (c *Config) validate() error {
	var errs ValidationError

	known := make(map[string]bool)
	for _, name := range interpreter.StandardNativeNames() {
		known[name] = true
	}
	seen := make(map[string]bool)
	for i, name := range c.Natives {
		switch {
		case !known[name]:
			errs.Issues = append(errs.Issues, fmt.Sprintf("natives[%d]: unknown native %q", i, name))
		case seen[name]:
			errs.Issues = append(errs.Issues, fmt.Sprintf("natives[%d]: duplicate native %q", i, name))
		}
		seen[name] = true
	}

	names := make([]string, 0, len(c.Globals))
	for name := range c.Globals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		switch {
		case !isIdentifier(name):
			errs.Issues = append(errs.Issues, fmt.Sprintf("globals.%s: not a valid identifier", name))
		case isReservedGlobal(name):
			errs.Issues = append(errs.Issues, fmt.Sprintf("globals.%s: name is reserved", name))
		}
	}

	if c.MaxCallDepth < 1 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_call_depth must be at least 1, got %d", c.MaxCallDepth))
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func isIdentifier(name string) bool {
	tokens, err := lexer.Tokenize(name)
	if err != nil || len(tokens) != 2 {
		return false
	}
	return tokens[0].Type == lexer.Identifier && tokens[0].Value == name
}

func isReservedGlobal(name string) bool {
	switch name {
	case "true", "false", "null":
		return true
	}
	for _, native := range interpreter.StandardNativeNames() {
		if name == native {
			return true
		}
	}
	return false
}

// FindConfig walks from start up through its parents looking for tci.yml. It
// returns "" without error when no file exists.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", start, err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
