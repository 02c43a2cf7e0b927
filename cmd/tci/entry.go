package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/driver"
	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/runtime"
)

func runEntry(args []string, opts cliOptions) int {
	if len(args) != 1 {
		if len(args) == 0 {
			fmt.Fprintln(opts.stderr, "tci run requires a file or git source")
		} else {
			fmt.Fprintf(opts.stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		}
		printUsage(opts.stderr)
		return exitUsage
	}
	target := args[0]

	cfg, err := loadConfig(opts, configSearchStart(target))
	if err != nil {
		fmt.Fprintf(opts.stderr, "failed to load config: %v\n", err)
		return exitError
	}
	src, err := driver.ReadSource(target, cfg.CacheDir)
	if err != nil {
		fmt.Fprintln(opts.stderr, err)
		return exitError
	}

	logger := newLogger(opts)
	session, err := driver.NewSession(cfg, opts.stdout, logger)
	if err != nil {
		fmt.Fprintf(opts.stderr, "failed to start interpreter: %v\n", err)
		return exitError
	}
	if logger != nil {
		logger.Debug("running", slog.String("source", src.Name))
	}
	val, err := session.Run(src.Text)
	if err != nil {
		fmt.Fprintf(opts.stderr, "%s: %s\n", src.Name, driver.Describe(err))
		return exitError
	}
	if _, isNull := val.(runtime.NullValue); !isNull {
		fmt.Fprintln(opts.stdout, runtime.Format(val))
	}
	return exitOK
}

// configSearchStart picks where to look for tci.yml: next to a local script,
// or the working directory for git sources.
func configSearchStart(target string) string {
	if strings.HasPrefix(target, driver.GitSourcePrefix) {
		return "."
	}
	return filepath.Dir(target)
}

func loadConfig(opts cliOptions, start string) (*driver.Config, error) {
	if opts.configPath != "" {
		return driver.LoadConfig(opts.configPath)
	}
	path, err := driver.FindConfig(start)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return driver.DefaultConfig(), nil
	}
	return driver.LoadConfig(path)
}

func newLogger(opts cliOptions) *slog.Logger {
	if !opts.verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(opts.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
