package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const cliToolVersion = "tci 0.1.0-dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// cliOptions are the flags accepted before the subcommand.
type cliOptions struct {
	configPath string
	verbose    bool
	stdout     io.Writer
	stderr     io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr)
		return exitUsage
	}
	opts.stdout, opts.stderr = stdout, stderr
	if len(remaining) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		printUsage(stdout)
		return exitOK
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return exitOK
	case "run":
		return runEntry(remaining[1:], opts)
	case "repl":
		return runRepl(remaining[1:], opts)
	case "parse":
		return runParse(remaining[1:], opts)
	default:
		return runEntry(remaining, opts)
	}
}

func parseGlobalFlags(args []string) (cliOptions, []string, error) {
	var opts cliOptions
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "--") {
			remaining = append(remaining, args[i:]...)
			break
		}
		switch {
		case arg == "--verbose":
			opts.verbose = true
		case arg == "--config":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--config expects a value")
			}
			opts.configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
			if opts.configPath == "" {
				return opts, nil, fmt.Errorf("--config expects a value")
			}
		default:
			remaining = append(remaining, args[i:]...)
			return opts, remaining, nil
		}
	}
	return opts, remaining, nil
}
