package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"

	"github.com/m0n0ph1/TS-CUSTOM-INTERPRETER/pkg/driver"
)

type scriptedPrompter struct {
	lines   []string
	prompts []string
}

func (s *scriptedPrompter) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if line == "^C" {
		return "", liner.ErrPromptAborted
	}
	return line, nil
}

func newReplSession(t *testing.T, out io.Writer) (*driver.Session, driver.REPLConfig) {
	t.Helper()
	cfg := driver.DefaultConfig()
	cfg.REPL.History = ""
	session, err := driver.NewSession(cfg, out, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session, cfg.REPL
}

func TestReplLoopPersistsAndRecovers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	session, cfg := newReplSession(t, &stdout)
	in := &scriptedPrompter{lines: []string{
		"let a = 2;",
		"fn double(x) {",
		"  x * 2",
		"}",
		"missing + 1",
		"double(a)",
		":quit",
		"unreachable",
	}}
	var history []string
	replLoop(in, session, cfg, &stdout, &stderr, func(s string) { history = append(history, s) })

	if got, want := stdout.String(), "2\nfn double(x)\n4\n"; got != want {
		t.Fatalf("stdout = %q, want %q", got, want)
	}
	if got, want := stderr.String(), "name error at 1:1: undefined variable 'missing'\n"; got != want {
		t.Fatalf("stderr = %q, want %q", got, want)
	}
	wantPrompts := []string{"> ", "> ", "... ", "... ", "> ", "> ", "> "}
	if strings.Join(in.prompts, "|") != strings.Join(wantPrompts, "|") {
		t.Fatalf("prompts = %q, want %q", in.prompts, wantPrompts)
	}
	if len(history) != 4 || history[1] != "fn double(x) {   x * 2 }" {
		t.Fatalf("history = %q", history)
	}
}

func TestReplLoopCommandsAndEOF(t *testing.T) {
	var stdout, stderr bytes.Buffer
	session, cfg := newReplSession(t, &stdout)
	in := &scriptedPrompter{lines: []string{"const k = 3;", "^C", "", ":env", ":nope"}}
	replLoop(in, session, cfg, &stdout, &stderr, nil)

	out := stdout.String()
	for _, want := range []string{"k = 3\n", "print = native fn print\n", "null = null\n", "unknown command. Type :quit to exit.\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stdout missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Fatalf("EOF should end with a newline: %q", out)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestReadByParseProbeReturnsPartialInputAtEOF(t *testing.T) {
	in := &scriptedPrompter{lines: []string{"fn f() {"}}
	code, ok := readByParseProbe(in, "> ", "... ")
	if !ok || code != "fn f() {" {
		t.Fatalf("code = %q, ok = %v", code, ok)
	}
	if _, ok := readByParseProbe(in, "> ", "... "); ok {
		t.Fatalf("expected end of input")
	}
}
