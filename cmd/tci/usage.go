package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tci [--config=path] [--verbose] run <file.tci | git+url@rev#path>")
	fmt.Fprintln(w, "  tci [--config=path] [--verbose] <file.tci>")
	fmt.Fprintln(w, "  tci [--config=path] [--verbose] repl")
	fmt.Fprintln(w, "  tci parse [--format=json|yaml] <file.tci>")
	fmt.Fprintln(w, "  tci version")
	fmt.Fprintln(w, "  tci help")
}
