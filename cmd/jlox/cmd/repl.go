package cmd

import (
	"os"

	"github.com/cwbudde/jlox/pkg/jlox"
)

// runRepl drives the "> " prompt over stdin until EOF.
// hadRuntimeError is never consulted here: a runtime error in one line
// reports to stderr and the prompt simply resumes, the interpreter's
// global state carried over from the previous line.
func runRepl() int {
	interp := jlox.New(os.Stdout, os.Stderr)
	interp.SetVerbose(verbose)
	interp.RunRepl(os.Stdin, os.Stdout)
	return 0
}
