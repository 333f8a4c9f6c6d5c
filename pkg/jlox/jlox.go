// Package jlox is the embeddable public facade over the scanner, parser,
// resolver, and evaluator: New creates a long-lived interpreter instance,
// Run executes one chunk of source against it, and RunRepl drives an
// interactive read-eval-print loop. This is the package an embedder
// (or the cmd/jlox CLI) imports instead of reaching into internal/.
package jlox

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cwbudde/jlox/internal/errsink"
	"github.com/cwbudde/jlox/internal/interp/evaluator"
	"github.com/cwbudde/jlox/internal/interp/runner"
)

// Interpreter is a reusable Lox runtime: one Environment/globals
// instance and error sink shared across every Run call made against it,
// so the REPL can reuse the same interpreter across lines.
type Interpreter struct {
	sink *errsink.Sink
	eval *evaluator.Interpreter
}

// New creates an Interpreter that writes `print` output to stdout and
// diagnostics to stderr.
func New(stdout, stderr io.Writer) *Interpreter {
	return &Interpreter{
		sink: errsink.New(stderr),
		eval: evaluator.NewWithOutput(nil, stdout),
	}
}

// HadError reports whether the most recent Run recorded a lexical or
// static error.
func (in *Interpreter) HadError() bool { return in.sink.HadError() }

// HadRuntimeError reports whether any Run on this Interpreter has
// recorded a runtime error; Run does not clear this flag.
func (in *Interpreter) HadRuntimeError() bool { return in.sink.HadRuntimeError() }

// SetVerbose toggles the richer caret-pointing diagnostic rendering.
func (in *Interpreter) SetVerbose(verbose bool) { in.sink.Verbose = verbose }

// Run executes source against the interpreter's persistent global state.
// A lexical, syntax, or resolution error in source prevents that source
// from running, but leaves previously-defined globals intact. Only
// hadError resets between calls (matching a fresh REPL line); a fresh
// embedding that wants both flags cleared should start a new Interpreter
// via New instead of reusing this one.
func (in *Interpreter) Run(source string) {
	in.sink.Reset()
	runner.Run(source, in.sink, in.eval)
}

// RunFile runs source as a single program and reports the process exit
// code: 65 if a static error was recorded, 70 if a runtime error was
// recorded, 0 otherwise.
func (in *Interpreter) RunFile(source string) int {
	in.Run(source)
	switch {
	case in.HadError():
		return 65
	case in.HadRuntimeError():
		return 70
	default:
		return 0
	}
}

// RunRepl drives an interactive "> " prompt over in, writing prompts to
// out, until in reaches EOF. hadError resets between lines;
// hadRuntimeError is never used to exit the loop.
func (in *Interpreter) RunRepl(input io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(input)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		in.Run(scanner.Text())
	}
}
