// Package runner wires the scanner, parser, resolver, and evaluator
// together into the single pipeline the CLI and the embeddable facade
// both drive, never executing the program once a preceding pass has
// recorded a diagnostic.
package runner

import (
	"github.com/cwbudde/jlox/internal/errsink"
	"github.com/cwbudde/jlox/internal/interp/evaluator"
	"github.com/cwbudde/jlox/internal/parser"
	"github.com/cwbudde/jlox/internal/resolver"
	"github.com/cwbudde/jlox/internal/scanner"
)

// Run scans, parses, resolves, and (if no static error was recorded)
// interprets source against interp, reporting every diagnostic to sink.
// It never executes the program when a lexical, syntax, or resolution
// error was recorded.
func Run(source string, sink *errsink.Sink, interp *evaluator.Interpreter) {
	sink.SetSource(source)

	tokens := scanner.New(source, sink).ScanTokens()
	if sink.HadError() {
		return
	}

	stmts := parser.New(tokens, sink).Parse()
	if sink.HadError() {
		return
	}

	locals := resolver.New(sink).Resolve(stmts)
	if sink.HadError() {
		return
	}

	interp.SetLocals(locals)
	interp.Interpret(stmts, sink)
}
