package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/jlox/internal/parser"
	"github.com/cwbudde/jlox/internal/scanner"
	"github.com/cwbudde/jlox/pkg/jlox"
	"github.com/cwbudde/jlox/pkg/printer"
	"github.com/cwbudde/jlox/pkg/token"
)

// runFile reads path, runs it as a single program, and returns the exit
// code: 65 if path cannot be read or a lexical/static error was recorded,
// 70 if a runtime error was recorded, 0 otherwise.
func runFile(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jlox: %v\n", err)
		return 65
	}
	source := string(content)

	if dumpAST {
		dumpProgramAST(source)
	}

	interp := jlox.New(os.Stdout, os.Stderr)
	interp.SetVerbose(verbose)
	return interp.RunFile(source)
}

// dumpProgramAST prints a scanned-and-parsed program's AST without
// resolving or running it, for the --dump-ast debugging flag. A parse
// error here is swallowed: the normal run that follows reports it.
func dumpProgramAST(source string) {
	sink := &silentSink{}
	tokens := scanner.New(source, sink).ScanTokens()
	stmts := parser.New(tokens, sink).Parse()
	fmt.Print(printer.Print(stmts))
}

// silentSink discards diagnostics; dumpProgramAST only wants the AST, and
// a second, real pass reports any error right after.
type silentSink struct{}

func (s *silentSink) Error(line int, message string)             {}
func (s *silentSink) ErrorAt(tok token.Token, message string)    {}
