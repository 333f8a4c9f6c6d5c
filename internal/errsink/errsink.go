// Package errsink implements the Lox error-reporting collaborator: it
// receives (line, where, message) tuples from the scanner, parser,
// resolver, and interpreter, formats them into the three fixed wire
// formats Lox's tests assert on, and tracks the hadError/hadRuntimeError
// flags the driver uses to pick an exit code. The richer multi-line,
// caret-pointing rendering is kept behind Sink.Verbose for the --verbose
// CLI flag instead of being the default, since the plain one-line form is
// what callers assert on.
package errsink

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/jlox/pkg/token"
	"golang.org/x/text/width"
)

// Sink accumulates diagnostics and the two error flags the CLI driver
// consults to choose an exit code.
type Sink struct {
	out             io.Writer
	source          string
	Verbose         bool
	hadError        bool
	hadRuntimeError bool
}

// New creates a Sink that writes formatted diagnostics to out.
func New(out io.Writer) *Sink {
	return &Sink{out: out}
}

// SetSource attaches the current unit's source text, used only by the
// verbose caret-pointing renderer.
func (s *Sink) SetSource(source string) {
	s.source = source
}

// HadError reports whether a lexical or static error has been recorded
// since the last Reset.
func (s *Sink) HadError() bool { return s.hadError }

// HadRuntimeError reports whether RuntimeError has been called since the
// last Reset.
func (s *Sink) HadRuntimeError() bool { return s.hadRuntimeError }

// Reset clears hadError between REPL lines. hadRuntimeError is left
// untouched (the REPL never exits on it); once set, it stays set until
// ResetAll, so a caller that inspects it later still sees the earlier
// runtime error.
func (s *Sink) Reset() {
	s.hadError = false
}

// ResetAll clears both flags; used when embedding the interpreter and
// starting a fresh program.
func (s *Sink) ResetAll() {
	s.hadError = false
	s.hadRuntimeError = false
}

// Error reports a line-level error (used by the scanner, which has no
// token to point at yet). The caret, when rendered, points at column 1
// since no more precise position is available.
func (s *Sink) Error(line int, message string) {
	s.report(line, 1, "", message)
}

// ErrorAt reports an error located at a specific token (used by the
// parser and resolver).
func (s *Sink) ErrorAt(tok token.Token, message string) {
	if tok.Type == token.EOF {
		s.report(tok.Line, tok.Column, " at end", message)
	} else {
		s.report(tok.Line, tok.Column, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

// RuntimeErr is the non-local-exit payload the interpreter unwinds with;
// it is also the error type passed to RuntimeError.
type RuntimeErr struct {
	Message string
	Token   token.Token
}

func (e *RuntimeErr) Error() string { return e.Message }

// NewRuntimeError builds the unwind payload for a failed operation at tok.
func NewRuntimeError(tok token.Token, message string) *RuntimeErr {
	return &RuntimeErr{Token: tok, Message: message}
}

// RuntimeError reports a runtime error: "<message>\n[line L]" to stderr,
// and sets hadRuntimeError.
func (s *Sink) RuntimeError(err *RuntimeErr) {
	s.hadRuntimeError = true
	fmt.Fprintf(s.out, "%s\n[line %d]\n", err.Message, err.Token.Line)
	if s.Verbose && s.source != "" {
		column := err.Token.Column
		if column < 1 {
			column = 1
		}
		s.printCaret(err.Token.Line, column)
	}
}

func (s *Sink) report(line, column int, where, message string) {
	s.hadError = true
	fmt.Fprintf(s.out, "[line %d] Error%s: %s\n", line, where, message)
	if s.Verbose && s.source != "" {
		if column < 1 {
			column = 1
		}
		s.printCaret(line, column)
	}
}

// printCaret renders the offending source line with a caret under column,
// measuring display width with golang.org/x/text/width so wide runes
// (e.g. in a string literal's contents) don't throw the caret off.
func (s *Sink) printCaret(line, column int) {
	lines := strings.Split(s.source, "\n")
	if line < 1 || line > len(lines) {
		return
	}
	text := lines[line-1]
	fmt.Fprintf(s.out, "    %s\n", text)

	var pad strings.Builder
	pad.WriteString("    ")
	for i, r := range text {
		if i >= column-1 {
			break
		}
		if width.LookupRune(r).Kind() == width.EastAsianWide {
			pad.WriteString("  ")
		} else {
			pad.WriteString(" ")
		}
	}
	fmt.Fprintf(s.out, "%s^\n", pad.String())
}
