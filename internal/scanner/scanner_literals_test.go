package scanner_test

import (
	"testing"

	"github.com/cwbudde/jlox/internal/scanner"
	"github.com/cwbudde/jlox/pkg/token"
)

func TestScanStringLiteral(t *testing.T) {
	toks := scanAll(t, `"hello world"`)
	if toks[0].Type != token.STRING {
		t.Fatalf("expected STRING, got %s", toks[0].Type)
	}
	if toks[0].Literal != "hello world" {
		t.Fatalf("expected unquoted literal, got %q", toks[0].Literal)
	}
}

func TestScanMultilineString(t *testing.T) {
	toks := scanAll(t, "\"line1\nline2\"\nprint 1;")
	if toks[0].Type != token.STRING {
		t.Fatalf("expected STRING, got %s", toks[0].Type)
	}
	// the print token after the string literal must be on line 3
	if toks[1].Line != 3 {
		t.Fatalf("expected print on line 3 after embedded newline, got %d", toks[1].Line)
	}
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	var sink fakeSink
	toks := scanner.New(`"never closed`, &sink).ScanTokens()
	if len(sink.errs) != 1 || sink.errs[0] != "Unterminated string." {
		t.Fatalf("expected unterminated string error, got %v", sink.errs)
	}
	if !toks[len(toks)-1].IsEOF() {
		t.Fatalf("scanner must still terminate with EOF")
	}
}

func TestScanIntegerLiteral(t *testing.T) {
	toks := scanAll(t, "1234")
	if toks[0].Type != token.NUMBER || toks[0].Literal.(float64) != 1234 {
		t.Fatalf("got %v", toks[0])
	}
}

func TestScanFloatLiteral(t *testing.T) {
	toks := scanAll(t, "12.34")
	if toks[0].Type != token.NUMBER || toks[0].Literal.(float64) != 12.34 {
		t.Fatalf("got %v", toks[0])
	}
}

func TestScanNumberDotNotFollowedByDigitStopsNumber(t *testing.T) {
	// "1." is not a valid trailing fragment: the '.' belongs to a
	// subsequent DOT token (e.g. method call on a number literal).
	toks := scanAll(t, "1.method")
	if toks[0].Type != token.NUMBER || toks[0].Literal.(float64) != 1 {
		t.Fatalf("expected bare integer literal, got %v", toks[0])
	}
	if toks[1].Type != token.DOT {
		t.Fatalf("expected DOT after integer, got %s", toks[1].Type)
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks := scanAll(t, "var foo_bar = class")
	want := []token.Type{token.VAR, token.IDENTIFIER, token.EQUAL, token.CLASS, token.EOF}
	got := typesOf(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
