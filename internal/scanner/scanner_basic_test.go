package scanner_test

import (
	"testing"

	"github.com/cwbudde/jlox/internal/scanner"
	"github.com/cwbudde/jlox/pkg/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	var buf fakeSink
	toks := scanner.New(src, &buf).ScanTokens()
	if len(buf.errs) > 0 {
		t.Fatalf("unexpected scanner errors: %v", buf.errs)
	}
	return toks
}

type fakeSink struct {
	errs []string
}

func (f *fakeSink) Error(line int, message string) {
	f.errs = append(f.errs, message)
}

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tk := range toks {
		out[i] = tk.Type
	}
	return out
}

func TestScanPunctuation(t *testing.T) {
	toks := scanAll(t, "(){},.-+;*")
	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.EOF,
	}
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	toks := scanAll(t, "! != = == < <= > >=")
	want := []token.Type{
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.EOF,
	}
	got := typesOf(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanCommentsAreIgnored(t *testing.T) {
	toks := scanAll(t, "// a comment\nprint 1;")
	if toks[0].Type != token.PRINT {
		t.Fatalf("expected comment to be skipped, got %s first", toks[0].Type)
	}
	if toks[0].Line != 2 {
		t.Fatalf("expected print on line 2, got line %d", toks[0].Line)
	}
}

func TestScanSlashIsDivision(t *testing.T) {
	toks := scanAll(t, "a / b")
	if typesOf(toks)[1] != token.SLASH {
		t.Fatalf("expected SLASH token, got %s", toks[1].Type)
	}
}

func TestScanEOFAlwaysTerminal(t *testing.T) {
	toks := scanAll(t, "")
	if len(toks) != 1 || !toks[0].IsEOF() {
		t.Fatalf("empty source should scan to a single EOF token, got %v", toks)
	}
}

func TestScanLineTrackingAcrossNewlines(t *testing.T) {
	toks := scanAll(t, "var a = 1;\nvar b = 2;\n")
	var lastLine int
	for _, tk := range toks {
		if tk.Line < lastLine {
			t.Fatalf("line numbers went backwards: %d after %d", tk.Line, lastLine)
		}
		lastLine = tk.Line
	}
}

func TestScanColumnTracksWithinLine(t *testing.T) {
	toks := scanAll(t, "var ab = 12;")
	// var(1) ab(5) =(8) 12(10) ;(12) EOF(13)
	want := []int{1, 5, 8, 10, 12, 13}
	for i, col := range want {
		if toks[i].Column != col {
			t.Errorf("token %d (%s): got column %d, want %d", i, toks[i].Type, toks[i].Column, col)
		}
	}
}

func TestScanColumnResetsAfterNewline(t *testing.T) {
	toks := scanAll(t, "var a = 1;\n  b;")
	// second statement starts on line 2; "b" sits at column 3 after two
	// leading spaces.
	var secondLineTok *token.Token
	for i := range toks {
		if toks[i].Line == 2 && toks[i].Type == token.IDENTIFIER {
			secondLineTok = &toks[i]
			break
		}
	}
	if secondLineTok == nil {
		t.Fatalf("expected an identifier token on line 2, got %v", toks)
	}
	if secondLineTok.Column != 3 {
		t.Fatalf("expected column 3 for indented identifier, got %d", secondLineTok.Column)
	}
}
