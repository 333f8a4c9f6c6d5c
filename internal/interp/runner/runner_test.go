package runner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/jlox/internal/errsink"
	"github.com/cwbudde/jlox/internal/interp/evaluator"
)

func TestRunHappyPath(t *testing.T) {
	var errBuf, outBuf bytes.Buffer
	sink := errsink.New(&errBuf)
	interp := evaluator.NewWithOutput(nil, &outBuf)

	Run(`print "hi";`, sink, interp)

	if sink.HadError() || sink.HadRuntimeError() {
		t.Fatalf("unexpected error output: %s", errBuf.String())
	}
	if strings.TrimSpace(outBuf.String()) != "hi" {
		t.Fatalf("got %q, want hi", outBuf.String())
	}
}

func TestRunSkipsExecutionOnParseError(t *testing.T) {
	var errBuf, outBuf bytes.Buffer
	sink := errsink.New(&errBuf)
	interp := evaluator.NewWithOutput(nil, &outBuf)

	Run(`print;`, sink, interp)

	if !sink.HadError() {
		t.Fatal("expected a parse error")
	}
	if outBuf.Len() != 0 {
		t.Fatalf("expected no output since the pipeline should stop before interpreting, got %q", outBuf.String())
	}
}

func TestRunReusesGlobalsAcrossCalls(t *testing.T) {
	var errBuf, outBuf bytes.Buffer
	sink := errsink.New(&errBuf)
	interp := evaluator.NewWithOutput(nil, &outBuf)

	Run(`var count = 0;`, sink, interp)
	sink.Reset()
	Run(`count = count + 1; print count;`, sink, interp)

	if sink.HadError() || sink.HadRuntimeError() {
		t.Fatalf("unexpected error output: %s", errBuf.String())
	}
	if strings.TrimSpace(outBuf.String()) != "1" {
		t.Fatalf("got %q, want 1 (globals must persist across Run calls)", outBuf.String())
	}
}

func TestRuntimeErrorReporting(t *testing.T) {
	var errBuf, outBuf bytes.Buffer
	sink := errsink.New(&errBuf)
	interp := evaluator.NewWithOutput(nil, &outBuf)

	Run(`print 1 + "a";`, sink, interp)

	if !sink.HadRuntimeError() {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errBuf.String(), "Operands must be two numbers or two strings.") {
		t.Fatalf("got %q, missing expected message", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "[line 1]") {
		t.Fatalf("got %q, missing line annotation", errBuf.String())
	}
}
