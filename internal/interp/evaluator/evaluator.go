// Package evaluator walks a resolved AST and executes it against the
// runtime value model in the sibling runtime package: an
// expression-producing surface and a statement-executing one, sharing
// one Environment-threading style.
package evaluator

import (
	"io"
	"os"
	"time"

	"github.com/cwbudde/jlox/internal/errsink"
	"github.com/cwbudde/jlox/internal/interp/runtime"
	"github.com/cwbudde/jlox/pkg/ast"
	"github.com/cwbudde/jlox/pkg/token"
)

// Interpreter holds the mutable state a running Lox program needs: the
// root environment, the "current" environment at whatever point of the
// walk we're at, and the resolver's distance side table.
type Interpreter struct {
	globals     *runtime.Environment
	environment *runtime.Environment
	locals      map[int]int
	output      io.Writer
}

// New constructs an Interpreter with clock() pre-registered in globals,
// writing `print` output to os.Stdout. locals is the side table
// Resolver.Resolve produced for this program.
func New(locals map[int]int) *Interpreter {
	return NewWithOutput(locals, os.Stdout)
}

// NewWithOutput is New with an explicit output writer, so tests and the
// embeddable pkg/jlox facade can capture `print` output instead of
// letting it go to the process's stdout.
func NewWithOutput(locals map[int]int, output io.Writer) *Interpreter {
	globals := runtime.NewEnvironment()
	globals.Define("clock", &runtime.Native{
		NameHint: "clock",
		Arg:      0,
		Fn: func(args []runtime.Value) (runtime.Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})

	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      locals,
		output:      output,
	}
}

// Globals exposes the root environment, so a REPL driver can reuse the
// same Interpreter (and therefore the same global bindings) across lines.
func (in *Interpreter) Globals() *runtime.Environment { return in.globals }

// SetLocals replaces the resolver side table, used each time the runner
// resolves a fresh chunk of source against a long-lived Interpreter (REPL
// mode reuses one Interpreter, and therefore one globals environment,
// across lines).
func (in *Interpreter) SetLocals(locals map[int]int) { in.locals = locals }

// Output returns the writer `print` statements write to.
func (in *Interpreter) Output() io.Writer { return in.output }

// SetOutput redirects where `print` statements write.
func (in *Interpreter) SetOutput(w io.Writer) { in.output = w }

// Interpret executes a resolved program, reporting any runtime error to
// sink and stopping at the statement that raised it. It never panics:
// every non-local exit inside the walk arrives here as a plain Go error.
func (in *Interpreter) Interpret(stmts []ast.Stmt, sink *errsink.Sink) {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			if rerr, ok := err.(*errsink.RuntimeErr); ok {
				sink.RuntimeError(rerr)
				return
			}
			sink.RuntimeError(errsink.NewRuntimeError(token.Token{}, err.Error()))
			return
		}
	}
}

// ExecuteBlock implements runtime.Interpreter: run stmts against env,
// unconditionally restoring the previous environment on every exit path
// via defer — normal completion, a Return unwind, and a runtime-error
// unwind all take the same path out.
func (in *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *runtime.Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable implements the variable-lookup dichotomy shared by
// Variable and This (Super reads its frames directly in evalSuper): resolved locals bypass the chain walk
// entirely via GetAt, unresolved names fall back to globals.
func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (runtime.Value, error) {
	if distance, ok := in.locals[expr.ID()]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}
