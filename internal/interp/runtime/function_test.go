package runtime

import (
	"testing"

	"github.com/cwbudde/jlox/pkg/ast"
	"github.com/cwbudde/jlox/pkg/token"
)

// blockInterpreter is a minimal runtime.Interpreter that just runs the
// given statements against env, for exercising Function.Call in
// isolation from the full evaluator.
type blockInterpreter struct {
	stmts []func(env *Environment) error
}

func (b blockInterpreter) ExecuteBlock(_ []ast.Stmt, env *Environment) error {
	for _, fn := range b.stmts {
		if err := fn(env); err != nil {
			return err
		}
	}
	return nil
}

func TestFunctionArity(t *testing.T) {
	fn := &Function{Declaration: &ast.Function{
		Name:   token.New(token.IDENTIFIER, "f", nil, 1),
		Params: []token.Token{token.New(token.IDENTIFIER, "a", nil, 1), token.New(token.IDENTIFIER, "b", nil, 1)},
	}}
	if got := fn.Arity(); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestFunctionCallNormalReturnsNilOnFallthrough(t *testing.T) {
	fn := &Function{
		Declaration: &ast.Function{Name: token.New(token.IDENTIFIER, "f", nil, 1)},
		Closure:     NewEnvironment(),
	}
	interp := blockInterpreter{}

	v, err := fn.Call(interp, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Fatalf("got %v, want nil", v)
	}
}

func TestFunctionCallCatchesReturnSignal(t *testing.T) {
	fn := &Function{
		Declaration: &ast.Function{Name: token.New(token.IDENTIFIER, "f", nil, 1)},
		Closure:     NewEnvironment(),
	}
	interp := blockInterpreter{stmts: []func(env *Environment) error{
		func(env *Environment) error { return &ReturnSignal{Value: "hi"} },
	}}

	v, err := fn.Call(interp, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hi" {
		t.Fatalf("got %v, want hi", v)
	}
}

func TestFunctionCallInitializerAlwaysReturnsThis(t *testing.T) {
	closure := NewEnvironment()
	fn := &Function{
		Declaration:   &ast.Function{Name: token.New(token.IDENTIFIER, "init", nil, 1)},
		Closure:       closure,
		IsInitializer: true,
	}
	instance := NewInstance(&Class{Name: "Thing", Methods: map[string]*Function{}})
	bound := fn.Bind(instance)

	interp := blockInterpreter{stmts: []func(env *Environment) error{
		func(env *Environment) error { return &ReturnSignal{Value: nil} },
	}}

	v, err := bound.Call(interp, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != instance {
		t.Fatalf("got %v, want the bound instance", v)
	}
}

func TestFunctionBindCreatesNewClosureWithThis(t *testing.T) {
	closure := NewEnvironment()
	fn := &Function{Declaration: &ast.Function{Name: token.New(token.IDENTIFIER, "f", nil, 1)}, Closure: closure}
	instance := NewInstance(&Class{Name: "Thing", Methods: map[string]*Function{}})

	bound := fn.Bind(instance)

	if bound == fn {
		t.Fatal("Bind should return a distinct Function")
	}
	this, err := bound.Closure.Get(token.New(token.IDENTIFIER, "this", nil, 1))
	if err != nil || this != instance {
		t.Fatalf("got (%v, %v), want the bound instance", this, err)
	}
}

func TestFunctionParamsAreBoundInOrder(t *testing.T) {
	closure := NewEnvironment()
	fn := &Function{
		Declaration: &ast.Function{
			Name:   token.New(token.IDENTIFIER, "f", nil, 1),
			Params: []token.Token{token.New(token.IDENTIFIER, "a", nil, 1), token.New(token.IDENTIFIER, "b", nil, 1)},
		},
		Closure: closure,
	}

	var seenA, seenB Value
	interp := blockInterpreter{stmts: []func(env *Environment) error{
		func(env *Environment) error {
			seenA, _ = env.Get(token.New(token.IDENTIFIER, "a", nil, 1))
			seenB, _ = env.Get(token.New(token.IDENTIFIER, "b", nil, 1))
			return nil
		},
	}}

	if _, err := fn.Call(interp, []Value{1.0, 2.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenA != 1.0 || seenB != 2.0 {
		t.Fatalf("got a=%v b=%v, want a=1 b=2", seenA, seenB)
	}
}
