package runtime

import "github.com/cwbudde/jlox/pkg/ast"

// Function is a Lox closure: a function declaration paired with the
// environment captured at the point it was defined. Multiple calls to
// the same Function share the same Closure, so mutations a call makes to
// a variable captured from an enclosing scope are visible to later
// calls — this is what lets a counter-generating closure work.
type Function struct {
	Declaration   *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string { return "<fn " + f.Declaration.Name.Lexeme + ">" }

// Call runs the function body against a fresh environment enclosed by
// the closure, with each parameter bound to the matching argument. A
// ReturnSignal unwinding out of ExecuteBlock supplies the result; falling
// off the end of the body returns nil (or `this`, for an initializer).
func (f *Function) Call(interp Interpreter, args []Value) (Value, error) {
	env := NewEnclosed(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if value, ok := AsReturn(err); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind produces a copy of f whose closure additionally binds "this" to
// instance — used both for ordinary method dispatch and to give an
// initializer's bound `init` a receiver.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosed(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}
