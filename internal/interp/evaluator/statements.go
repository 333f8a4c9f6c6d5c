package evaluator

import (
	"fmt"

	"github.com/cwbudde/jlox/internal/errsink"
	"github.com/cwbudde/jlox/internal/interp/runtime"
	"github.com/cwbudde/jlox/pkg/ast"
)

// execute dispatches on the dynamic statement type, the statement half of
// the visitor-to-type-switch collapse.
func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err
	case *ast.Print:
		value, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.output, runtime.Stringify(value))
		return nil
	case *ast.Var:
		var value runtime.Value
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil
	case *ast.Block:
		return in.ExecuteBlock(s.Stmts, runtime.NewEnclosed(in.environment))
	case *ast.If:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if runtime.IsTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil
	case *ast.While:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !runtime.IsTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		fn := &runtime.Function{Declaration: s, Closure: in.environment}
		in.environment.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		var value runtime.Value
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &runtime.ReturnSignal{Value: value}
	case *ast.Class:
		return in.executeClass(s)
	default:
		panic(fmt.Sprintf("evaluator: unhandled statement type %T", stmt))
	}
}

// executeClass implements the two-stage class binding: the name is
// defined as nil before the superclass expression is evaluated (so a
// class can refer to itself, though nothing in Lox actually requires
// that), and methods close over an environment with "super" bound when
// the class has one.
func (in *Interpreter) executeClass(s *ast.Class) error {
	in.environment.Define(s.Name.Lexeme, nil)

	var superclass *runtime.Class
	if s.Superclass != nil {
		value, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := value.(*runtime.Class)
		if !ok {
			return errsink.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	classEnv := in.environment
	if s.Superclass != nil {
		classEnv = runtime.NewEnclosed(in.environment)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*runtime.Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &runtime.Function{
			Declaration:   method,
			Closure:       classEnv,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	class := &runtime.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return in.environment.Assign(s.Name, class)
}
