package evaluator

import (
	"fmt"

	"github.com/cwbudde/jlox/internal/errsink"
	"github.com/cwbudde/jlox/internal/interp/runtime"
	"github.com/cwbudde/jlox/pkg/ast"
	"github.com/cwbudde/jlox/pkg/token"
)

// evaluate dispatches on the dynamic expression type, the evaluator's
// half of the visitor-to-type-switch collapse described in pkg/ast's
// package doc.
func (in *Interpreter) evaluate(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.evaluate(e.Inner)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Variable:
		return in.lookupVariable(e.Name, e)
	case *ast.Assign:
		return in.evalAssign(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		return in.evalGet(e)
	case *ast.Set:
		return in.evalSet(e)
	case *ast.This:
		return in.lookupVariable(e.Keyword, e)
	case *ast.Super:
		return in.evalSuper(e)
	default:
		panic(fmt.Sprintf("evaluator: unhandled expression type %T", expr))
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (runtime.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, errsink.NewRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !runtime.IsTruthy(right), nil
	default:
		panic("evaluator: unreachable unary operator " + e.Op.Type.String())
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (runtime.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, errsink.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")
	case token.MINUS:
		ln, rn, err := bothNumbers(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case token.STAR:
		ln, rn, err := bothNumbers(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case token.SLASH:
		ln, rn, err := bothNumbers(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case token.GREATER:
		ln, rn, err := bothNumbers(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case token.GREATER_EQUAL:
		ln, rn, err := bothNumbers(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case token.LESS:
		ln, rn, err := bothNumbers(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case token.LESS_EQUAL:
		ln, rn, err := bothNumbers(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil
	case token.BANG_EQUAL:
		return !runtime.IsEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return runtime.IsEqual(left, right), nil
	default:
		panic("evaluator: unreachable binary operator " + e.Op.Type.String())
	}
}

func bothNumbers(op token.Token, left, right runtime.Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if lok && rok {
		return ln, rn, nil
	}
	return 0, 0, errsink.NewRuntimeError(op, "Operands must be numbers.")
}

func (in *Interpreter) evalLogical(e *ast.Logical) (runtime.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Type == token.OR {
		if runtime.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (runtime.Value, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := in.locals[e.ID()]; ok {
		in.environment.AssignAt(distance, e.Name.Lexeme, value)
	} else if err := in.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) evalCall(e *ast.Call) (runtime.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, len(e.Args))
	for i, argExpr := range e.Args {
		v, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, errsink.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, errsink.NewRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (runtime.Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.Instance)
	if !ok {
		return nil, errsink.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (in *Interpreter) evalSet(e *ast.Set) (runtime.Value, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*runtime.Instance)
	if !ok {
		return nil, errsink.NewRuntimeError(e.Name, "Only instances have fields.")
	}

	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

// evalSuper implements the super-method lookup: the superclass sits
// at the resolved distance, and `this` sits one scope further in (the
// resolver nests the "this" scope directly inside the "super" scope when
// resolving a class with a superclass — see resolver.resolveClass).
func (in *Interpreter) evalSuper(e *ast.Super) (runtime.Value, error) {
	distance := in.locals[e.ID()]
	superclassVal := in.environment.GetAt(distance, "super")
	superclass, _ := superclassVal.(*runtime.Class)

	thisVal := in.environment.GetAt(distance-1, "this")
	instance, _ := thisVal.(*runtime.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtime.UndefinedPropertyError(e.Method)
	}
	return method.Bind(instance), nil
}
