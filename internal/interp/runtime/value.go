// Package runtime defines the Lox runtime value universe — Nil, Bool,
// Number, String, Callable, and Instance — along with the Environment
// frame chain those values live in. It has no knowledge of how the AST is
// walked; that lives in the sibling evaluator package, kept separate so
// the value model could in principle be reused by other tooling without
// pulling in the tree-walker.
package runtime

import (
	"strconv"
	"strings"

	"github.com/cwbudde/jlox/pkg/ast"
)

// Value is the dynamic type every Lox expression evaluates to: nil for
// Nil, bool for Bool, float64 for Number, string for String, Callable for
// functions/classes/natives, and *Instance for instances. Keeping the tag
// implicit in the Go type (rather than introducing a wrapper struct) reads
// more plainly than a hierarchy of value types would, given how small
// Lox's universe is.
type Value = any

// Interpreter is the narrow callback surface Callable.Call needs in order
// to run a function body against a fresh environment.
type Interpreter interface {
	ExecuteBlock(stmts []ast.Stmt, env *Environment) error
}

// Callable is any Lox value that can appear as a Call expression's callee:
// a user function (*Function), a native function (*Native), or a class
// (*Class) being instantiated.
type Callable interface {
	Arity() int
	Call(interp Interpreter, args []Value) (Value, error)
	String() string
}

// IsTruthy implements Lox truthiness: nil and false are falsey, every
// other value (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's `==`. Two nils are equal; nil never equals a
// non-nil value; otherwise structural equality by the underlying Go type
// (numbers and strings compare by value, callables/instances by the
// identity Go's interface equality gives pointer types).
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if an, ok := a.(float64); ok {
		bn, ok := b.(float64)
		return ok && an == bn
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	return a == b
}

// Stringify renders v the way `print` does.
func Stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case float64:
		return formatNumber(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case string:
		return x
	case *Instance:
		return x.Class.Name + " instance"
	case *Class:
		return x.Name
	case *Function:
		return "<fn " + x.Declaration.Name.Lexeme + ">"
	case *Native:
		return "<native fn>"
	default:
		return ""
	}
}

// formatNumber strips a trailing ".0" from a double's textual
// representation so integral Lox numbers print as integers.
func formatNumber(n float64) string {
	text := strconv.FormatFloat(n, 'f', -1, 64)
	return strings.TrimSuffix(text, ".0")
}
