package ast

import "github.com/cwbudde/jlox/pkg/token"

// Assign is `name = value`.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

// NewAssign builds an Assign expression with a fresh node identity.
func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

// Binary is `left op right` for arithmetic, comparison, and equality
// operators.
type Binary struct {
	exprBase
	Left  Expr
	Right Expr
	Op    token.Token
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// Logical is `left op right` for `and`/`or`, which short-circuit and never
// evaluate Right unless the result depends on it.
type Logical struct {
	exprBase
	Left  Expr
	Right Expr
	Op    token.Token
}

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// Grouping is a parenthesized expression, kept as its own node so the
// printer can round-trip parentheses even though evaluation ignores them.
type Grouping struct {
	exprBase
	Inner Expr
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Inner: inner}
}

// Literal is a compile-time constant: a number, string, bool, or nil.
type Literal struct {
	exprBase
	Value interface{}
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{exprBase: newExprBase(), Value: value}
}

// Unary is `op right` for `-` (negation) and `!` (logical not).
type Unary struct {
	exprBase
	Right Expr
	Op    token.Token
}

func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Op: op, Right: right}
}

// Variable is a bare identifier used as an expression; the resolver
// records how many enclosing scopes separate this use from its binding.
type Variable struct {
	exprBase
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

// Call is `callee(args...)`. Paren is the closing `)`, kept for its line
// so runtime errors ("Can only call functions and classes.") can be
// reported at the call site.
type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Args: args}
}

// Get is `object.name`, a property or method read.
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

// Set is `object.name = value`, a field write.
type Set struct {
	exprBase
	Object Expr
	Value  Expr
	Name   token.Token
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

// This is the `this` keyword used inside a method body.
type This struct {
	exprBase
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

// Super is `super.method`, valid only inside a subclass method body.
type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}
