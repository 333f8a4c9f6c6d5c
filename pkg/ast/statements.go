package ast

import "github.com/cwbudde/jlox/pkg/token"

// Expression is a bare expression statement, evaluated for its side
// effect and discarded.
type Expression struct {
	stmtBase
	Expr Expr
}

func NewExpression(expr Expr) *Expression {
	return &Expression{Expr: expr}
}

// Print is `print expr;`.
type Print struct {
	stmtBase
	Expr Expr
}

func NewPrint(expr Expr) *Print {
	return &Print{Expr: expr}
}

// Var is `var name = initializer;`, with Initializer nil when omitted.
type Var struct {
	stmtBase
	Initializer Expr
	Name        token.Token
}

func NewVar(name token.Token, initializer Expr) *Var {
	return &Var{Name: name, Initializer: initializer}
}

// Block is `{ stmts... }`, introducing a new lexical scope.
type Block struct {
	stmtBase
	Stmts []Stmt
}

func NewBlock(stmts []Stmt) *Block {
	return &Block{Stmts: stmts}
}

// If is `if (cond) then [else else]`. Else is nil when there is no else
// clause.
type If struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt
}

func NewIf(cond Expr, then, els Stmt) *If {
	return &If{Cond: cond, Then: then, Else: els}
}

// While is `while (cond) body`. The parser also desugars `for` loops into
// a While, wrapped in a Block when the loop has an initializer clause.
type While struct {
	stmtBase
	Cond Expr
	Body Stmt
}

func NewWhile(cond Expr, body Stmt) *While {
	return &While{Cond: cond, Body: body}
}

// Function is a named function declaration, and is also reused (without a
// surrounding declaration keyword context) to represent each method inside
// a Class body.
type Function struct {
	stmtBase
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func NewFunction(name token.Token, params []token.Token, body []Stmt) *Function {
	return &Function{Name: name, Params: params, Body: body}
}

// Return is `return [value];`. Value is nil when no expression follows
// `return`.
type Return struct {
	stmtBase
	Value   Expr
	Keyword token.Token
}

func NewReturn(keyword token.Token, value Expr) *Return {
	return &Return{Keyword: keyword, Value: value}
}

// Class is a class declaration with an optional superclass variable
// reference and a list of method declarations.
type Class struct {
	stmtBase
	Superclass *Variable
	Name       token.Token
	Methods    []*Function
}

func NewClass(name token.Token, superclass *Variable, methods []*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}
