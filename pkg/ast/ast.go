// Package ast defines the Lox abstract syntax tree: the expression and
// statement sum types produced by the parser and walked by the resolver
// and interpreter.
//
// Dispatch is a type-switch over the concrete Expr/Stmt implementation
// rather than an Accept/Visitor interface pair per node. What the sum
// type keeps from a visitor design is the separation between the
// expression surface and the statement surface, so the resolver and
// interpreter can each expose one function per surface instead of one
// per node kind.
package ast

import "sync/atomic"

var nextID int64

// newID allocates a process-wide monotonic node id. The resolver's side
// table is keyed by this id rather than by structural equality, so two
// otherwise-identical nodes (e.g. two `Variable("x")` expressions) resolve
// independently.
func newID() int {
	return int(atomic.AddInt64(&nextID, 1))
}

// Node is the common interface implemented by every AST node.
type Node interface {
	node()
}

// Expr is any expression node. ID returns the node's stable identity, used
// as the resolver side-table key.
type Expr interface {
	Node
	ID() int
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// exprBase provides the identity every Expr needs; embed it in each
// concrete expression type.
type exprBase struct {
	id int
}

func newExprBase() exprBase { return exprBase{id: newID()} }

func (b exprBase) node()     {}
func (b exprBase) exprNode() {}
func (b exprBase) ID() int   { return b.id }

type stmtBase struct{}

func (stmtBase) node()     {}
func (stmtBase) stmtNode() {}
