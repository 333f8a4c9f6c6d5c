// Package resolver implements the static scope-analysis pass that runs
// between parsing and interpretation. For every variable
// *use* site it computes the number of lexical scopes between the use and
// its binding, recording the distance in a side table keyed by AST node
// identity. Absent entries mean "resolve against globals at runtime."
//
// The pass also rejects a handful of programs that are syntactically
// valid but never sound: reading a local in its own initializer, `this`/
// `super` outside a class, `return` outside a function, and a class
// inheriting from itself.
package resolver

import (
	"github.com/cwbudde/jlox/pkg/ast"
	"github.com/cwbudde/jlox/pkg/token"
)

// reporter is the subset of errsink.Sink the resolver needs.
type reporter interface {
	ErrorAt(tok token.Token, message string)
}

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcMethod
	funcInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished being
// resolved: false means "declared but its initializer is still being
// resolved", true means "ready to be read".
type scope map[string]bool

// Resolver walks a statement list once, producing a side table mapping
// expression node id to scope distance.
type Resolver struct {
	reports         reporter
	locals          map[int]int
	scopes          []scope
	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports static errors to reports.
func New(reports reporter) *Resolver {
	return &Resolver{reports: reports, locals: make(map[int]int)}
}

// Resolve runs the pass over stmts and returns the completed side table.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[int]int {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as not-yet-defined. Global
// scope (no open scopes) performs no shadowing check: `var a = a;` at the
// top level is not a static error since globals are never resolved ahead
// of time.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, exists := s[name.Lexeme]; exists {
		r.reports.ErrorAt(name, "Already a variable with this name in this scope.")
	}
	s[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any scope: leave absent, resolved against globals
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
