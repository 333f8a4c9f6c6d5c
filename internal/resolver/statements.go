package resolver

import "github.com/cwbudde/jlox/pkg/ast"

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.Function:
		// declare+define before resolving the body, so the function can
		// call itself recursively.
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, funcFunction)

	case *ast.Expression:
		r.resolveExpr(s.Expr)

	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.Print:
		r.resolveExpr(s.Expr)

	case *ast.Return:
		if r.currentFunction == funcNone {
			r.reports.ErrorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == funcInitializer {
				r.reports.ErrorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.Class:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Name.Lexeme == s.Superclass.Name.Lexeme {
			r.reports.ErrorAt(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declType := funcMethod
		if method.Name.Lexeme == "init" {
			declType = funcInitializer
		}
		r.resolveFunction(method, declType)
	}

	r.endScope() // "this"

	if s.Superclass != nil {
		r.endScope() // "super"
	}

	r.currentClass = enclosingClass
}
