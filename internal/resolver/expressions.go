package resolver

import "github.com/cwbudde/jlox/pkg/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reports.ErrorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.This:
		if r.currentClass == classNone {
			r.reports.ErrorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.reports.ErrorAt(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.reports.ErrorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)

	default:
		panic("resolver: unhandled expression type")
	}
}
