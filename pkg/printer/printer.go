// Package printer renders a parsed Lox program back to a Lisp-style
// textual form, used only by the `--dump-ast` CLI flag. It has no bearing
// on evaluation; it exists purely as a debugging aid, producing a fully
// parenthesized notation rather than a source round-trip.
package printer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/jlox/pkg/ast"
)

// Print renders a full program: one parenthesized form per line.
func Print(stmts []ast.Stmt) string {
	var b strings.Builder
	for _, stmt := range stmts {
		b.WriteString(printStmt(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintExpr renders a single expression; the CLI does not call it, it
// is used from tests.
func PrintExpr(expr ast.Expr) string {
	return printExpr(expr)
}

func parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	b.WriteByte(')')
	return b.String()
}

func printExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalString(e.Value)
	case *ast.Grouping:
		return parenthesize("group", printExpr(e.Inner))
	case *ast.Unary:
		return parenthesize(e.Op.Lexeme, printExpr(e.Right))
	case *ast.Binary:
		return parenthesize(e.Op.Lexeme, printExpr(e.Left), printExpr(e.Right))
	case *ast.Logical:
		return parenthesize(e.Op.Lexeme, printExpr(e.Left), printExpr(e.Right))
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Assign:
		return parenthesize("assign "+e.Name.Lexeme, printExpr(e.Value))
	case *ast.Call:
		parts := make([]string, len(e.Args)+1)
		parts[0] = printExpr(e.Callee)
		for i, arg := range e.Args {
			parts[i+1] = printExpr(arg)
		}
		return parenthesize("call", parts...)
	case *ast.Get:
		return parenthesize("get "+e.Name.Lexeme, printExpr(e.Object))
	case *ast.Set:
		return parenthesize("set "+e.Name.Lexeme, printExpr(e.Object), printExpr(e.Value))
	case *ast.This:
		return "this"
	case *ast.Super:
		return parenthesize("super", e.Method.Lexeme)
	default:
		return "<?expr>"
	}
}

func literalString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return strconv.Quote(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return "<?literal>"
	}
}

func printStmt(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.Expression:
		return parenthesize("; ", printExpr(s.Expr))
	case *ast.Print:
		return parenthesize("print", printExpr(s.Expr))
	case *ast.Var:
		if s.Initializer == nil {
			return parenthesize("var " + s.Name.Lexeme)
		}
		return parenthesize("var "+s.Name.Lexeme, printExpr(s.Initializer))
	case *ast.Block:
		parts := make([]string, len(s.Stmts))
		for i, st := range s.Stmts {
			parts[i] = printStmt(st)
		}
		return parenthesize("block", parts...)
	case *ast.If:
		if s.Else == nil {
			return parenthesize("if", printExpr(s.Cond), printStmt(s.Then))
		}
		return parenthesize("if", printExpr(s.Cond), printStmt(s.Then), printStmt(s.Else))
	case *ast.While:
		return parenthesize("while", printExpr(s.Cond), printStmt(s.Body))
	case *ast.Function:
		return parenthesize("fun " + s.Name.Lexeme)
	case *ast.Return:
		if s.Value == nil {
			return parenthesize("return")
		}
		return parenthesize("return", printExpr(s.Value))
	case *ast.Class:
		if s.Superclass == nil {
			return parenthesize("class " + s.Name.Lexeme)
		}
		return parenthesize("class "+s.Name.Lexeme, "< "+s.Superclass.Name.Lexeme)
	default:
		return "<?stmt>"
	}
}
