package parser

import (
	"github.com/cwbudde/jlox/pkg/ast"
	"github.com/cwbudde/jlox/pkg/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses the left side as a full logic_or expression and
// rewrites it if an '=' follows: a
// Variable target becomes Assign, a Get target becomes Set, and anything
// else is an "Invalid assignment target." report that does not unwind —
// recovery from a bad assignment target needs no synchronization since
// the rest of the statement already parsed cleanly.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		}

		p.reports.ErrorAt(equals, "Invalid assignment target.")
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(op, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(false)
	case p.match(token.TRUE):
		return ast.NewLiteral(true)
	case p.match(token.NIL):
		return ast.NewLiteral(nil)
	case p.match(token.NUMBER, token.STRING):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		return ast.NewSuper(keyword, method)
	case p.match(token.THIS):
		return ast.NewThis(p.previous())
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.previous())
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	}

	p.errorAndPanic(p.peek(), "Expect expression.")
	panic("unreachable")
}
