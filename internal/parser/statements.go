package parser

import (
	"github.com/cwbudde/jlox/pkg/ast"
	"github.com/cwbudde/jlox/pkg/token"
)

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		return ast.NewBlock(p.block())
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for (init; cond; update) body` into
// `Block[init, While(cond, Block[body, update])]` right here in the
// parser — the interpreter never sees a For node.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var update ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		update = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if update != nil {
		body = ast.NewBlock([]ast.Stmt{body, ast.NewExpression(update)})
	}

	if cond == nil {
		cond = ast.NewLiteral(true)
	}
	body = ast.NewWhile(cond, body)

	if initializer != nil {
		body = ast.NewBlock([]ast.Stmt{initializer, body})
	}

	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return ast.NewIf(cond, then, els)
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return ast.NewPrint(value)
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return ast.NewReturn(keyword, value)
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return ast.NewWhile(cond, body)
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if decl := p.declaration(); decl != nil {
			stmts = append(stmts, decl)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return ast.NewExpression(expr)
}
