// Package parser implements Lox's recursive-descent, precedence-climbing
// parser. It consumes a token sequence and produces a
// statement list, recovering from syntax errors by synchronizing to the
// next statement boundary instead of aborting on the first mistake.
package parser

import (
	"github.com/cwbudde/jlox/pkg/ast"
	"github.com/cwbudde/jlox/pkg/token"
)

const maxArgs = 255

// reporter is the subset of errsink.Sink the parser needs.
type reporter interface {
	ErrorAt(tok token.Token, message string)
}

// parseError is the sentinel thrown to unwind back to declaration()'s
// synchronize() call; it carries no data because the error has already
// been reported to the sink at the point it was raised.
type parseError struct{}

// Parser turns a token sequence into a statement list.
type Parser struct {
	tokens  []token.Token
	reports reporter
	current int
}

// New creates a Parser over tokens, reporting syntax errors to reports.
func New(tokens []token.Token, reports reporter) *Parser {
	return &Parser{tokens: tokens, reports: reports}
}

// Parse runs `program → declaration* EOF`, collecting as many statements
// and errors as possible in a single pass.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if decl := p.declaration(); decl != nil {
			stmts = append(stmts, decl)
		}
	}
	return stmts
}

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		p.consume(token.IDENTIFIER, "Expect superclass name.")
		superclass = ast.NewVariable(p.previous())
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")
	return ast.NewClass(name, superclass, methods)
}

func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return ast.NewFunction(name, params, body)
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return ast.NewVar(name, initializer)
}

// errorAtCurrent reports a non-fatal error (e.g. an over-length parameter
// or argument list) without unwinding the parse.
func (p *Parser) errorAtCurrent(message string) {
	p.reports.ErrorAt(p.peek(), message)
}

// errorAndPanic reports message at tok and unwinds to the nearest
// synchronize point.
func (p *Parser) errorAndPanic(tok token.Token, message string) {
	p.reports.ErrorAt(tok, message)
	panic(parseError{})
}

func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}

		p.advance()
	}
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAndPanic(p.peek(), message)
	panic("unreachable")
}
