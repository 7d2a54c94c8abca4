package parser

import (
	"strconv"

	"github.com/ancavar/fp2023/internal/ast"
	"github.com/ancavar/fp2023/internal/diagnostics"
	"github.com/ancavar/fp2023/internal/token"
)

// parsePattern parses a pattern, including right-associative cons:
// x : xs, a : b : rest.
func (p *Parser) parsePattern() ast.Pattern {
	left := p.parsePrimaryPattern()
	if left == nil {
		return nil
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		consTok := p.curToken
		p.nextToken()
		right := p.parsePattern()
		if right == nil {
			return nil
		}
		return &ast.ConsPattern{Token: consTok, Head: left, Tail: right}
	}
	return left
}

// parsePrimaryPattern parses a pattern atom: a binder, wildcard,
// literal, tuple, or list form.
func (p *Parser) parsePrimaryPattern() ast.Pattern {
	switch p.curToken.Type {
	case token.IDENT:
		return &ast.IdentifierPattern{Token: p.curToken, Value: p.curToken.Lexeme}

	case token.UNDERSCORE:
		return &ast.WildcardPattern{Token: p.curToken}

	case token.INT:
		lit := p.parseIntegerLiteral()
		if lit == nil {
			return nil
		}
		return &ast.LiteralPattern{Token: p.curToken, Literal: lit}

	case token.MINUS:
		// Negative integer literal pattern: -5.
		minusTok := p.curToken
		if !p.expectPeek(token.INT) {
			return nil
		}
		value, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
		if err != nil {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP004,
				p.curToken,
				"could not parse %q as integer", p.curToken.Lexeme,
			))
			return nil
		}
		return &ast.LiteralPattern{
			Token:   minusTok,
			Literal: &ast.IntegerLiteral{Token: p.curToken, Value: -value},
		}

	case token.STRING:
		return &ast.LiteralPattern{Token: p.curToken, Literal: p.parseStringLiteral()}

	case token.CHAR:
		return &ast.LiteralPattern{Token: p.curToken, Literal: p.parseCharLiteral()}

	case token.TRUE, token.FALSE:
		return &ast.LiteralPattern{Token: p.curToken, Literal: p.parseBooleanLiteral()}

	case token.LPAREN:
		return p.parseParenOrTuplePattern()

	case token.LBRACKET:
		return p.parseListPattern()
	}

	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP003,
		p.curToken,
		"unexpected token %s in pattern", p.curToken.Type,
	))
	return nil
}

func (p *Parser) parseParenOrTuplePattern() ast.Pattern {
	lparen := p.curToken
	p.skipPeekNewlines()
	p.nextToken()

	first := p.parsePattern()
	if first == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.peekTokenIs(token.COMMA) {
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return first
	}

	elements := []ast.Pattern{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // ','
		p.skipPeekNewlines()
		p.nextToken()
		el := p.parsePattern()
		if el == nil {
			return nil
		}
		elements = append(elements, el)
		p.skipPeekNewlines()
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.TuplePattern{Token: lparen, Elements: elements}
}

// parseListPattern parses [] and the bracket sugar [a, b], which
// desugars to a : b : [].
func (p *Parser) parseListPattern() ast.Pattern {
	lbracket := p.curToken
	p.skipPeekNewlines()
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return &ast.NilPattern{Token: lbracket}
	}

	var elements []ast.Pattern
	for {
		p.nextToken()
		el := p.parsePattern()
		if el == nil {
			return nil
		}
		elements = append(elements, el)
		p.skipPeekNewlines()
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // ','
		p.skipPeekNewlines()
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	var pat ast.Pattern = &ast.NilPattern{Token: lbracket}
	for i := len(elements) - 1; i >= 0; i-- {
		pat = &ast.ConsPattern{Token: lbracket, Head: elements[i], Tail: pat}
	}
	return pat
}
