package parser

import (
	"strconv"

	"github.com/ancavar/fp2023/internal/ast"
	"github.com/ancavar/fp2023/internal/diagnostics"
	"github.com/ancavar/fp2023/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP006,
			p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for {
		// Juxtaposition application binds tighter than every operator:
		// f x + 1 parses as (f x) + 1, f x y as ((f x) y).
		if precedence < APPLY && p.peekStartsAtom() {
			tok := leftExp.GetToken()
			p.nextToken()
			arg := p.parseAtom()
			if arg == nil {
				return nil
			}
			leftExp = &ast.CallExpression{Token: tok, Function: leftExp, Argument: arg}
			continue
		}

		if precedence >= p.peekPrecedence() {
			break
		}

		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

// peekStartsAtom reports whether the peek token can begin an
// application argument.
func (p *Parser) peekStartsAtom() bool {
	switch p.peekToken.Type {
	case token.IDENT, token.INT, token.STRING, token.CHAR,
		token.TRUE, token.FALSE, token.LPAREN, token.LBRACKET:
		return true
	}
	return false
}

// parseAtom parses an application argument: an identifier, a literal,
// or a bracketed form. Anything looser (lambdas, operator chains)
// must be parenthesized, as in Haskell.
func (p *Parser) parseAtom() ast.Expression {
	switch p.curToken.Type {
	case token.IDENT:
		return p.parseIdentifier()
	case token.INT:
		return p.parseIntegerLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	case token.CHAR:
		return p.parseCharLiteral()
	case token.TRUE, token.FALSE:
		return p.parseBooleanLiteral()
	case token.LPAREN:
		return p.parseParenOrTuple()
	case token.LBRACKET:
		return p.parseListLiteral()
	}
	p.noPrefixParseFnError(p.curToken.Type)
	return nil
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP004,
			p.curToken,
			"could not parse %q as integer", p.curToken.Lexeme,
		))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	r := []rune(p.curToken.Literal)
	var ch rune
	if len(r) > 0 {
		ch = r[0]
	}
	return &ast.CharLiteral{Token: p.curToken, Value: ch}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := p.curPrecedence()
	if p.curTokenIs(token.COLON) {
		// Cons is right-associative: a : b : t is a : (b : t).
		precedence--
	}
	p.skipPeekNewlines()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

// parseParenOrTuple handles a parenthesized expression or a tuple
// literal. () is not a value in this language.
func (p *Parser) parseParenOrTuple() ast.Expression {
	lparen := p.curToken
	p.skipPeekNewlines()
	if p.peekTokenIs(token.RPAREN) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001,
			p.peekToken,
			"empty parentheses are not an expression",
		))
		return nil
	}
	p.nextToken()

	first := p.parseExpression(LOWEST)
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

	elements := []ast.Expression{first}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // ','
		p.skipPeekNewlines()
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		elements = append(elements, el)
		p.skipPeekNewlines()
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.TupleLiteral{Token: lparen, Elements: elements}
}

func (p *Parser) parseListLiteral() ast.Expression {
	list := &ast.ListLiteral{Token: p.curToken}
	p.skipPeekNewlines()
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return list
	}

	for {
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		list.Elements = append(list.Elements, el)
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
	return list
}

// parseFunctionLiteral parses \p1 p2 ... -> body, desugaring multiple
// parameters into nested single-parameter lambdas.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lambdaTok := p.curToken

	var params []ast.Pattern
	for !p.peekTokenIs(token.ARROW) {
		if p.peekTokenIs(token.EOF) || p.peekTokenIs(token.NEWLINE) {
			p.peekError(token.ARROW)
			return nil
		}
		p.nextToken()
		pat := p.parsePrimaryPattern()
		if pat == nil {
			return nil
		}
		params = append(params, pat)
	}
	if len(params) == 0 {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP003,
			p.curToken,
			"lambda needs at least one parameter",
		))
		return nil
	}
	p.nextToken() // '->'
	p.skipPeekNewlines()
	p.nextToken()

	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}

	fn := &ast.FunctionLiteral{Token: lambdaTok, Param: params[len(params)-1], Body: body}
	for i := len(params) - 2; i >= 0; i-- {
		fn = &ast.FunctionLiteral{Token: lambdaTok, Param: params[i], Body: fn}
	}
	return fn
}

func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.curToken}
	p.nextToken()

	expression.Condition = p.parseExpression(LOWEST)
	if expression.Condition == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.THEN) {
		return nil
	}
	p.skipPeekNewlines()
	p.nextToken()
	expression.Consequence = p.parseExpression(LOWEST)
	if expression.Consequence == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.ELSE) {
		return nil
	}
	p.skipPeekNewlines()
	p.nextToken()
	expression.Alternative = p.parseExpression(LOWEST)
	if expression.Alternative == nil {
		return nil
	}

	return expression
}

// parseLetExpression parses let p = e in body and the explicit-layout
// form let { p1 = e1 ; p2 = e2 } in body.
func (p *Parser) parseLetExpression() ast.Expression {
	le := &ast.LetExpression{Token: p.curToken}

	if p.peekTokenIs(token.LBRACE) {
		p.nextToken() // '{'
		p.skipPeekNewlines()
		for {
			p.nextToken()
			b := p.parseLetBinding()
			if b == nil {
				return nil
			}
			le.Bindings = append(le.Bindings, b)

			p.skipPeekNewlines()
			if p.peekTokenIs(token.SEMICOLON) {
				p.nextToken()
				p.skipPeekNewlines()
			}
			if p.peekTokenIs(token.RBRACE) {
				p.nextToken()
				break
			}
			if p.peekTokenIs(token.EOF) {
				p.peekError(token.RBRACE)
				return nil
			}
		}
	} else {
		p.nextToken()
		b := p.parseLetBinding()
		if b == nil {
			return nil
		}
		le.Bindings = append(le.Bindings, b)
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.skipPeekNewlines()
	p.nextToken()
	le.Body = p.parseExpression(LOWEST)
	if le.Body == nil {
		return nil
	}
	return le
}

func (p *Parser) parseLetBinding() *ast.LetBinding {
	pat := p.parsePattern()
	if pat == nil {
		return nil
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.skipPeekNewlines()
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	return &ast.LetBinding{Pattern: pat, Value: val}
}

// parseCaseExpression parses case scrut of { p1 -> e1 ; p2 -> e2 }.
func (p *Parser) parseCaseExpression() ast.Expression {
	ce := &ast.CaseExpression{Token: p.curToken}
	p.nextToken()

	ce.Scrutinee = p.parseExpression(LOWEST)
	if ce.Scrutinee == nil {
		return nil
	}

	p.skipPeekNewlines()
	if !p.expectPeek(token.OF) {
		return nil
	}
	p.skipPeekNewlines()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.skipPeekNewlines()

	for !p.peekTokenIs(token.RBRACE) {
		if p.peekTokenIs(token.EOF) {
			p.peekError(token.RBRACE)
			return nil
		}
		p.nextToken()
		pat := p.parsePattern()
		if pat == nil {
			return nil
		}
		if !p.expectPeek(token.ARROW) {
			return nil
		}
		p.skipPeekNewlines()
		p.nextToken()
		body := p.parseExpression(LOWEST)
		if body == nil {
			return nil
		}
		ce.Branches = append(ce.Branches, &ast.CaseBranch{Pattern: pat, Body: body})

		p.skipPeekNewlines()
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
			p.skipPeekNewlines()
		}
	}
	p.nextToken() // '}'

	if len(ce.Branches) == 0 {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP005,
			ce.Token,
			"case expression has no branches",
		))
		return nil
	}
	return ce
}
