package ast

import (
	"github.com/ancavar/fp2023/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Pattern is a Node that represents a binding pattern.
type Pattern interface {
	Node
	patternNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces: an
// ordered sequence of top-level declarations.
type Program struct {
	File         string // Source file path
	Declarations []*Declaration
}

func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

// Declaration represents a top-level binding.
// x = expr, (a, b) = pair, f = \x -> x
type Declaration struct {
	Token   token.Token // the first token of the pattern
	Pattern Pattern
	Value   Expression
}

func (d *Declaration) TokenLiteral() string { return d.Token.Lexeme }
func (d *Declaration) GetToken() token.Token {
	if d == nil {
		return token.Token{}
	}
	return d.Token
}
