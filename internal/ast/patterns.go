package ast

import (
	"github.com/ancavar/fp2023/internal/token"
)

// IdentifierPattern binds a name to whatever value it is matched
// against, without forcing it.
type IdentifierPattern struct {
	Token token.Token
	Value string
}

func (ip *IdentifierPattern) patternNode()          {}
func (ip *IdentifierPattern) TokenLiteral() string  { return ip.Token.Lexeme }
func (ip *IdentifierPattern) GetToken() token.Token { return ip.Token }

// WildcardPattern matches anything and binds nothing.
type WildcardPattern struct {
	Token token.Token // The '_' token
}

func (wp *WildcardPattern) patternNode()          {}
func (wp *WildcardPattern) TokenLiteral() string  { return wp.Token.Lexeme }
func (wp *WildcardPattern) GetToken() token.Token { return wp.Token }

// LiteralPattern matches a scalar literal by equality.
// Literal is one of *IntegerLiteral, *BooleanLiteral, *StringLiteral,
// *CharLiteral.
type LiteralPattern struct {
	Token   token.Token
	Literal Expression
}

func (lp *LiteralPattern) patternNode()          {}
func (lp *LiteralPattern) TokenLiteral() string  { return lp.Token.Lexeme }
func (lp *LiteralPattern) GetToken() token.Token { return lp.Token }

// ConsPattern matches a non-empty list, binding head and tail:
// (h:t). Right-associative, so (a:b:t) is (a:(b:t)).
type ConsPattern struct {
	Token token.Token // The ':' token
	Head  Pattern
	Tail  Pattern
}

func (cp *ConsPattern) patternNode()          {}
func (cp *ConsPattern) TokenLiteral() string  { return cp.Token.Lexeme }
func (cp *ConsPattern) GetToken() token.Token { return cp.Token }

// NilPattern matches the empty list [].
type NilPattern struct {
	Token token.Token // The '[' token
}

func (np *NilPattern) patternNode()          {}
func (np *NilPattern) TokenLiteral() string  { return np.Token.Lexeme }
func (np *NilPattern) GetToken() token.Token { return np.Token }

// TuplePattern matches a tuple of exactly len(Elements) components,
// element-wise left to right.
type TuplePattern struct {
	Token    token.Token // The '(' token
	Elements []Pattern
}

func (tp *TuplePattern) patternNode()          {}
func (tp *TuplePattern) TokenLiteral() string  { return tp.Token.Lexeme }
func (tp *TuplePattern) GetToken() token.Token { return tp.Token }
