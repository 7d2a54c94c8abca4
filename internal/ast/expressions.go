package ast

import (
	"github.com/ancavar/fp2023/internal/token"
)

// Identifier represents a variable reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

// IntegerLiteral represents an integer literal, e.g. 42.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

// BooleanLiteral represents True or False.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }

// StringLiteral represents a string literal, e.g. "abc".
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

// CharLiteral represents a character literal, e.g. 'a'.
type CharLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharLiteral) expressionNode()       {}
func (cl *CharLiteral) TokenLiteral() string  { return cl.Token.Lexeme }
func (cl *CharLiteral) GetToken() token.Token { return cl.Token }

// ListLiteral represents a list literal, e.g. [1, 2, 3].
// The parser keeps it as a literal node; the evaluator treats it as
// sugar for a right-nested cons chain ending in the empty list.
type ListLiteral struct {
	Token    token.Token // The '[' token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()       {}
func (ll *ListLiteral) TokenLiteral() string  { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token { return ll.Token }

// TupleLiteral represents a tuple, e.g. (1, True, "x").
type TupleLiteral struct {
	Token    token.Token // The '(' token
	Elements []Expression
}

func (tl *TupleLiteral) expressionNode()       {}
func (tl *TupleLiteral) TokenLiteral() string  { return tl.Token.Lexeme }
func (tl *TupleLiteral) GetToken() token.Token { return tl.Token }

// PrefixExpression represents a unary operator application:
// -x or not b.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }

// InfixExpression represents a binary operator application,
// including the cons operator `:`.
type InfixExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// IfExpression represents if cond then conseq else alt.
// Both branches are mandatory: this is an expression language.
type IfExpression struct {
	Token       token.Token // The 'if' token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ie *IfExpression) expressionNode()       {}
func (ie *IfExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IfExpression) GetToken() token.Token { return ie.Token }

// CaseBranch is a single arm of a case expression.
type CaseBranch struct {
	Pattern Pattern
	Body    Expression
}

// CaseExpression represents case scrut of { p1 -> e1 ; p2 -> e2 }.
// Branches are tried in listed order, first match wins.
type CaseExpression struct {
	Token     token.Token // The 'case' token
	Scrutinee Expression
	Branches  []*CaseBranch
}

func (ce *CaseExpression) expressionNode()       {}
func (ce *CaseExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CaseExpression) GetToken() token.Token { return ce.Token }

// LetBinding is one (pattern, expression) pair inside a let.
type LetBinding struct {
	Pattern Pattern
	Value   Expression
}

// LetExpression represents let { p1 = e1 ; p2 = e2 } in body.
// Bindings are sequential: each value expression sees earlier bindings
// of the same group but not later ones.
type LetExpression struct {
	Token    token.Token // The 'let' token
	Bindings []*LetBinding
	Body     Expression
}

func (le *LetExpression) expressionNode()       {}
func (le *LetExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LetExpression) GetToken() token.Token { return le.Token }

// FunctionLiteral represents a lambda with a single parameter pattern.
// Multi-parameter lambdas (\x y -> e) are desugared by the parser into
// nested single-parameter literals.
type FunctionLiteral struct {
	Token token.Token // The '\' token
	Param Pattern
	Body  Expression
}

func (fl *FunctionLiteral) expressionNode()       {}
func (fl *FunctionLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FunctionLiteral) GetToken() token.Token { return fl.Token }

// CallExpression represents function application f x.
// Application is juxtaposition; multi-argument calls are left-nested:
// f x y parses as (f x) y.
type CallExpression struct {
	Token    token.Token // The first token of the callee
	Function Expression
	Argument Expression
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }
