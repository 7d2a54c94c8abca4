package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/ancavar/fp2023/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespaceAndComments()

	switch l.ch {
	case '\n':
		tok = newToken(token.NEWLINE, l.ch, l.line, l.column)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Literal: "==", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, l.line, l.column)
	case '*':
		tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Literal: "->", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.MINUS, l.ch, l.line, l.column)
		}
	case '/':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Lexeme: "/=", Literal: "/=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.SLASH, l.ch, l.line, l.column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LT_EQ, Lexeme: "<=", Literal: "<=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.LT, l.ch, l.line, l.column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GT_EQ, Lexeme: ">=", Literal: ">=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.GT, l.ch, l.line, l.column)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = token.Token{Type: token.AND, Lexeme: "&&", Literal: "&&", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = token.Token{Type: token.OR, Lexeme: "||", Literal: "||", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	case ':':
		tok = newToken(token.COLON, l.ch, l.line, l.column)
	case '\\':
		tok = newToken(token.LAMBDA, l.ch, l.line, l.column)
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '"':
		return l.readString()
	case '\'':
		return l.readCharLiteral()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Literal: "", Line: l.line, Column: l.column}
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
	}

	l.readChar()
	return tok
}

// skipWhitespaceAndComments consumes spaces, tabs, carriage returns,
// line comments (--) and block comments ({- -}, nested). Newlines are
// significant and left for NextToken.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '{' && l.peekChar() == '-':
			l.skipBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipBlockComment() {
	depth := 0
	for l.ch != 0 {
		if l.ch == '{' && l.peekChar() == '-' {
			depth++
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '-' && l.peekChar() == '}' {
			depth--
			l.readChar()
			l.readChar()
			if depth == 0 {
				return
			}
			continue
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() token.Token {
	line, column := l.line, l.column
	start := l.position
	for isLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '\'' {
		l.readChar()
	}
	ident := l.input[start:l.position]
	return token.Token{
		Type:    token.LookupIdent(ident),
		Lexeme:  ident,
		Literal: ident,
		Line:    line,
		Column:  column,
	}
}

func (l *Lexer) readNumber() token.Token {
	line, column := l.line, l.column
	start := l.position
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	num := l.input[start:l.position]
	return token.Token{Type: token.INT, Lexeme: num, Literal: num, Line: line, Column: column}
}

func (l *Lexer) readString() token.Token {
	line, column := l.line, l.column
	l.readChar() // consume opening quote

	var out []rune
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{Type: token.ILLEGAL, Lexeme: string(out), Literal: string(out), Line: line, Column: column}
		}
		if l.ch == '\\' {
			l.readChar()
			out = append(out, unescape(l.ch))
		} else {
			out = append(out, l.ch)
		}
		l.readChar()
	}
	l.readChar() // consume closing quote

	s := string(out)
	return token.Token{Type: token.STRING, Lexeme: s, Literal: s, Line: line, Column: column}
}

func (l *Lexer) readCharLiteral() token.Token {
	line, column := l.line, l.column
	l.readChar() // consume opening quote

	var ch rune
	if l.ch == '\\' {
		l.readChar()
		ch = unescape(l.ch)
	} else if l.ch == 0 || l.ch == '\'' || l.ch == '\n' {
		return token.Token{Type: token.ILLEGAL, Lexeme: "'", Literal: "'", Line: line, Column: column}
	} else {
		ch = l.ch
	}
	l.readChar()

	if l.ch != '\'' {
		return token.Token{Type: token.ILLEGAL, Lexeme: string(ch), Literal: string(ch), Line: line, Column: column}
	}
	l.readChar() // consume closing quote

	s := string(ch)
	return token.Token{Type: token.CHAR, Lexeme: s, Literal: s, Line: line, Column: column}
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		// \\ \' \" and unknown escapes map to the char itself.
		return ch
	}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func newToken(tokenType token.TokenType, ch rune, line, column int) token.Token {
	return token.Token{
		Type:    tokenType,
		Lexeme:  string(ch),
		Literal: string(ch),
		Line:    line,
		Column:  column,
	}
}
