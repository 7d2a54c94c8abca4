package lexer

import (
	"testing"

	"github.com/ancavar/fp2023/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `min = \x y -> if x <= y then x else y
xs = 1 : [2, 3]
p = (True, 'a', "hi")
r = case xs of { (h : _) -> h ; [] -> 0 }
b = not (1 /= 2) && 3 >= 4 || 5 < 6
n = let k = 10 - 2 in k * 4 / 2`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.IDENT, "min"},
		{token.ASSIGN, "="},
		{token.LAMBDA, "\\"},
		{token.IDENT, "x"},
		{token.IDENT, "y"},
		{token.ARROW, "->"},
		{token.IF, "if"},
		{token.IDENT, "x"},
		{token.LT_EQ, "<="},
		{token.IDENT, "y"},
		{token.THEN, "then"},
		{token.IDENT, "x"},
		{token.ELSE, "else"},
		{token.IDENT, "y"},
		{token.NEWLINE, "\n"},

		{token.IDENT, "xs"},
		{token.ASSIGN, "="},
		{token.INT, "1"},
		{token.COLON, ":"},
		{token.LBRACKET, "["},
		{token.INT, "2"},
		{token.COMMA, ","},
		{token.INT, "3"},
		{token.RBRACKET, "]"},
		{token.NEWLINE, "\n"},

		{token.IDENT, "p"},
		{token.ASSIGN, "="},
		{token.LPAREN, "("},
		{token.TRUE, "True"},
		{token.COMMA, ","},
		{token.CHAR, "a"},
		{token.COMMA, ","},
		{token.STRING, "hi"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},

		{token.IDENT, "r"},
		{token.ASSIGN, "="},
		{token.CASE, "case"},
		{token.IDENT, "xs"},
		{token.OF, "of"},
		{token.LBRACE, "{"},
		{token.LPAREN, "("},
		{token.IDENT, "h"},
		{token.COLON, ":"},
		{token.UNDERSCORE, "_"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENT, "h"},
		{token.SEMICOLON, ";"},
		{token.LBRACKET, "["},
		{token.RBRACKET, "]"},
		{token.ARROW, "->"},
		{token.INT, "0"},
		{token.RBRACE, "}"},
		{token.NEWLINE, "\n"},

		{token.IDENT, "b"},
		{token.ASSIGN, "="},
		{token.NOT, "not"},
		{token.LPAREN, "("},
		{token.INT, "1"},
		{token.NOT_EQ, "/="},
		{token.INT, "2"},
		{token.RPAREN, ")"},
		{token.AND, "&&"},
		{token.INT, "3"},
		{token.GT_EQ, ">="},
		{token.INT, "4"},
		{token.OR, "||"},
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "6"},
		{token.NEWLINE, "\n"},

		{token.IDENT, "n"},
		{token.ASSIGN, "="},
		{token.LET, "let"},
		{token.IDENT, "k"},
		{token.ASSIGN, "="},
		{token.INT, "10"},
		{token.MINUS, "-"},
		{token.INT, "2"},
		{token.IN, "in"},
		{token.IDENT, "k"},
		{token.ASTERISK, "*"},
		{token.INT, "4"},
		{token.SLASH, "/"},
		{token.INT, "2"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (lexeme %q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestLineComments(t *testing.T) {
	input := "x = 1 -- the rest is ignored, even -- this\ny = 2"
	l := New(input)

	want := []token.TokenType{
		token.IDENT, token.ASSIGN, token.INT, token.NEWLINE,
		token.IDENT, token.ASSIGN, token.INT, token.EOF,
	}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("tokens[%d]: expected %q, got %q (lexeme %q)", i, w, tok.Type, tok.Lexeme)
		}
	}
}

func TestNestedBlockComments(t *testing.T) {
	input := "x {- outer {- inner -} still outer -} = 1"
	l := New(input)

	want := []token.TokenType{token.IDENT, token.ASSIGN, token.INT, token.EOF}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("tokens[%d]: expected %q, got %q (lexeme %q)", i, w, tok.Type, tok.Lexeme)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"quote\"inside"`, `quote"inside`},
		{`"back\\slash"`, `back\slash`},
	}
	for _, tt := range tests {
		tok := New(tt.input).NextToken()
		if tok.Type != token.STRING {
			t.Errorf("%s: expected STRING, got %q", tt.input, tok.Type)
			continue
		}
		if tok.Literal != tt.want {
			t.Errorf("%s: literal %q, want %q", tt.input, tok.Literal, tt.want)
		}
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`'a'`, "a"},
		{`'\n'`, "\n"},
		{`'\''`, "'"},
	}
	for _, tt := range tests {
		tok := New(tt.input).NextToken()
		if tok.Type != token.CHAR {
			t.Errorf("%s: expected CHAR, got %q", tt.input, tok.Type)
			continue
		}
		if tok.Literal != tt.want {
			t.Errorf("%s: literal %q, want %q", tt.input, tok.Literal, tt.want)
		}
	}
}

func TestUnterminatedLiteralsAreIllegal(t *testing.T) {
	inputs := []string{`"no closing quote`, `'x`, `'`}
	for _, input := range inputs {
		tok := New(input).NextToken()
		if tok.Type != token.ILLEGAL {
			t.Errorf("%q: expected ILLEGAL, got %q", input, tok.Type)
		}
	}
}

func TestIllegalRune(t *testing.T) {
	l := New("x = 1 ? 2")
	var got []token.TokenType
	for {
		tok := l.NextToken()
		got = append(got, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	found := false
	for _, ty := range got {
		if ty == token.ILLEGAL {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ILLEGAL token in %v", got)
	}
}

func TestPositions(t *testing.T) {
	l := New("x = 5\n  y = 6")

	tests := []struct {
		line, column int
	}{
		{1, 1}, // x
		{1, 3}, // =
		{1, 5}, // 5
		{1, 6}, // newline
		{2, 3}, // y
		{2, 5}, // =
		{2, 7}, // 6
	}
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("tokens[%d] (%q): position %d:%d, want %d:%d",
				i, tok.Lexeme, tok.Line, tok.Column, tt.line, tt.column)
		}
	}
}

func TestPrimedIdentifiers(t *testing.T) {
	l := New("x' = x")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Lexeme != "x'" {
		t.Fatalf("expected IDENT x', got %q %q", tok.Type, tok.Lexeme)
	}
}
