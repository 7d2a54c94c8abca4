package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	// Identifiers and literals
	IDENT  = "IDENT"
	INT    = "INT"
	STRING = "STRING"
	CHAR   = "CHAR"

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	EQ       = "=="
	NOT_EQ   = "/="
	LT       = "<"
	GT       = ">"
	LT_EQ    = "<="
	GT_EQ    = ">="
	AND      = "&&"
	OR       = "||"
	COLON    = ":"
	ARROW    = "->"
	LAMBDA   = "\\"

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	LPAREN    = "("
	RPAREN    = ")"
	LBRACKET  = "["
	RBRACKET  = "]"
	LBRACE    = "{"
	RBRACE    = "}"

	// Keywords
	LET        = "LET"
	IN         = "IN"
	IF         = "IF"
	THEN       = "THEN"
	ELSE       = "ELSE"
	CASE       = "CASE"
	OF         = "OF"
	NOT        = "NOT"
	TRUE       = "TRUE"
	FALSE      = "FALSE"
	UNDERSCORE = "UNDERSCORE"
)

var keywords = map[string]TokenType{
	"let":   LET,
	"in":    IN,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"case":  CASE,
	"of":    OF,
	"not":   NOT,
	"True":  TRUE,
	"False": FALSE,
	"_":     UNDERSCORE,
}

// LookupIdent maps reserved words onto their keyword token types;
// everything else is an IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
