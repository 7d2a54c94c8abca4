package diagnostics

import (
	"fmt"

	"github.com/ancavar/fp2023/internal/token"
)

type ErrorCode string

const (
	// Lexer errors
	ErrL001 ErrorCode = "L001" // illegal character
	ErrL002 ErrorCode = "L002" // unterminated string literal
	ErrL003 ErrorCode = "L003" // malformed character literal
	ErrL004 ErrorCode = "L004" // unterminated block comment

	// Parser errors
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // no prefix parse function
	ErrP003 ErrorCode = "P003" // malformed pattern
	ErrP004 ErrorCode = "P004" // integer literal out of range
	ErrP005 ErrorCode = "P005" // malformed declaration
	ErrP006 ErrorCode = "P006" // recursion depth limit exceeded
)

// DiagnosticError is a compile-stage error with a stable code and a
// source position, suitable for editor tooling and test assertions.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", e.File, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: [%s] %s", e.Line, e.Column, e.Code, e.Message)
}

// NewError builds a DiagnosticError positioned at tok.
func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}
