package evaluator

import "fmt"

// ErrorKind enumerates every runtime failure the evaluator can
// produce. The set is closed: new kinds require a new constructor
// below and a case in Error().
type ErrorKind int

const (
	// NotInScope: a free identifier had no binding at lookup time.
	NotInScope ErrorKind = iota
	// DivisionByZero: integer division with a zero right operand.
	DivisionByZero
	// NonExhaustivePattern: a pattern failed against a forced value.
	NonExhaustivePattern
	// TypeMismatch: an operator or application over operands of the
	// wrong runtime shape, or a case expression with no matching branch.
	TypeMismatch
)

// RuntimeError is a first-class failure value. It flows through Eval
// chains as data; nothing in the evaluator panics or unwinds.
type RuntimeError struct {
	Kind ErrorKind
	// Detail is the identifier for NotInScope and the structural
	// context label ("list", "[]", "tuple", "literal") for
	// NonExhaustivePattern.
	Detail string
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case NotInScope:
		return fmt.Sprintf("variable not in scope: %s", e.Detail)
	case DivisionByZero:
		return "division by zero"
	case NonExhaustivePattern:
		return fmt.Sprintf("non-exhaustive pattern match: %s", e.Detail)
	case TypeMismatch:
		return "type mismatch"
	default:
		return "unknown runtime error"
	}
}

func notInScope(name string) *RuntimeError {
	return &RuntimeError{Kind: NotInScope, Detail: name}
}

func divisionByZero() *RuntimeError {
	return &RuntimeError{Kind: DivisionByZero}
}

func nonExhaustive(context string) *RuntimeError {
	return &RuntimeError{Kind: NonExhaustivePattern, Detail: context}
}

func typeMismatch() *RuntimeError {
	return &RuntimeError{Kind: TypeMismatch}
}
