package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all types in our system. The evaluator is
// untyped; types exist as a reporting vocabulary (runtime shapes shown
// by the REPL and diagnostics), not as a checked discipline.
type Type interface {
	String() string
	typeNode()
}

// TVar represents a type variable (e.g. 'a', 'b').
type TVar struct {
	Name string
}

func (t TVar) typeNode()      {}
func (t TVar) String() string { return t.Name }

// TCon represents a concrete base type constructor: Int, Bool, String, Char.
type TCon struct {
	Name string
}

func (t TCon) typeNode()      {}
func (t TCon) String() string { return t.Name }

// TArrow represents a function type From -> To.
type TArrow struct {
	From Type
	To   Type
}

func (t TArrow) typeNode() {}
func (t TArrow) String() string {
	// Left-nested arrows need parentheses: (a -> b) -> c.
	if _, ok := t.From.(TArrow); ok {
		return fmt.Sprintf("(%s) -> %s", t.From, t.To)
	}
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// TList represents a homogeneous list type [a].
type TList struct {
	Elem Type
}

func (t TList) typeNode()      {}
func (t TList) String() string { return fmt.Sprintf("[%s]", t.Elem) }

// TTuple represents a tuple type (a, b, ...).
type TTuple struct {
	Elems []Type
}

func (t TTuple) typeNode() {}
func (t TTuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Scheme is a quantified type: forall vars. Body.
type Scheme struct {
	Vars []TVar
	Body Type
}

func (s Scheme) String() string {
	if len(s.Vars) == 0 {
		return s.Body.String()
	}
	names := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		names[i] = v.Name
	}
	return fmt.Sprintf("forall %s. %s", strings.Join(names, " "), s.Body)
}

// Base types used by Object.RuntimeType.
var (
	IntType    = TCon{Name: "Int"}
	BoolType   = TCon{Name: "Bool"}
	StringType = TCon{Name: "String"}
	CharType   = TCon{Name: "Char"}
)
