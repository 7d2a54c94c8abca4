package evaluator

import (
	"fmt"
	"strconv"

	"github.com/ancavar/fp2023/internal/ast"
	"github.com/ancavar/fp2023/internal/typesystem"
)

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	BOOLEAN_OBJ  = "BOOLEAN"
	STRING_OBJ   = "STRING"
	CHAR_OBJ     = "CHAR"
	NIL_OBJ      = "NIL"
	CONS_OBJ     = "CONS"
	TUPLE_OBJ    = "TUPLE"
	FUNCTION_OBJ = "FUNCTION"
)

// Object is a runtime value in weak-head-normal form: its outermost
// constructor is known, but list and tuple components stay deferred.
type Object interface {
	Type() ObjectType
	Inspect() string
	RuntimeType() typesystem.Type // Runtime shape for display (:t in the REPL)
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType             { return INTEGER_OBJ }
func (i *Integer) Inspect() string              { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) RuntimeType() typesystem.Type { return typesystem.IntType }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "True"
	}
	return "False"
}
func (b *Boolean) RuntimeType() typesystem.Type { return typesystem.BoolType }

type String struct {
	Value string
}

func (s *String) Type() ObjectType             { return STRING_OBJ }
func (s *String) Inspect() string              { return strconv.Quote(s.Value) }
func (s *String) RuntimeType() typesystem.Type { return typesystem.StringType }

type Char struct {
	Value rune
}

func (c *Char) Type() ObjectType             { return CHAR_OBJ }
func (c *Char) Inspect() string              { return "'" + string(c.Value) + "'" }
func (c *Char) RuntimeType() typesystem.Type { return typesystem.CharType }

// Nil is the empty list.
type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "[]" }
func (n *Nil) RuntimeType() typesystem.Type {
	return typesystem.TList{Elem: typesystem.TVar{Name: "a"}}
}

// Cons is a lazy list cell. Neither Head nor Tail is forced at
// construction time.
type Cons struct {
	Head Thunk
	Tail Thunk
}

func (c *Cons) Type() ObjectType { return CONS_OBJ }
func (c *Cons) Inspect() string {
	s, err := Render(Pure[Object](c))
	if err != nil {
		return fmt.Sprintf("<error: %s>", err)
	}
	return s
}
func (c *Cons) RuntimeType() typesystem.Type {
	return typesystem.TList{Elem: typesystem.TVar{Name: "a"}}
}

// Tuple holds deferred components; each is evaluated independently and
// only on demand.
type Tuple struct {
	Elements []Thunk
}

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }
func (t *Tuple) Inspect() string {
	s, err := Render(Pure[Object](t))
	if err != nil {
		return fmt.Sprintf("<error: %s>", err)
	}
	return s
}
func (t *Tuple) RuntimeType() typesystem.Type {
	elems := make([]typesystem.Type, len(t.Elements))
	for i := range elems {
		// One fresh-looking variable per slot: (a, b, c, ...).
		elems[i] = typesystem.TVar{Name: string(rune('a' + i%26))}
	}
	return typesystem.TTuple{Elems: elems}
}

// Function is a closure: a parameter pattern, a body, and a snapshot
// of the environment taken at creation time.
type Function struct {
	Param ast.Pattern
	Body  ast.Expression
	Env   *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return "<fun>" }
func (f *Function) RuntimeType() typesystem.Type {
	return typesystem.TArrow{
		From: typesystem.TVar{Name: "a"},
		To:   typesystem.TVar{Name: "b"},
	}
}
