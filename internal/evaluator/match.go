package evaluator

import (
	"github.com/ancavar/fp2023/internal/ast"
)

// matchPattern matches pattern against a deferred value, extending the
// threaded environment with new bindings. Threading the environment as
// an Eval lets a whole matching pass short-circuit on an upstream
// failure: once any step fails, the rest never runs.
//
// Variable and wildcard patterns leave the value unforced; structural
// and literal patterns force it to weak-head-normal form.
func (e *Evaluator) matchPattern(env Eval[*Environment], pattern ast.Pattern, value Thunk) Eval[*Environment] {
	switch pattern := pattern.(type) {

	case *ast.IdentifierPattern:
		return Bind(env, func(en *Environment) Eval[*Environment] {
			en.Set(pattern.Value, value)
			return Pure(en)
		})

	case *ast.WildcardPattern:
		return env

	case *ast.ConsPattern:
		return Bind(env, func(en *Environment) Eval[*Environment] {
			return Bind(value, func(v Object) Eval[*Environment] {
				cons, ok := v.(*Cons)
				if !ok {
					return Fail[*Environment](nonExhaustive("list"))
				}
				headEnv := e.matchPattern(Pure(en), pattern.Head, cons.Head)
				return e.matchPattern(headEnv, pattern.Tail, cons.Tail)
			})
		})

	case *ast.NilPattern:
		return Bind(env, func(en *Environment) Eval[*Environment] {
			return Bind(value, func(v Object) Eval[*Environment] {
				if _, ok := v.(*Nil); !ok {
					return Fail[*Environment](nonExhaustive("[]"))
				}
				return Pure(en)
			})
		})

	case *ast.TuplePattern:
		return Bind(env, func(en *Environment) Eval[*Environment] {
			return Bind(value, func(v Object) Eval[*Environment] {
				tuple, ok := v.(*Tuple)
				if !ok || len(tuple.Elements) != len(pattern.Elements) {
					return Fail[*Environment](nonExhaustive("tuple"))
				}
				// Left fold keeps failure order deterministic:
				// elements match left to right.
				acc := Pure(en)
				for i, elemPattern := range pattern.Elements {
					acc = e.matchPattern(acc, elemPattern, tuple.Elements[i])
				}
				return acc
			})
		})

	case *ast.LiteralPattern:
		return Bind(env, func(en *Environment) Eval[*Environment] {
			return Bind(value, func(v Object) Eval[*Environment] {
				if literalEquals(pattern.Literal, v) {
					return Pure(en)
				}
				return Fail[*Environment](nonExhaustive("literal"))
			})
		})
	}

	return Fail[*Environment](nonExhaustive("pattern"))
}

// literalEquals compares a literal pattern against a forced value.
// Any mismatch, including a type mismatch, is just "no match".
func literalEquals(literal ast.Expression, v Object) bool {
	switch literal := literal.(type) {
	case *ast.IntegerLiteral:
		if i, ok := v.(*Integer); ok {
			return i.Value == literal.Value
		}
	case *ast.BooleanLiteral:
		if b, ok := v.(*Boolean); ok {
			return b.Value == literal.Value
		}
	case *ast.StringLiteral:
		if s, ok := v.(*String); ok {
			return s.Value == literal.Value
		}
	case *ast.CharLiteral:
		if c, ok := v.(*Char); ok {
			return c.Value == literal.Value
		}
	}
	return false
}
