package evaluator

import (
	"github.com/ancavar/fp2023/internal/ast"
)

var (
	NIL   = &Nil{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

// Eval turns an expression plus an environment into a deferred
// computation of a value. The per-construct policy below is part of
// the observable contract: identifier lookup and unary operators run
// immediately, everything else is suspended until forced.
func (e *Evaluator) Eval(env *Environment, node ast.Expression) Thunk {
	switch node := node.(type) {

	case *ast.Identifier:
		// Lookup is immediate; the stored value may itself still be
		// suspended.
		if t, ok := env.Get(node.Value); ok {
			return t
		}
		return Fail[Object](notInScope(node.Value))

	case *ast.IntegerLiteral:
		return Suspend(func() Thunk {
			return Pure[Object](&Integer{Value: node.Value})
		})

	case *ast.BooleanLiteral:
		return Suspend(func() Thunk {
			return Pure[Object](nativeBoolToBooleanObject(node.Value))
		})

	case *ast.StringLiteral:
		return Suspend(func() Thunk {
			return Pure[Object](&String{Value: node.Value})
		})

	case *ast.CharLiteral:
		return Suspend(func() Thunk {
			return Pure[Object](&Char{Value: node.Value})
		})

	case *ast.ListLiteral:
		return Suspend(func() Thunk {
			// Build the cons chain back to front; every head and tail
			// stays deferred.
			var list Object = NIL
			for i := len(node.Elements) - 1; i >= 0; i-- {
				list = &Cons{
					Head: e.Eval(env, node.Elements[i]),
					Tail: Pure(list),
				}
			}
			return Pure(list)
		})

	case *ast.TupleLiteral:
		return Suspend(func() Thunk {
			elements := make([]Thunk, len(node.Elements))
			for i, el := range node.Elements {
				elements[i] = e.Eval(env, el)
			}
			return Pure[Object](&Tuple{Elements: elements})
		})

	case *ast.PrefixExpression:
		// Unary operators force their operand immediately.
		return Bind(e.Eval(env, node.Right), func(operand Object) Thunk {
			return applyUnop(node.Operator, operand)
		})

	case *ast.InfixExpression:
		if node.Operator == ":" {
			return Suspend(func() Thunk {
				return Pure[Object](&Cons{
					Head: e.Eval(env, node.Left),
					Tail: e.Eval(env, node.Right),
				})
			})
		}
		return Suspend(func() Thunk {
			return Bind(e.Eval(env, node.Left), func(left Object) Thunk {
				return Bind(e.Eval(env, node.Right), func(right Object) Thunk {
					return applyBinop(left, right, node.Operator)
				})
			})
		})

	case *ast.IfExpression:
		return Suspend(func() Thunk {
			return Bind(e.Eval(env, node.Condition), func(cond Object) Thunk {
				boolean, ok := cond.(*Boolean)
				if !ok {
					return Fail[Object](typeMismatch())
				}
				// The chosen branch is returned unforced; the other
				// branch is never touched.
				if boolean.Value {
					return e.Eval(env, node.Consequence)
				}
				return e.Eval(env, node.Alternative)
			})
		})

	case *ast.CaseExpression:
		return Suspend(func() Thunk {
			scrutinee := e.Eval(env, node.Scrutinee)
			for _, branch := range node.Branches {
				matched := e.matchPattern(Pure(env.Snapshot()), branch.Pattern, scrutinee)
				branchEnv, err := Run(matched)
				if err != nil {
					continue
				}
				return e.Eval(branchEnv, branch.Body)
			}
			return Fail[Object](typeMismatch())
		})

	case *ast.LetExpression:
		return Suspend(func() Thunk {
			letEnv := env.Snapshot()
			acc := Pure(letEnv)
			for _, binding := range node.Bindings {
				binding := binding
				value := Suspend(func() Thunk {
					return e.Eval(letEnv, binding.Value)
				})
				acc = e.matchPattern(acc, binding.Pattern, value)
			}
			return Bind(acc, func(final *Environment) Thunk {
				return e.Eval(final, node.Body)
			})
		})

	case *ast.FunctionLiteral:
		return Suspend(func() Thunk {
			return Pure[Object](&Function{
				Param: node.Param,
				Body:  node.Body,
				Env:   env.Snapshot(),
			})
		})

	case *ast.CallExpression:
		return Suspend(func() Thunk {
			return Bind(e.Eval(env, node.Function), func(callee Object) Thunk {
				fn, ok := callee.(*Function)
				if !ok {
					return Fail[Object](typeMismatch())
				}
				// The argument is deferred: it evaluates in the
				// caller's environment when first forced. No sharing
				// across forces (call-by-name).
				argument := Suspend(func() Thunk {
					return e.Eval(env, node.Argument)
				})
				callEnv := fn.Env.Snapshot()
				bound := e.matchPattern(Pure(callEnv), fn.Param, argument)
				return Bind(bound, func(extended *Environment) Thunk {
					return e.Eval(extended, fn.Body)
				})
			})
		})
	}

	// Unreachable for ASTs produced by the parser.
	return Fail[Object](typeMismatch())
}
