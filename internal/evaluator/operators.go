package evaluator

import "strings"

// Ordering is the result of a structural comparison.
const (
	orderLess    = -1
	orderEqual   = 0
	orderGreater = 1
)

func applyUnop(operator string, operand Object) Thunk {
	switch operator {
	case "-":
		integer, ok := operand.(*Integer)
		if !ok {
			return Fail[Object](typeMismatch())
		}
		return Pure[Object](&Integer{Value: -integer.Value})
	case "not":
		boolean, ok := operand.(*Boolean)
		if !ok {
			return Fail[Object](typeMismatch())
		}
		return Pure[Object](nativeBoolToBooleanObject(!boolean.Value))
	}
	return Fail[Object](typeMismatch())
}

// applyBinop applies a binary operator to two forced operands.
// Arithmetic needs two Ints, logic two Bools; every comparison
// operator goes through the structural compare.
func applyBinop(left, right Object, operator string) Thunk {
	switch operator {
	case "+", "-", "*", "/":
		li, lok := left.(*Integer)
		ri, rok := right.(*Integer)
		if !lok || !rok {
			return Fail[Object](typeMismatch())
		}
		switch operator {
		case "+":
			return Pure[Object](&Integer{Value: li.Value + ri.Value})
		case "-":
			return Pure[Object](&Integer{Value: li.Value - ri.Value})
		case "*":
			return Pure[Object](&Integer{Value: li.Value * ri.Value})
		default:
			if ri.Value == 0 {
				return Fail[Object](divisionByZero())
			}
			// Go's / truncates toward zero, which is the required
			// native integer division.
			return Pure[Object](&Integer{Value: li.Value / ri.Value})
		}

	case "&&", "||":
		lb, lok := left.(*Boolean)
		rb, rok := right.(*Boolean)
		if !lok || !rok {
			return Fail[Object](typeMismatch())
		}
		if operator == "&&" {
			return Pure[Object](nativeBoolToBooleanObject(lb.Value && rb.Value))
		}
		return Pure[Object](nativeBoolToBooleanObject(lb.Value || rb.Value))

	case "==", "/=", "<", "<=", ">", ">=":
		return Bind(compare(left, right), func(ord int) Thunk {
			switch operator {
			case "==":
				return Pure[Object](nativeBoolToBooleanObject(ord == orderEqual))
			case "/=":
				return Pure[Object](nativeBoolToBooleanObject(ord != orderEqual))
			case "<":
				return Pure[Object](nativeBoolToBooleanObject(ord == orderLess))
			case "<=":
				return Pure[Object](nativeBoolToBooleanObject(ord != orderGreater))
			case ">":
				return Pure[Object](nativeBoolToBooleanObject(ord == orderGreater))
			default:
				return Pure[Object](nativeBoolToBooleanObject(ord != orderLess))
			}
		})
	}

	return Fail[Object](typeMismatch())
}

// compare produces a three-way ordering over forced values. Same-type
// scalars use their natural total order; lists compare
// lexicographically, forcing only as much structure as the comparison
// needs. Tuples are not comparable.
func compare(left, right Object) Eval[int] {
	switch left := left.(type) {

	case *Integer:
		if right, ok := right.(*Integer); ok {
			return Pure(orderInts(left.Value, right.Value))
		}

	case *Boolean:
		// False < True.
		if right, ok := right.(*Boolean); ok {
			return Pure(orderInts(boolToInt(left.Value), boolToInt(right.Value)))
		}

	case *String:
		if right, ok := right.(*String); ok {
			return Pure(strings.Compare(left.Value, right.Value))
		}

	case *Char:
		if right, ok := right.(*Char); ok {
			return Pure(orderInts(int64(left.Value), int64(right.Value)))
		}

	case *Nil:
		if _, ok := right.(*Nil); ok {
			return Pure(orderEqual)
		}

	case *Cons:
		if right, ok := right.(*Cons); ok {
			return compareCons(left, right)
		}
	}

	return Fail[int](typeMismatch())
}

func compareCons(left, right *Cons) Eval[int] {
	return Bind(left.Head, func(lh Object) Eval[int] {
		return Bind(right.Head, func(rh Object) Eval[int] {
			return Bind(compare(lh, rh), func(ord int) Eval[int] {
				if ord != orderEqual {
					return Pure(ord)
				}
				return Bind(left.Tail, func(lt Object) Eval[int] {
					return Bind(right.Tail, func(rt Object) Eval[int] {
						return compare(lt, rt)
					})
				})
			})
		})
	})
}

func orderInts(a, b int64) int {
	switch {
	case a < b:
		return orderLess
	case a > b:
		return orderGreater
	default:
		return orderEqual
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
