package evaluator

import (
	"strings"
)

// Render forces a deferred value all the way down and prints it:
// lists as [a, b, c], tuples as (a, b), strings quoted, chars
// single-quoted. The first error anywhere in the structure wins.
// Rendering an infinite structure diverges; that is a documented
// property of forced printing, not something Render guards against.
func Render(value Thunk) (string, *RuntimeError) {
	v, err := Run(value)
	if err != nil {
		return "", err
	}

	switch v := v.(type) {
	case *Integer, *Boolean, *String, *Char, *Nil, *Function:
		return v.Inspect(), nil

	case *Cons:
		var parts []string
		var current Object = v
		for {
			cons, ok := current.(*Cons)
			if !ok {
				break
			}
			s, err := Render(cons.Head)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)

			tail, err := Run(cons.Tail)
			if err != nil {
				return "", err
			}
			if _, done := tail.(*Nil); done {
				break
			}
			current = tail
		}
		// A non-list tail (e.g. 1 : 2) is a malformed list.
		if _, ok := current.(*Cons); !ok {
			if _, ok := current.(*Nil); !ok {
				return "", typeMismatch()
			}
		}
		return "[" + strings.Join(parts, ", ") + "]", nil

	case *Tuple:
		parts := make([]string, len(v.Elements))
		for i, el := range v.Elements {
			s, err := Render(el)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "(" + strings.Join(parts, ", ") + ")", nil
	}

	return "", typeMismatch()
}
