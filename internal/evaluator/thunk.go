package evaluator

// Eval is a deferred computation: either a finished outcome (a value
// or a runtime error) or a suspended step that, when invoked, yields
// the next Eval in the chain. Suspension is data-structure laziness,
// not scheduling: a suspended Eval is inert until someone forces or
// binds it.
//
// There is no memoization. Forcing the same suspended Eval twice
// re-runs its step, so evaluation is call-by-name.
type Eval[T any] struct {
	step func() Eval[T] // non-nil means suspended
	val  T
	err  *RuntimeError // non-nil means failed
}

// Thunk is the deferred computation of a runtime value; nearly every
// evaluator operation works in this type.
type Thunk = Eval[Object]

// Pure wraps an already-computed value.
func Pure[T any](v T) Eval[T] {
	return Eval[T]{val: v}
}

// Fail wraps a runtime error. Errors are terminal for the chain they
// occur in: Bind propagates them without invoking its continuation.
func Fail[T any](err *RuntimeError) Eval[T] {
	return Eval[T]{err: err}
}

// Suspend defers a step. The step runs every time the Eval is forced
// or bound through, never at construction.
func Suspend[T any](step func() Eval[T]) Eval[T] {
	return Eval[T]{step: step}
}

// Done reports whether the computation has reached a concrete outcome.
func (e Eval[T]) Done() bool { return e.step == nil }

// Err returns the error of a failed computation, or nil.
func (e Eval[T]) Err() *RuntimeError { return e.err }

// Value returns the computed value. Only meaningful when Done and
// Err() == nil.
func (e Eval[T]) Value() T { return e.val }

// Force resolves one level of suspension: a Done computation is
// returned unchanged, a suspended one has its step invoked exactly
// once. The result may itself still be suspended.
func (e Eval[T]) Force() Eval[T] {
	if e.step != nil {
		return e.step()
	}
	return e
}

// Bind drives e through any chain of suspensions, then applies k to
// the value. A failed computation short-circuits: k is never invoked
// and the error is returned as-is. Bind never panics; all failure is
// carried as data.
func Bind[T, U any](e Eval[T], k func(T) Eval[U]) Eval[U] {
	for e.step != nil {
		e = e.step()
	}
	if e.err != nil {
		return Fail[U](e.err)
	}
	return k(e.val)
}

// Run drives e to completion and returns the final outcome.
func Run[T any](e Eval[T]) (T, *RuntimeError) {
	for e.step != nil {
		e = e.step()
	}
	return e.val, e.err
}
