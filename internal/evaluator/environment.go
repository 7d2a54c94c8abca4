package evaluator

// Environment is a flat mutable mapping from identifier to deferred
// value. Isolation between scopes comes from explicit snapshots at
// every closure boundary, not from a parent chain: closure creation,
// function application and let-binding each copy first, so mutation of
// one scope never leaks into another. Single-threaded, so there is no
// lock.
type Environment struct {
	store map[string]Thunk
	order []string // names in first-binding order, for display
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Thunk)}
}

func (e *Environment) Get(name string) (Thunk, bool) {
	t, ok := e.store[name]
	return t, ok
}

// Set binds name to val. Rebinding an existing name replaces it:
// most-recent wins, there is no clause overloading.
func (e *Environment) Set(name string, val Thunk) {
	if _, ok := e.store[name]; !ok {
		e.order = append(e.order, name)
	}
	e.store[name] = val
}

// Snapshot returns an independent shallow copy. The thunks themselves
// are shared; only the mapping is duplicated.
func (e *Environment) Snapshot() *Environment {
	snap := &Environment{
		store: make(map[string]Thunk, len(e.store)),
		order: make([]string, len(e.order)),
	}
	for k, v := range e.store {
		snap.store[k] = v
	}
	copy(snap.order, e.order)
	return snap
}

// Names returns the bound names in first-binding order.
func (e *Environment) Names() []string {
	return e.order
}

// Len reports the number of bindings.
func (e *Environment) Len() int {
	return len(e.store)
}
