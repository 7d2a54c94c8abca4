package evaluator

import (
	"fmt"
	"strings"

	"github.com/ancavar/fp2023/internal/ast"
)

// EvalProgram folds the program's declarations into one top-level
// environment, in order, starting from empty. Each declaration's value
// stays deferred; the pattern matcher decides how much of it to force.
// The fold short-circuits on the first failure.
func (e *Evaluator) EvalProgram(program *ast.Program) Eval[*Environment] {
	return e.EvalDecls(NewEnvironment(), program.Declarations)
}

// EvalDecls folds declarations into an existing environment. The REPL
// uses this to accumulate a session scope across inputs.
func (e *Evaluator) EvalDecls(env *Environment, decls []*ast.Declaration) Eval[*Environment] {
	acc := Pure(env)
	for _, decl := range decls {
		decl := decl
		value := Suspend(func() Thunk {
			return e.Eval(env, decl.Value)
		})
		acc = e.matchPattern(acc, decl.Pattern, value)
	}
	return acc
}

// RenderBindings forces every top-level binding (recursively, nested
// structure included) and prints one "name = value" line per binding
// in first-binding order. The first failure anywhere replaces the
// whole output.
func (e *Evaluator) RenderBindings(env *Environment) (string, *RuntimeError) {
	var b strings.Builder
	for _, name := range env.Names() {
		value, _ := env.Get(name)
		s, err := Render(value)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s = %s\n", name, s)
	}
	return b.String(), nil
}

// RunProgram is the convenience entry: evaluate all declarations and
// render either the bindings or the first error.
func (e *Evaluator) RunProgram(program *ast.Program) (string, *RuntimeError) {
	env, err := Run(e.EvalProgram(program))
	if err != nil {
		return "", err
	}
	return e.RenderBindings(env)
}
