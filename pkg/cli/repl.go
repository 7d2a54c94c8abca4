package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ancavar/fp2023/internal/config"
	"github.com/ancavar/fp2023/internal/evaluator"
	"github.com/ancavar/fp2023/internal/pipeline"
)

const replBanner = "haski REPL. Ctrl+C cancels input, Ctrl+D exits. Type :help for commands."

const replHelp = `
REPL commands:
  :help            Show this help
  :quit / :exit    Exit the REPL
  :load <file>     Load a source file into the current session
  :type <expr>     Show the runtime type of an expression (forces to weak head)
  :reset           Reset the session (new empty top-level scope)

Declarations (x = expr) extend the session scope; a bare expression is
bound to "it" and printed.
`

// session is one REPL's accumulated interpreter state.
type session struct {
	eval *evaluator.Evaluator
	env  *evaluator.Environment
}

func newSession() *session {
	return &session{
		eval: evaluator.New(),
		env:  evaluator.NewEnvironment(),
	}
}

func runREPL(cfg *config.Config, out, errOut io.Writer) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := resolveHistoryPath(cfg.HistoryFile)
	if f, err := os.Open(historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, replBanner)
	sess := newSession()

	for {
		input, err := line.Prompt(cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			// io.EOF on Ctrl+D.
			fmt.Fprintln(out)
			return 0
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(trimmed, ":") {
			if quit := sess.command(cfg, trimmed, out, errOut); quit {
				return 0
			}
			continue
		}

		sess.evalInput(cfg, trimmed, out, errOut)
	}
}

// command handles a :colon command; returns true to exit the REPL.
func (s *session) command(cfg *config.Config, input string, out, errOut io.Writer) bool {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case ":quit", ":exit":
		return true

	case ":help":
		fmt.Fprint(out, replHelp)

	case ":reset":
		*s = *newSession()

	case ":load":
		if rest == "" {
			fmt.Fprintln(errOut, colorize(cfg, ":load needs a file path"))
			break
		}
		src, err := os.ReadFile(rest)
		if err != nil {
			fmt.Fprintln(errOut, colorize(cfg, fmt.Sprintf("cannot read %s: %v", rest, err)))
			break
		}
		s.evalDeclarations(cfg, string(src), rest, out, errOut)

	case ":type":
		if rest == "" {
			fmt.Fprintln(errOut, colorize(cfg, ":type needs an expression"))
			break
		}
		s.showType(cfg, rest, errOut, out)

	default:
		fmt.Fprintln(errOut, colorize(cfg, "unknown command "+cmd+" (try :help)"))
	}
	return false
}

// evalInput treats the line as declarations first; if it does not
// parse as declarations, it is re-parsed as an expression bound to
// "it" and printed.
func (s *session) evalInput(cfg *config.Config, input string, out, errOut io.Writer) {
	ctx := Parse(input, "<repl>")
	if !ctx.HasErrors() {
		s.runDecls(cfg, ctx, out, errOut, false)
		return
	}

	exprCtx := Parse("it = "+input, "<repl>")
	if exprCtx.HasErrors() {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(errOut, colorize(cfg, diag.Error()))
		}
		return
	}
	s.runDecls(cfg, exprCtx, out, errOut, true)
}

func (s *session) evalDeclarations(cfg *config.Config, source, filePath string, out, errOut io.Writer) {
	ctx := Parse(source, filePath)
	if ctx.HasErrors() {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(errOut, colorize(cfg, diag.Error()))
		}
		return
	}
	s.runDecls(cfg, ctx, out, errOut, false)
}

// runDecls folds the parsed declarations into the session environment.
// When printIt is set, the binding "it" is forced and shown with its
// runtime type.
func (s *session) runDecls(cfg *config.Config, ctx *pipeline.PipelineContext, out, errOut io.Writer, printIt bool) {
	_, err := evaluator.Run(s.eval.EvalDecls(s.env, ctx.AstRoot.Declarations))
	if err != nil {
		fmt.Fprintln(errOut, colorize(cfg, "error: "+err.Error()))
		return
	}
	if !printIt {
		return
	}

	value, ok := s.env.Get("it")
	if !ok {
		return
	}
	whnf, runErr := evaluator.Run(value)
	if runErr != nil {
		fmt.Fprintln(errOut, colorize(cfg, "error: "+runErr.Error()))
		return
	}
	rendered, renderErr := evaluator.Render(evaluator.Pure(whnf))
	if renderErr != nil {
		fmt.Fprintln(errOut, colorize(cfg, "error: "+renderErr.Error()))
		return
	}
	fmt.Fprintf(out, "%s : %s\n", rendered, whnf.RuntimeType())
}

// showType evaluates an expression to weak-head-normal form and prints
// its runtime shape.
func (s *session) showType(cfg *config.Config, expr string, errOut, out io.Writer) {
	ctx := Parse("it_t = "+expr, "<repl>")
	if ctx.HasErrors() {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(errOut, colorize(cfg, diag.Error()))
		}
		return
	}
	if len(ctx.AstRoot.Declarations) == 0 {
		return
	}
	value := s.eval.Eval(s.env, ctx.AstRoot.Declarations[0].Value)
	whnf, err := evaluator.Run(value)
	if err != nil {
		fmt.Fprintln(errOut, colorize(cfg, "error: "+err.Error()))
		return
	}
	fmt.Fprintf(out, "%s : %s\n", expr, whnf.RuntimeType())
}

func resolveHistoryPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
