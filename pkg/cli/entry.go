package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ancavar/fp2023/internal/config"
	"github.com/ancavar/fp2023/internal/evaluator"
	"github.com/ancavar/fp2023/internal/lexer"
	"github.com/ancavar/fp2023/internal/parser"
	"github.com/ancavar/fp2023/internal/pipeline"
	"github.com/ancavar/fp2023/internal/prettyprinter"
)

const appName = "haski"

// isSourceFile checks if a file has a recognized source extension.
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Execute is the CLI entry point. It runs a source file, a -e
// one-liner, or the REPL, and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(errOut)
	evalStr := fs.String("e", "", "evaluate the given snippet and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", appName, err)
		return 1
	}

	switch {
	case *evalStr != "":
		return runSource(cfg, *evalStr, "<eval>", out, errOut)
	case fs.NArg() > 0:
		return runFile(cfg, fs.Arg(0), out, errOut)
	default:
		return runREPL(cfg, out, errOut)
	}
}

func runFile(cfg *config.Config, path string, out, errOut io.Writer) int {
	if !isSourceFile(path) {
		fmt.Fprintf(errOut, "%s: %s is not a source file (want %s)\n",
			appName, path, strings.Join(config.SourceFileExtensions, ", "))
		return 1
	}
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	return runSource(cfg, string(src), path, out, errOut)
}

func runSource(cfg *config.Config, source, filePath string, out, errOut io.Writer) int {
	ctx := Parse(source, filePath)
	if ctx.HasErrors() {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(errOut, colorize(cfg, diag.Error()))
		}
		return 1
	}

	if cfg.DumpAST {
		printer := prettyprinter.NewCodePrinter()
		fmt.Fprint(errOut, printer.PrintProgram(ctx.AstRoot))
	}

	eval := evaluator.New()
	rendered, runErr := eval.RunProgram(ctx.AstRoot)
	if runErr != nil {
		fmt.Fprintln(errOut, colorize(cfg, "error: "+runErr.Error()))
		return 1
	}
	fmt.Fprint(out, rendered)
	return 0
}

// Parse runs the lex and parse stages over one source unit.
func Parse(source, filePath string) *pipeline.PipelineContext {
	ctx := &pipeline.PipelineContext{SourceCode: source, FilePath: filePath}
	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	).Run(ctx)
}

// colorize wraps s in red when error output should be colored: forced
// by config, otherwise only when stderr is a terminal.
func colorize(cfg *config.Config, s string) string {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if cfg.Color != nil {
		useColor = *cfg.Color
	}
	if !useColor {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}
