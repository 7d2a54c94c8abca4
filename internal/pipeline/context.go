package pipeline

import (
	"github.com/ancavar/fp2023/internal/ast"
	"github.com/ancavar/fp2023/internal/diagnostics"
	"github.com/ancavar/fp2023/internal/token"
)

// Processor is a single stage: it consumes the context, records its
// results and diagnostics on it, and hands it to the next stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one source unit through lexing, parsing and
// evaluation.
type PipelineContext struct {
	FilePath   string
	SourceCode string

	Tokens  []token.Token
	AstRoot *ast.Program

	Errors []*diagnostics.DiagnosticError
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
