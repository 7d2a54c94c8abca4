package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ancavar/fp2023/internal/ast"
)

// --- Code Printer (output looks like source code) ---

// Operator precedence (higher = binds tighter), matching the parser.
var operatorPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3,
	"/=": 3,
	"<":  3,
	">":  3,
	"<=": 3,
	">=": 3,
	":":  4,
	"+":  5,
	"-":  5,
	"*":  6,
	"/":  6,
}

// Right-associative operators.
var rightAssoc = map[string]bool{
	":": true,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 7 // default high precedence for unknown ops
}

type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// PrintProgram renders every declaration, one per line.
func (p *CodePrinter) PrintProgram(program *ast.Program) string {
	p.buf.Reset()
	for _, decl := range program.Declarations {
		p.buf.WriteString(p.Declaration(decl))
		p.buf.WriteByte('\n')
	}
	return p.buf.String()
}

func (p *CodePrinter) Declaration(decl *ast.Declaration) string {
	return fmt.Sprintf("%s = %s", p.Pattern(decl.Pattern), p.expr(decl.Value, 0))
}

// Expression renders a single expression.
func (p *CodePrinter) Expression(expr ast.Expression) string {
	return p.expr(expr, 0)
}

func (p *CodePrinter) expr(expr ast.Expression, parentPrec int) string {
	switch expr := expr.(type) {
	case *ast.Identifier:
		return expr.Value

	case *ast.IntegerLiteral:
		return strconv.FormatInt(expr.Value, 10)

	case *ast.BooleanLiteral:
		if expr.Value {
			return "True"
		}
		return "False"

	case *ast.StringLiteral:
		return strconv.Quote(expr.Value)

	case *ast.CharLiteral:
		return "'" + string(expr.Value) + "'"

	case *ast.ListLiteral:
		parts := make([]string, len(expr.Elements))
		for i, el := range expr.Elements {
			parts[i] = p.expr(el, 0)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case *ast.TupleLiteral:
		parts := make([]string, len(expr.Elements))
		for i, el := range expr.Elements {
			parts[i] = p.expr(el, 0)
		}
		return "(" + strings.Join(parts, ", ") + ")"

	case *ast.PrefixExpression:
		inner := p.expr(expr.Right, getPrecedence("*")+1)
		if expr.Operator == "not" {
			return parenIf(parentPrec > 0, "not "+inner)
		}
		return parenIf(parentPrec > 0, expr.Operator+inner)

	case *ast.InfixExpression:
		prec := getPrecedence(expr.Operator)
		leftPrec, rightPrec := prec, prec+1
		if rightAssoc[expr.Operator] {
			leftPrec, rightPrec = prec+1, prec
		}
		s := fmt.Sprintf("%s %s %s",
			p.expr(expr.Left, leftPrec),
			expr.Operator,
			p.expr(expr.Right, rightPrec))
		return parenIf(prec < parentPrec, s)

	case *ast.IfExpression:
		s := fmt.Sprintf("if %s then %s else %s",
			p.expr(expr.Condition, 0),
			p.expr(expr.Consequence, 0),
			p.expr(expr.Alternative, 0))
		return parenIf(parentPrec > 0, s)

	case *ast.CaseExpression:
		branches := make([]string, len(expr.Branches))
		for i, br := range expr.Branches {
			branches[i] = fmt.Sprintf("%s -> %s", p.Pattern(br.Pattern), p.expr(br.Body, 0))
		}
		s := fmt.Sprintf("case %s of { %s }",
			p.expr(expr.Scrutinee, 0), strings.Join(branches, " ; "))
		return parenIf(parentPrec > 0, s)

	case *ast.LetExpression:
		bindings := make([]string, len(expr.Bindings))
		for i, b := range expr.Bindings {
			bindings[i] = fmt.Sprintf("%s = %s", p.Pattern(b.Pattern), p.expr(b.Value, 0))
		}
		var s string
		if len(bindings) == 1 {
			s = fmt.Sprintf("let %s in %s", bindings[0], p.expr(expr.Body, 0))
		} else {
			s = fmt.Sprintf("let { %s } in %s", strings.Join(bindings, " ; "), p.expr(expr.Body, 0))
		}
		return parenIf(parentPrec > 0, s)

	case *ast.FunctionLiteral:
		// Re-sugar nested lambdas: \x -> \y -> e prints as \x y -> e.
		params := []string{p.Pattern(expr.Param)}
		body := expr.Body
		for {
			inner, ok := body.(*ast.FunctionLiteral)
			if !ok {
				break
			}
			params = append(params, p.Pattern(inner.Param))
			body = inner.Body
		}
		s := fmt.Sprintf("\\%s -> %s", strings.Join(params, " "), p.expr(body, 0))
		return parenIf(parentPrec > 0, s)

	case *ast.CallExpression:
		applyPrec := getPrecedence("*") + 1
		s := fmt.Sprintf("%s %s",
			p.expr(expr.Function, applyPrec),
			p.expr(expr.Argument, applyPrec+1))
		return parenIf(applyPrec < parentPrec, s)
	}

	return "<?>"
}

// Pattern renders a binding pattern.
func (p *CodePrinter) Pattern(pattern ast.Pattern) string {
	switch pattern := pattern.(type) {
	case *ast.IdentifierPattern:
		return pattern.Value
	case *ast.WildcardPattern:
		return "_"
	case *ast.LiteralPattern:
		return p.expr(pattern.Literal, 0)
	case *ast.ConsPattern:
		return fmt.Sprintf("(%s : %s)", p.Pattern(pattern.Head), p.Pattern(pattern.Tail))
	case *ast.NilPattern:
		return "[]"
	case *ast.TuplePattern:
		parts := make([]string, len(pattern.Elements))
		for i, el := range pattern.Elements {
			parts[i] = p.Pattern(el)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return "<?>"
}

func parenIf(cond bool, s string) string {
	if cond {
		return "(" + s + ")"
	}
	return s
}
