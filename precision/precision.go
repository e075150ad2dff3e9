// Package precision drives precision conformance checks of built-in
// functions. A Case wraps one built-in instantiation in a small
// program, samples its inputs deterministically, evaluates the
// reference interval for every sample and checks that the concrete
// outputs of an Executor fall inside. A Runner sweeps many cases
// against one executor with bounded parallelism.
//
// The package owns no GL machinery. Executor is the boundary to the
// implementation under test; ReferenceExecutor stands in for it when
// no implementation is attached.
package precision

import (
	"context"
	"strings"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
)

// Program is the checked program of one case: typed input variables,
// the statements computing the outputs, and the output variables to
// read back. The first output is the return value of the built-in;
// a second output is present for built-ins that write through an out
// parameter.
type Program struct {
	Precision floatfmt.Precision
	Inputs    []*expr.Variable
	Outputs   []*expr.Variable
	Stmts     []expr.Statement
}

// String renders the program one declaration per line.
func (p *Program) String() string {
	return expr.PrintProgram(p.Stmts)
}

// Sample holds one concrete value per program input, in input order.
type Sample []expr.Point

// Output holds one concrete value per program output, in output order.
type Output []expr.Point

// Executor runs a program on the implementation under test and reports
// the concrete outputs it produced, one Output per sample and in the
// same order. Implementations must honor context cancellation.
type Executor interface {
	Execute(ctx context.Context, prog *Program, samples []Sample) ([]Output, error)
}

// renderPoint formats a concrete value with the hex rendering of the
// format, componentwise for vectors and matrices.
func renderPoint(f floatfmt.Format, p expr.Point) string {
	switch p := p.(type) {
	case expr.ScalarPoint:
		return f.FloatToHex(float64(p))
	case expr.VectorPoint:
		parts := make([]string, len(p))
		for i, c := range p {
			parts[i] = f.FloatToHex(c)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case expr.MatrixPoint:
		cols := make([]string, len(p))
		for c, col := range p {
			parts := make([]string, len(col))
			for r, v := range col {
				parts[r] = f.FloatToHex(v)
			}
			cols[c] = "(" + strings.Join(parts, ", ") + ")"
		}
		return "(" + strings.Join(cols, ", ") + ")"
	default:
		return "?"
	}
}

// renderValue formats an interval value with the hex rendering of the
// format, componentwise for vectors and matrices.
func renderValue(f floatfmt.Format, v expr.Value) string {
	switch v := v.(type) {
	case expr.Scalar:
		return f.IntervalToHex(v.Iv())
	case expr.Vector:
		parts := make([]string, len(v))
		for i, c := range v {
			parts[i] = f.IntervalToHex(c)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case expr.Matrix:
		cols := make([]string, len(v))
		for c, col := range v {
			parts := make([]string, len(col))
			for r, iv := range col {
				parts[r] = f.IntervalToHex(iv)
			}
			cols[c] = "(" + strings.Join(parts, ", ") + ")"
		}
		return "(" + strings.Join(cols, ", ") + ")"
	default:
		return "?"
	}
}
