package precision

import (
	"context"
	"fmt"
	"math"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
	"github.com/gogpu/glprec/interval"
)

// ReferenceExecutor produces outputs the way a conforming
// implementation would: it evaluates the program's reference intervals
// at each sample and picks one admitted value per component. Perturb,
// when nonzero, is added to every finite output component afterwards,
// which pushes the outputs outside tight intervals and forces
// failures.
type ReferenceExecutor struct {
	Perturb float64
}

// Execute evaluates the program for every sample.
func (e *ReferenceExecutor) Execute(ctx context.Context, prog *Program, samples []Sample) ([]Output, error) {
	format := floatfmt.FormatFor(prog.Precision)
	outs := make([]Output, len(samples))
	for i, s := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(s) != len(prog.Inputs) {
			return nil, fmt.Errorf("sample %d has %d values, program wants %d", i, len(s), len(prog.Inputs))
		}
		vals := evalReference(format, prog, s)
		out := make(Output, len(vals))
		for j, v := range vals {
			out[j] = e.pickValue(v)
		}
		outs[i] = out
	}
	return outs, nil
}

func (e *ReferenceExecutor) pickValue(v expr.Value) expr.Point {
	switch v := v.(type) {
	case expr.Scalar:
		return expr.ScalarPoint(e.pick(v.Iv()))
	case expr.Vector:
		p := make(expr.VectorPoint, len(v))
		for i, c := range v {
			p[i] = e.pick(c)
		}
		return p
	case expr.Matrix:
		p := make(expr.MatrixPoint, len(v))
		for c, col := range v {
			p[c] = make([]float64, len(col))
			for r, iv := range col {
				p[c][r] = e.pick(iv)
			}
		}
		return p
	default:
		panic(fmt.Sprintf("unknown value kind %T", v))
	}
}

// pick returns one value the interval admits: the midpoint of an
// ordinary range, a finite endpoint of a half-bounded range, zero for
// an unbounded one, and NaN when nothing else is admitted.
func (e *ReferenceExecutor) pick(iv interval.Interval) float64 {
	v := pickAdmitted(iv)
	if e.Perturb != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
		v += e.Perturb
	}
	return v
}

func pickAdmitted(iv interval.Interval) float64 {
	lo, hi := iv.Lo(), iv.Hi()
	switch {
	case iv.Empty():
		return math.NaN()
	case iv.Ordinary():
		return iv.Midpoint()
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return 0
	case math.IsInf(hi, 1):
		return lo
	case math.IsInf(lo, -1):
		return hi
	default:
		return iv.Midpoint()
	}
}

// evalReference computes the reference interval of every program
// output for one sample. Inputs are rounded through the format before
// evaluation; out-parameter outputs are bound up front so the
// evaluator finds them.
func evalReference(f floatfmt.Format, prog *Program, s Sample) []expr.Value {
	ctx := expr.NewContext(f, prog.Precision)
	for j, in := range prog.Inputs {
		ctx.Env.Bind(in, expr.RoundPoint(f, s[j]))
	}
	for _, out := range prog.Outputs {
		ctx.Env.Bind(out, expr.NewValue(out.Type))
	}
	expr.ExecStatements(ctx, prog.Stmts)
	vals := make([]expr.Value, len(prog.Outputs))
	for j, out := range prog.Outputs {
		vals[j] = ctx.Env.Lookup(out)
	}
	return vals
}
