package precision

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogpu/glprec/builtins"
	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
)

// DefaultSamples is the sample count of a case that does not set one.
const DefaultSamples = 128

// Case checks one built-in at one value type and precision. Samples
// sets how many input tuples are drawn and Seed makes the draw
// deterministic, so a failing case reproduces exactly.
type Case struct {
	Builtin   string
	Type      expr.Type
	Precision floatfmt.Precision
	Samples   int
	Seed      int64
}

// Name returns the case identifier used in logs and reports.
func (c *Case) Name() string {
	return fmt.Sprintf("%s.%s.%s", c.Builtin, c.Type, c.Precision)
}

// Build constructs the case program: input variables typed per the
// built-in's signature and one statement computing the result. For
// built-ins with an out parameter the written-through variable becomes
// a second program output.
func (c *Case) Build() (*Program, error) {
	fn, ok := builtins.Lookup(c.Builtin, c.Type)
	if !ok {
		return nil, fmt.Errorf("no built-in %q at %s", c.Builtin, c.Type)
	}
	params, outs, ok := builtins.Signature(c.Builtin, c.Type)
	if !ok {
		return nil, fmt.Errorf("no signature for %q at %s", c.Builtin, c.Type)
	}
	outIdx := -1
	if of, isOut := fn.(expr.OutParamFunc); isOut {
		outIdx = of.OutParamIndex()
	}
	ret := expr.NewVariable("out0", outs[0])
	prog := &Program{
		Precision: c.Precision,
		Outputs:   []*expr.Variable{ret},
	}
	args := make([]expr.Expr, len(params))
	for i, pt := range params {
		if i == outIdx {
			out := expr.NewVariable("out1", pt)
			args[i] = out
			prog.Outputs = append(prog.Outputs, out)
			continue
		}
		in := expr.NewVariable(fmt.Sprintf("in%d", len(prog.Inputs)), pt)
		args[i] = in
		prog.Inputs = append(prog.Inputs, in)
	}
	prog.Stmts = []expr.Statement{
		&expr.VariableStatement{Var: ret, Init: &expr.Apply{Fn: fn, Args: args}},
	}
	declared := append(append([]*expr.Variable{}, prog.Inputs...), prog.Outputs...)
	if errs := expr.ValidateProgram(declared, prog.Stmts, nil); len(errs) > 0 {
		return nil, fmt.Errorf("program for %s: %w", c.Name(), errs[0])
	}
	return prog, nil
}

// Result reports one case run: how many samples were checked and the
// first failure, if any.
type Result struct {
	Case    *Case
	Checked int
	Failure *Failure
}

// Passed reports whether every checked sample was admitted.
func (r *Result) Passed() bool { return r.Failure == nil }

// Failure describes the first sample whose output escaped the
// reference interval. All values are rendered in the hex notation of
// the case's format.
type Failure struct {
	SampleIndex int
	Output      string
	Program     string
	Inputs      []string
	Reference   string
	Actual      string
}

func (f *Failure) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sample %d:\n", f.SampleIndex)
	fmt.Fprintf(&b, "  %s\n", f.Program)
	for _, in := range f.Inputs {
		fmt.Fprintf(&b, "  %s\n", in)
	}
	fmt.Fprintf(&b, "  expected %s in %s\n", f.Output, f.Reference)
	fmt.Fprintf(&b, "  actual   %s = %s", f.Output, f.Actual)
	return b.String()
}

// Run builds the program, draws the samples, executes them and checks
// every output component against its reference interval. The run stops
// at the first escaping sample.
func (c *Case) Run(ctx context.Context, exec Executor) (*Result, error) {
	prog, err := c.Build()
	if err != nil {
		return nil, err
	}
	n := c.Samples
	if n <= 0 {
		n = DefaultSamples
	}
	format := floatfmt.FormatFor(c.Precision)
	samples := GenerateSamples(prog, format, n, c.Seed)
	got, err := exec.Execute(ctx, prog, samples)
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", c.Name(), err)
	}
	if len(got) != len(samples) {
		return nil, fmt.Errorf("execute %s: %d outputs for %d samples", c.Name(), len(got), len(samples))
	}
	res := &Result{Case: c}
	for i, s := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(got[i]) != len(prog.Outputs) {
			return nil, fmt.Errorf("execute %s: sample %d has %d outputs, program wants %d",
				c.Name(), i, len(got[i]), len(prog.Outputs))
		}
		refs := evalReference(format, prog, s)
		for j, out := range prog.Outputs {
			if !expr.ContainsPoint(refs[j], got[i][j]) {
				res.Checked = i
				res.Failure = newFailure(format, prog, i, s, out.Name, refs[j], got[i][j])
				return res, nil
			}
		}
	}
	res.Checked = len(samples)
	return res, nil
}

func newFailure(f floatfmt.Format, prog *Program, idx int, s Sample, out string, ref expr.Value, got expr.Point) *Failure {
	fail := &Failure{
		SampleIndex: idx,
		Output:      out,
		Program:     prog.String(),
		Reference:   renderValue(f, ref),
		Actual:      renderPoint(f, got),
	}
	for j, in := range prog.Inputs {
		fail.Inputs = append(fail.Inputs, fmt.Sprintf("%s = %s", in.Name, renderPoint(f, s[j])))
	}
	return fail
}
