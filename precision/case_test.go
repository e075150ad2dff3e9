package precision

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
	"github.com/gogpu/glprec/interval"
)

func TestCaseBuild(t *testing.T) {
	c := &Case{Builtin: "sin", Type: expr.Float, Precision: floatfmt.Highp}
	prog, err := c.Build()
	require.NoError(t, err)

	require.Len(t, prog.Inputs, 1)
	require.Len(t, prog.Outputs, 1)
	assert.Equal(t, expr.Float, prog.Inputs[0].Type)
	assert.Equal(t, "float out0 = sin(in0);", prog.String())
}

func TestCaseBuildOutParam(t *testing.T) {
	c := &Case{Builtin: "modf", Type: expr.Vec2, Precision: floatfmt.Mediump}
	prog, err := c.Build()
	require.NoError(t, err)

	require.Len(t, prog.Inputs, 1)
	require.Len(t, prog.Outputs, 2)
	assert.Equal(t, "out0", prog.Outputs[0].Name)
	assert.Equal(t, "out1", prog.Outputs[1].Name)
	assert.Equal(t, "vec2 out0 = modf(in0, out1);", prog.String())
}

func TestCaseBuildMixedSignature(t *testing.T) {
	c := &Case{Builtin: "refract", Type: expr.Vec3, Precision: floatfmt.Highp}
	prog, err := c.Build()
	require.NoError(t, err)

	require.Len(t, prog.Inputs, 3)
	assert.Equal(t, expr.Vec3, prog.Inputs[0].Type)
	assert.Equal(t, expr.Vec3, prog.Inputs[1].Type)
	assert.Equal(t, expr.Float, prog.Inputs[2].Type)
}

func TestCaseBuildUnknown(t *testing.T) {
	c := &Case{Builtin: "texelFetch", Type: expr.Float, Precision: floatfmt.Highp}
	_, err := c.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "texelFetch")
}

func TestCaseName(t *testing.T) {
	c := &Case{Builtin: "inverse", Type: expr.Mat3, Precision: floatfmt.Mediump}
	assert.Equal(t, "inverse.mat3.mediump", c.Name())
}

func TestCaseRunReference(t *testing.T) {
	c := &Case{Builtin: "sin", Type: expr.Float, Precision: floatfmt.Highp, Samples: 64, Seed: 1}
	res, err := c.Run(context.Background(), &ReferenceExecutor{})
	require.NoError(t, err)

	assert.True(t, res.Passed())
	assert.Equal(t, 64, res.Checked)
}

func TestCaseRunOutParam(t *testing.T) {
	c := &Case{Builtin: "modf", Type: expr.Vec2, Precision: floatfmt.Highp, Samples: 32, Seed: 3}
	res, err := c.Run(context.Background(), &ReferenceExecutor{})
	require.NoError(t, err)
	assert.True(t, res.Passed())
}

func TestCaseRunDetectsEscape(t *testing.T) {
	c := &Case{Builtin: "sin", Type: expr.Float, Precision: floatfmt.Highp, Samples: 16, Seed: 1}
	res, err := c.Run(context.Background(), &ReferenceExecutor{Perturb: 0.25})
	require.NoError(t, err)

	require.NotNil(t, res.Failure)
	assert.False(t, res.Passed())
	// The first sample is zero; a quarter is far outside the sin band
	// there.
	assert.Equal(t, 0, res.Failure.SampleIndex)
	assert.Equal(t, "out0", res.Failure.Output)
	assert.Contains(t, res.Failure.Program, "sin(in0)")
}

func TestFailureReport(t *testing.T) {
	c := &Case{Builtin: "add", Type: expr.Float, Precision: floatfmt.Highp, Samples: 8, Seed: 1}
	res, err := c.Run(context.Background(), &ReferenceExecutor{Perturb: 1000})
	require.NoError(t, err)
	require.NotNil(t, res.Failure)

	report := res.Failure.String()
	assert.Contains(t, report, "float out0 = (in0 + in1);")
	assert.Contains(t, report, "in0 = 0.0")
	assert.Contains(t, report, "in1 = 0.0")
	assert.Contains(t, report, "expected out0 in { 0.0 }")
	// 1000 renders in the format's hex notation.
	assert.Contains(t, report, "actual   out0 = 0x1.f40000p9")
}

func TestCaseRunExecutorError(t *testing.T) {
	c := &Case{Builtin: "sin", Type: expr.Float, Precision: floatfmt.Highp, Samples: 4, Seed: 1}
	boom := errors.New("no device")
	_, err := c.Run(context.Background(), failingExecutor{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "sin.float.highp")
}

func TestCaseRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &Case{Builtin: "cos", Type: expr.Vec3, Precision: floatfmt.Mediump, Samples: 8, Seed: 1}
	_, err := c.Run(ctx, &ReferenceExecutor{})
	assert.ErrorIs(t, err, context.Canceled)
}

type failingExecutor struct {
	err error
}

func (f failingExecutor) Execute(context.Context, *Program, []Sample) ([]Output, error) {
	return nil, f.err
}

func TestPickAdmitted(t *testing.T) {
	tests := []struct {
		name string
		iv   interval.Interval
		want float64
	}{
		{"point", interval.Point(3), 3},
		{"range midpoint", interval.Span(1, 3), 2},
		{"unbounded", interval.Unbounded(false), 0},
		{"above", interval.Span(2, math.Inf(1)), 2},
		{"below", interval.Span(math.Inf(-1), -2), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickAdmitted(tt.iv)
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.iv.Contains(got))
		})
	}

	assert.True(t, math.IsNaN(pickAdmitted(interval.NaN())))
}

func TestReferenceOutputsAdmitted(t *testing.T) {
	// Each case sweeps the same built-in the checker does, so the
	// picked outputs must land inside their own reference intervals.
	names := []string{"div", "log", "inversesqrt", "atan2", "smoothstep", "normalize"}
	for _, name := range names {
		for _, p := range []floatfmt.Precision{floatfmt.Mediump, floatfmt.Highp} {
			ty := expr.Float
			if name == "normalize" {
				ty = expr.Vec3
			}
			c := &Case{Builtin: name, Type: ty, Precision: p, Samples: 48, Seed: 11}
			res, err := c.Run(context.Background(), &ReferenceExecutor{})
			require.NoError(t, err, c.Name())
			if !assert.True(t, res.Passed(), c.Name()) && res.Failure != nil {
				t.Log(res.Failure)
			}
		}
	}
}
