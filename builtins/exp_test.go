package builtins

import (
	"math"
	"testing"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/interval"
)

func TestExpFunctions(t *testing.T) {
	ctx := highpCtx()
	tests := []struct {
		name string
		fn   expr.Func
		x    float64
		want float64
	}{
		{"exp", Exp, 1, math.E},
		{"exp negative", Exp, -3, math.Exp(-3)},
		{"exp2", Exp2, 10, 1024},
		{"log", Log, math.E, 1},
		{"log2", Log2, 1024, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantContains(t, callScalar(t, ctx, tt.fn, tt.x), tt.want)
		})
	}
}

func TestExpCodomain(t *testing.T) {
	got := callIntervals(t, highpCtx(), Exp, interval.Span(-100, 0))
	if got.Lo() < 0 {
		t.Errorf("exp([-100, 0]) = %v, want non-negative", got)
	}
	wantContains(t, got, 1)
}

func TestExpBandGrowsWithArgument(t *testing.T) {
	near := callScalar(t, highpCtx(), Exp, 1)
	far := callScalar(t, highpCtx(), Exp, 20)
	nearRel := near.Length() / math.Exp(1)
	farRel := far.Length() / math.Exp(20)
	if farRel <= nearRel {
		t.Errorf("relative band exp(20) %g not wider than exp(1) %g", farRel, nearRel)
	}
}

func TestLogNearUnityAbsoluteBand(t *testing.T) {
	got := callScalar(t, highpCtx(), Log, 1)
	wantContains(t, got, 0)
	if got.Hi() > math.Ldexp(1, -20) {
		t.Errorf("log(1) = %v, want within the absolute band near unity", got)
	}
}

func TestLogDomainError(t *testing.T) {
	wantNaN(t, callScalar(t, highpCtx(), Log, -1))
	wantNaN(t, callScalar(t, highpCtx(), Log, 0))
}

func TestLogSpanningZero(t *testing.T) {
	got := callIntervals(t, highpCtx(), Log, interval.Span(-1, math.E))
	wantNaN(t, got)
	wantContains(t, got, 1)
}

func TestInverseSqrt(t *testing.T) {
	got := callScalar(t, highpCtx(), InverseSqrt, 4)
	wantContains(t, got, 0.5)
	if got.Lo() < 0 {
		t.Errorf("inversesqrt(4) = %v, want non-negative", got)
	}
	wantNaN(t, callScalar(t, highpCtx(), InverseSqrt, -4))
}

func TestSqrtExpansion(t *testing.T) {
	got := callScalar(t, highpCtx(), Sqrt, 9)
	wantContains(t, got, 3)
	if got.Lo() > 3 || got.Hi() < 3 || got.Lo() < 2.9 || got.Hi() > 3.1 {
		t.Errorf("sqrt(9) = %v, want a tight band around 3", got)
	}
}

func TestPowExpansion(t *testing.T) {
	wantContains(t, callScalar(t, highpCtx(), Pow, 2, 10), 1024)
	wantNaN(t, callScalar(t, highpCtx(), Pow, -1, 2))
}

func TestDerivedBodyMemoized(t *testing.T) {
	d := Sqrt.(interface {
		Body() ([]*expr.Variable, []expr.Statement, expr.Expr)
	})
	_, _, first := d.Body()
	_, _, second := d.Body()
	if first != second {
		t.Error("repeated expansions returned different bodies")
	}
}

func TestHyperbolics(t *testing.T) {
	ctx := highpCtx()
	tests := []struct {
		name string
		fn   expr.Func
		x    float64
		want float64
	}{
		{"sinh", Sinh, 1, math.Sinh(1)},
		{"cosh", Cosh, 1, math.Cosh(1)},
		{"tanh", Tanh, 0.5, math.Tanh(0.5)},
		{"asinh", ASinh, 2, math.Asinh(2)},
		{"acosh", ACosh, 3, math.Acosh(3)},
		{"atanh", ATanh, 0.5, math.Atanh(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantContains(t, callScalar(t, ctx, tt.fn, tt.x), tt.want)
		})
	}
}

func TestACoshDomainError(t *testing.T) {
	wantNaN(t, callScalar(t, highpCtx(), ACosh, 0.5))
}
