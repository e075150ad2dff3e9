package builtins

import (
	"math"
	"testing"

	"github.com/gogpu/glprec/interval"
)

func TestAddExact(t *testing.T) {
	got := callScalar(t, highpCtx(), Add, 1, 2)
	wantContains(t, got, 3)
	if got.Lo() != 3 || got.Hi() != 3 {
		t.Errorf("1 + 2 = %v, want [3, 3]", got)
	}
}

func TestAddMediumpWidens(t *testing.T) {
	// 0.1 is not representable in the 10-bit significand, so the sum
	// spreads across the surrounding grid points of an inexact format.
	got := callScalar(t, mediumpCtx(), Add, 0.1, 0.2)
	wantContains(t, got, 0.1+0.2)
	if got.Lo() >= got.Hi() {
		t.Errorf("0.1 + 0.2 = %v, want a widened interval", got)
	}
}

func TestAddIntervalOperands(t *testing.T) {
	got := callIntervals(t, highpCtx(), Add, interval.Span(1, 2), interval.Span(10, 20))
	wantContains(t, got, 11)
	wantContains(t, got, 22)
	wantContains(t, got, 15)
}

func TestSub(t *testing.T) {
	got := callScalar(t, highpCtx(), Sub, 5, 3)
	if got.Lo() != 2 || got.Hi() != 2 {
		t.Errorf("5 - 3 = %v, want [2, 2]", got)
	}
}

func TestMulSigns(t *testing.T) {
	tests := []struct {
		name string
		x, y interval.Interval
		want [2]float64
	}{
		{"positive", interval.Span(2, 3), interval.Span(4, 5), [2]float64{8, 15}},
		{"mixed", interval.Span(-2, 3), interval.Span(4, 5), [2]float64{-10, 15}},
		{"negative", interval.Span(-3, -2), interval.Span(-5, -4), [2]float64{8, 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := callIntervals(t, highpCtx(), Mul, tt.x, tt.y)
			wantContains(t, got, tt.want[0])
			wantContains(t, got, tt.want[1])
			if got.HasNaN() {
				t.Errorf("%v * %v = %v, unexpected NaN", tt.x, tt.y, got)
			}
		})
	}
}

func TestMulZeroTimesInfinity(t *testing.T) {
	got := callIntervals(t, highpCtx(), Mul, interval.Point(0), interval.Point(math.Inf(1)))
	wantNaN(t, got)
}

func TestDivContainsQuotient(t *testing.T) {
	got := callScalar(t, highpCtx(), Div, 1, 3)
	wantContains(t, got, 1.0/3.0)
	wantContains(t, got, float64(float32(1.0/3.0)))
	if got.Lo() == got.Hi() {
		t.Errorf("1 / 3 = %v, want an error band", got)
	}
}

func TestDivByIntervalSpanningZero(t *testing.T) {
	got := callIntervals(t, highpCtx(), Div, interval.Point(1), interval.Span(-1, 1))
	if !math.IsInf(got.Lo(), -1) || !math.IsInf(got.Hi(), 1) {
		t.Errorf("1 / [-1, 1] = %v, want unbounded", got)
	}
	if got.HasNaN() {
		t.Errorf("1 / [-1, 1] = %v, unexpected NaN", got)
	}
}

func TestDivZeroOverZero(t *testing.T) {
	got := callIntervals(t, highpCtx(), Div, interval.Span(-1, 1), interval.Span(-1, 1))
	wantNaN(t, got)
	if !math.IsInf(got.Lo(), -1) || !math.IsInf(got.Hi(), 1) {
		t.Errorf("[-1, 1] / [-1, 1] = %v, want unbounded", got)
	}
}

func TestNegate(t *testing.T) {
	got := callScalar(t, highpCtx(), Negate, 2.5)
	if got.Lo() != -2.5 || got.Hi() != -2.5 {
		t.Errorf("-(2.5) = %v, want [-2.5, -2.5]", got)
	}
}
