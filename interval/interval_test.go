package interval

import (
	"math"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		got    Interval
		lo     float64
		hi     float64
		hasNaN bool
	}{
		{"empty", Empty(), math.Inf(1), math.Inf(-1), false},
		{"nan", NaN(), math.Inf(1), math.Inf(-1), true},
		{"point", Point(1.5), 1.5, 1.5, false},
		{"point nan", Point(math.NaN()), math.Inf(1), math.Inf(-1), true},
		{"span", Span(2, -1), -1, 2, false},
		{"span with nan", Span(math.NaN(), 3), 3, 3, true},
		{"bounds", Bounds(-2, 5, false), -2, 5, false},
		{"unbounded", Unbounded(false), math.Inf(-1), math.Inf(1), false},
		{"unbounded nan", Unbounded(true), math.Inf(-1), math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Lo() != tt.lo || tt.got.Hi() != tt.hi || tt.got.HasNaN() != tt.hasNaN {
				t.Errorf("got %v, want lo=%v hi=%v hasNaN=%v", tt.got, tt.lo, tt.hi, tt.hasNaN)
			}
		})
	}
}

func TestBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for reversed bounds")
		}
	}()
	Bounds(2, 1, false)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name     string
		iv       Interval
		empty    bool
		onlyNaN  bool
		finite   bool
		ordinary bool
	}{
		{"empty", Empty(), true, false, false, false},
		{"nan only", NaN(), true, true, false, false},
		{"point", Point(0), false, false, true, true},
		{"range", Span(-1, 1), false, false, true, true},
		{"range with nan", Span(-1, 1).WithNaN(), false, false, true, false},
		{"unbounded", Unbounded(false), false, false, false, false},
		{"half bounded", Span(0, math.Inf(1)), false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.iv.OnlyNaN(); got != tt.onlyNaN {
				t.Errorf("OnlyNaN() = %v, want %v", got, tt.onlyNaN)
			}
			if got := tt.iv.Finite(); got != tt.finite {
				t.Errorf("Finite() = %v, want %v", got, tt.finite)
			}
			if got := tt.iv.Ordinary(); got != tt.ordinary {
				t.Errorf("Ordinary() = %v, want %v", got, tt.ordinary)
			}
		})
	}
}

func TestContains(t *testing.T) {
	iv := Span(-1, 2)
	if !iv.Contains(-1) || !iv.Contains(0) || !iv.Contains(2) {
		t.Error("interval should contain its bounds and interior points")
	}
	if iv.Contains(2.0001) || iv.Contains(math.NaN()) {
		t.Error("interval should not contain outside points or NaN")
	}
	if !iv.WithNaN().Contains(math.NaN()) {
		t.Error("NaN-flagged interval should contain NaN")
	}
	if Empty().Contains(0) {
		t.Error("empty interval contains nothing")
	}
}

func TestContainsInterval(t *testing.T) {
	tests := []struct {
		name  string
		outer Interval
		inner Interval
		want  bool
	}{
		{"subset", Span(0, 10), Span(1, 2), true},
		{"equal", Span(0, 10), Span(0, 10), true},
		{"overlap", Span(0, 10), Span(5, 11), false},
		{"empty inner", Span(0, 1), Empty(), true},
		{"empty inner nan", Span(0, 1), NaN(), false},
		{"nan inner nan outer", Span(0, 1).WithNaN(), NaN(), true},
		{"unbounded outer", Unbounded(true), Span(-1e300, 1e300).WithNaN(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outer.ContainsInterval(tt.inner); got != tt.want {
				t.Errorf("%v.ContainsInterval(%v) = %v, want %v", tt.outer, tt.inner, got, tt.want)
			}
		})
	}
}

func TestIntersects(t *testing.T) {
	if !Span(0, 2).Intersects(Span(1, 3)) {
		t.Error("overlapping ranges should intersect")
	}
	if Span(0, 1).Intersects(Span(2, 3)) {
		t.Error("disjoint ranges should not intersect")
	}
	if Empty().Intersects(Unbounded(false)) {
		t.Error("empty range intersects nothing")
	}
	if !NaN().Intersects(Span(0, 1).WithNaN()) {
		t.Error("shared NaN counts as intersection")
	}
}

func TestUnionIntersection(t *testing.T) {
	a := Span(0, 2)
	b := Span(1, 5).WithNaN()

	u := a.Union(b)
	if u.Lo() != 0 || u.Hi() != 5 || !u.HasNaN() {
		t.Errorf("union = %v, want { NaN, 0, 5 }", u)
	}
	n := a.Intersection(b)
	if n.Lo() != 1 || n.Hi() != 2 || n.HasNaN() {
		t.Errorf("intersection = %v, want [1, 2]", n)
	}
	if got := a.Intersection(Span(3, 4)); !got.Empty() {
		t.Errorf("disjoint intersection = %v, want empty", got)
	}
	if got := Empty().Union(a); got.Lo() != 0 || got.Hi() != 2 {
		t.Errorf("union with empty = %v, want [0, 2]", got)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Interval
		want Interval
	}{
		{"add", Span(1, 2).Add(Span(3, 4)), Span(4, 6)},
		{"sub", Span(1, 2).Sub(Span(3, 4)), Span(-3, -1)},
		{"mul", Span(-1, 2).Mul(Span(3, 4)), Span(-4, 8)},
		{"mul negative", Span(-2, -1).Mul(Span(-3, 4)), Span(-8, 6)},
		{"neg", Span(-1, 2).Neg(), Span(-2, 1)},
		{"neg empty", Empty().Neg(), Empty()},
		{"div simple", Span(1, 2).Div(Span(2, 4)), Span(0.25, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMulZeroTimesInf(t *testing.T) {
	got := Point(0).Mul(Unbounded(false))
	if !got.HasNaN() {
		t.Errorf("0 * unbounded = %v, want NaN flagged", got)
	}
}

func TestDivSpanningZero(t *testing.T) {
	got := Point(1).Div(Span(-1, 1))
	if got.Lo() != math.Inf(-1) || got.Hi() != math.Inf(1) {
		t.Errorf("1 / [-1, 1] = %v, want unbounded", got)
	}
	if got.HasNaN() {
		t.Errorf("1 / [-1, 1] = %v, numerator does not span zero so no NaN", got)
	}

	got = Span(-1, 1).Div(Span(-1, 1))
	if !got.HasNaN() {
		t.Errorf("[-1, 1] / [-1, 1] = %v, want NaN flagged for 0/0", got)
	}
}

func TestApply1(t *testing.T) {
	iv := Span(1, 4)
	got := iv.Apply1(math.Sqrt)
	if got.Lo() != 1 || got.Hi() != 2 || got.HasNaN() {
		t.Errorf("sqrt image = %v, want [1, 2]", got)
	}

	got = Span(-4, -1).Apply1(math.Sqrt)
	if !got.OnlyNaN() {
		t.Errorf("sqrt of negative range = %v, want { NaN }", got)
	}

	got = Empty().Apply1(math.Sqrt)
	if !got.Empty() || got.HasNaN() {
		t.Errorf("image of empty = %v, want empty", got)
	}

	got = Span(1, 4).WithNaN().Apply1(math.Sqrt)
	if !got.HasNaN() {
		t.Errorf("NaN flag should survive application, got %v", got)
	}
}

func TestApply2(t *testing.T) {
	got := Span(1, 2).Apply2(Span(3, 5), math.Min)
	if got.Lo() != 1 || got.Hi() != 2 {
		t.Errorf("min image = %v, want [1, 2]", got)
	}
	got = Span(1, 2).Apply2(Empty(), math.Min)
	if !got.Empty() {
		t.Errorf("image with empty operand = %v, want empty", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want string
	}{
		{"empty", Empty(), "()"},
		{"nan", NaN(), "{ NaN }"},
		{"range", Span(-1, 2.5), "[-1, 2.5]"},
		{"range with nan", Span(0, 1).WithNaN(), "{ NaN, 0, 1 }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
