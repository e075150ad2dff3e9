package builtins

import (
	"math"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
	"github.com/gogpu/glprec/interval"
)

// Sin and Cos share one model parameterized by the exact function and
// the sign of its derivative. Within one period the extremum positions
// follow from the derivative signs at the endpoints; an argument range
// of a full period or more covers both extrema.
var (
	Sin expr.Func = &floatFunc1{name: "sin", spec: trigSpec{
		exact: math.Sin,
		slope: func(x float64) int { return sign(math.Cos(x)) },
	}}
	Cos expr.Func = &floatFunc1{name: "cos", spec: trigSpec{
		exact: math.Cos,
		slope: func(x float64) int { return -sign(math.Sin(x)) },
	}}
)

type trigSpec struct {
	exact func(float64) float64
	slope func(float64) int
}

func (s trigSpec) applyExact(x float64) float64 { return s.exact(x) }

func (s trigSpec) precision(ctx *expr.EvalContext, _, x float64) float64 {
	switch ctx.Precision {
	case floatfmt.Highp, floatfmt.Mediump:
		if -math.Pi <= x && x <= math.Pi {
			return math.Ldexp(1, -11)
		}
		// Argument reduction outside one period is unspecified.
		return math.Inf(1)
	default:
		return math.Ldexp(1, -8)
	}
}

func (s trigSpec) innerExtrema(_ *expr.EvalContext, x interval.Interval) interval.Interval {
	lo, hi := x.Lo(), x.Hi()
	if hi-lo >= 2*math.Pi {
		return interval.Span(-1, 1)
	}
	loSlope, hiSlope := s.slope(lo), s.slope(hi)
	switch {
	case loSlope == 1 && hiSlope == -1:
		return interval.Point(1)
	case loSlope == -1 && hiSlope == 1:
		return interval.Point(-1)
	case loSlope == hiSlope && sign(s.exact(hi)-s.exact(lo))*loSlope == -1:
		// Same slope at both ends but the function went the other
		// way: the range wraps past both extrema.
		return interval.Span(-1, 1)
	}
	return interval.Empty()
}

func (trigSpec) codomain() interval.Interval { return interval.Span(-1, 1) }

func sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Tan expands to sin(x)/cos(x), inheriting the trigonometric error
// bands and the division allowance.
var Tan expr.Func = newDerived("tan", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	return div(apply(Sin, args[0]), apply(Cos, args[0]))
}, fparam("x"))

// ASin, ACos and ATan share the inverse-trigonometric model: a domain
// check, a fixed codomain and a relaxed-math ULP allowance.
var (
	ASin expr.Func = &floatFunc1{name: "asin", spec: arcTrigSpec{
		exact:    math.Asin,
		domain:   interval.Span(-1, 1),
		out:      interval.Span(-math.Pi/2, math.Pi/2),
		highpULP: 4096,
	}}
	ACos expr.Func = &floatFunc1{name: "acos", spec: arcTrigSpec{
		exact:    math.Acos,
		domain:   interval.Span(-1, 1),
		out:      interval.Span(0, math.Pi),
		highpULP: 4096,
	}}
	ATan expr.Func = &floatFunc1{name: "atan", spec: arcTrigSpec{
		exact:    math.Atan,
		domain:   interval.Unbounded(false),
		out:      interval.Span(-math.Pi/2, math.Pi/2),
		highpULP: 4096,
	}}
)

type arcTrigSpec struct {
	exact    func(float64) float64
	domain   interval.Interval
	out      interval.Interval
	highpULP float64
}

func (s arcTrigSpec) applyExact(x float64) float64 { return s.exact(x) }

func (s arcTrigSpec) precision(ctx *expr.EvalContext, ret, x float64) float64 {
	if !s.domain.Contains(x) {
		return math.NaN()
	}
	if ctx.Precision == floatfmt.Highp {
		return ctx.Format.ULP(ret, s.highpULP)
	}
	return ctx.Format.ULP(ret, 2)
}

func (s arcTrigSpec) codomain() interval.Interval { return s.out }

// ATan2 models the two-argument arctangent. The branch cut along the
// negative x axis makes results near it reach both signs of pi, and
// arguments at the origin or at infinities are undefined.
var ATan2 expr.Func = &atan2Func{}

type atan2Func struct{}

func (*atan2Func) Name() string { return "atan" }
func (*atan2Func) Arity() int   { return 2 }

func (f *atan2Func) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	return expr.Scalar(applyMonotone2(ctx, atan2Spec{},
		scalarArg("atan", args, 0), scalarArg("atan", args, 1)))
}

type atan2Spec struct{}

func (atan2Spec) applyExact(y, x float64) float64 { return math.Atan2(y, x) }

func (atan2Spec) precision(ctx *expr.EvalContext, ret, _, _ float64) float64 {
	if ctx.Precision == floatfmt.Highp {
		return ctx.Format.ULP(ret, 4096)
	}
	return ctx.Format.ULP(ret, 2)
}

func (atan2Spec) innerExtrema(_ *expr.EvalContext, y, x interval.Interval) interval.Interval {
	ret := interval.Empty()
	if y.Contains(0) {
		if x.Contains(0) {
			ret = ret.Union(interval.NaN())
		}
		if x.Lo() < 0 {
			ret = ret.Union(interval.Span(-math.Pi, math.Pi))
		}
	}
	if !y.Finite() || !x.Finite() {
		// Infinite arguments need not resolve consistently.
		ret = ret.Union(interval.NaN())
	}
	return ret
}

func (atan2Spec) codomain() interval.Interval { return interval.Span(-math.Pi, math.Pi) }

// Radians and Degrees expand to scaling by pi/180 and its inverse.
var (
	Radians expr.Func = newDerived("radians", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		return mul(constant(math.Pi/180), args[0])
	}, fparam("d"))
	Degrees expr.Func = newDerived("degrees", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		return mul(constant(180/math.Pi), args[0])
	}, fparam("r"))
)
