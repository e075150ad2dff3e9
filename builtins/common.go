package builtins

import (
	"math"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/interval"
)

// Abs is exact. An argument range spanning zero has its minimum there
// rather than at an endpoint.
var Abs expr.Func = &floatFunc1{name: "abs", spec: absSpec{}}

type absSpec struct{}

func (absSpec) applyExact(x float64) float64 { return math.Abs(x) }

func (absSpec) precision(_ *expr.EvalContext, _, _ float64) float64 { return 0 }

func (absSpec) innerExtrema(_ *expr.EvalContext, x interval.Interval) interval.Interval {
	if x.Contains(0) {
		return interval.Point(0)
	}
	return interval.Empty()
}

// Sign is exact.
var Sign expr.Func = &floatFunc1{name: "sign", spec: signSpec{}}

type signSpec struct{}

func (signSpec) applyExact(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	case math.IsNaN(x):
		return x
	default:
		return 0
	}
}

func (signSpec) precision(_ *expr.EvalContext, _, _ float64) float64 { return 0 }

func (signSpec) codomain() interval.Interval { return interval.Span(-1, 1) }

// Floor, Ceil and RoundEven are exact and monotone.
var (
	Floor     expr.Func = &floatFunc1{name: "floor", spec: exactSpec{math.Floor}}
	Ceil      expr.Func = &floatFunc1{name: "ceil", spec: exactSpec{math.Ceil}}
	RoundEven expr.Func = &floatFunc1{name: "roundEven", spec: exactSpec{math.RoundToEven}}
)

// exactSpec is a correctly rounded monotone function.
type exactSpec struct {
	exact func(float64) float64
}

func (s exactSpec) applyExact(x float64) float64 { return s.exact(x) }

func (exactSpec) precision(_ *expr.EvalContext, _, _ float64) float64 { return 0 }

// Trunc expands to sign(x)*floor(abs(x)).
var Trunc expr.Func = newDerived("trunc", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	x := args[0]
	return mul(apply(Sign, x), apply(Floor, apply(Abs, x)))
}, fparam("x"))

// Round may break ties either way, so it expands to the alternatives of
// floor(x+0.5) and ceil(x-0.5).
var Round expr.Func = newDerived("round", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	x := args[0]
	return alt(apply(Floor, add(x, constant(0.5))), apply(Ceil, sub(x, constant(0.5))))
}, fparam("x"))

// Fract expands to x-floor(x).
var Fract expr.Func = newDerived("fract", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	x := args[0]
	return sub(x, apply(Floor, x))
}, fparam("x"))

// Mod expands to x-y*floor(x/y).
var Mod expr.Func = newDerived("mod", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	x, y := args[0], args[1]
	return sub(x, mul(y, apply(Floor, div(x, y))))
}, fparam("x"), fparam("y"))

// Min and Max are exact and monotone in both arguments.
var (
	Min expr.Func = &floatFunc2{name: "min", spec: minMaxSpec{math.Min}}
	Max expr.Func = &floatFunc2{name: "max", spec: minMaxSpec{math.Max}}
)

type minMaxSpec struct {
	exact func(x, y float64) float64
}

func (s minMaxSpec) applyExact(x, y float64) float64 { return s.exact(x, y) }

func (minMaxSpec) precision(_ *expr.EvalContext, _, _, _ float64) float64 { return 0 }

// Clamp is exact while the bounds are ordered; a minimum above the
// maximum leaves the result undefined.
var Clamp expr.Func = &floatFunc3{name: "clamp", spec: clampSpec{}}

type clampSpec struct{}

func (clampSpec) applyExact(x, minVal, maxVal float64) float64 {
	return math.Min(math.Max(x, minVal), maxVal)
}

func (clampSpec) precision(_ *expr.EvalContext, _, _, minVal, maxVal float64) float64 {
	if minVal > maxVal {
		return math.NaN()
	}
	return 0
}

// Mix may be computed either as x*(1-a)+y*a or as x+(y-x)*a, so the
// model admits both expansions.
var Mix expr.Func = newDerived("mix", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	x, y, a := args[0], args[1], args[2]
	return alt(
		add(mul(x, sub(constant(1), a)), mul(y, a)),
		add(x, mul(sub(y, x), a)))
}, fparam("x"), fparam("y"), fparam("a"))

// Step expands to cond(x < edge, 0, 1).
var Step expr.Func = newDerived("step", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	edge, x := args[0], args[1]
	return cond(lessThan(x, edge), constant(0), constant(1))
}, fparam("edge"), fparam("x"))

// SmoothStep expands through a bound interpolation factor t.
var SmoothStep expr.Func = newDerived("smoothstep", func(ec *ExpandContext, args []expr.Expr) expr.Expr {
	edge0, edge1, x := args[0], args[1], args[2]
	t := ec.Bind("t", expr.Float,
		apply(Clamp, div(sub(x, edge0), sub(edge1, edge0)), constant(0), constant(1)))
	return mul(mul(t, t), sub(constant(3), mul(constant(2), t)))
}, fparam("edge0"), fparam("edge1"), fparam("x"))

// Modf splits x into fractional and whole parts, returning the first
// and writing the second through the out parameter. An argument range
// crossing an integer boundary makes the fractional part wrap, so the
// full wrap range joins the result.
var Modf expr.Func = &modfFunc{}

type modfFunc struct{}

func (*modfFunc) Name() string       { return "modf" }
func (*modfFunc) Arity() int         { return 2 }
func (*modfFunc) OutParamIndex() int { return 1 }

func (f *modfFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	ret, _ := f.ApplyOut(ctx, args)
	return ret
}

func (f *modfFunc) ApplyOut(ctx *expr.EvalContext, args []expr.Value) (expr.Value, expr.Value) {
	x := scalarArg("modf", args, 0)
	frac := interval.Empty()
	whole := interval.Empty()
	if !x.Empty() {
		wholeLo, fracLo := math.Modf(x.Lo())
		wholeHi, fracHi := math.Modf(x.Hi())
		frac = interval.Span(fracLo, fracHi)
		whole = interval.Span(wholeLo, wholeHi)
		if wholeLo != wholeHi {
			// The fractional part restarts at every integer.
			if x.Hi() > 0 {
				frac = frac.Union(interval.Span(0, 1))
			}
			if x.Lo() < 0 {
				frac = frac.Union(interval.Span(-1, 0))
			}
		}
		if !x.Finite() {
			// The parts of an infinity are not well defined.
			frac = frac.Union(interval.NaN())
			whole = whole.Union(interval.NaN())
		}
	}
	if x.HasNaN() {
		frac = frac.Union(interval.NaN())
		whole = whole.Union(interval.NaN())
	}
	return expr.Scalar(ctx.Format.Convert(frac)), expr.Scalar(ctx.Format.Convert(whole))
}
