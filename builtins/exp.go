package builtins

import (
	"math"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
	"github.com/gogpu/glprec/interval"
)

// Exp and Exp2 share a model whose error allowance grows with the
// argument magnitude.
var (
	Exp  expr.Func = &floatFunc1{name: "exp", spec: expSpec{exact: math.Exp}}
	Exp2 expr.Func = &floatFunc1{name: "exp2", spec: expSpec{exact: math.Exp2}}
)

type expSpec struct {
	exact func(float64) float64
}

func (s expSpec) applyExact(x float64) float64 { return s.exact(x) }

func (s expSpec) precision(ctx *expr.EvalContext, ret, x float64) float64 {
	switch ctx.Precision {
	case floatfmt.Highp:
		return ctx.Format.ULP(ret, 3+2*math.Abs(x))
	case floatfmt.Mediump:
		return ctx.Format.ULP(ret, 2+2*math.Abs(x))
	default:
		return ctx.Format.ULP(ret, 2)
	}
}

func (expSpec) codomain() interval.Interval { return interval.Span(0, math.Inf(1)) }

// Log and Log2 are tighter near unity, where an absolute bound applies,
// and undefined for non-positive arguments.
var (
	Log  expr.Func = &floatFunc1{name: "log", spec: logSpec{exact: math.Log}}
	Log2 expr.Func = &floatFunc1{name: "log2", spec: logSpec{exact: math.Log2}}
)

type logSpec struct {
	exact func(float64) float64
}

func (s logSpec) applyExact(x float64) float64 { return s.exact(x) }

func (s logSpec) precision(ctx *expr.EvalContext, ret, x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	switch ctx.Precision {
	case floatfmt.Highp:
		if 0.5 <= x && x <= 2 {
			return math.Ldexp(1, -21)
		}
		return ctx.Format.ULP(ret, 3)
	case floatfmt.Mediump:
		if 0.5 <= x && x <= 2 {
			return math.Ldexp(1, -7)
		}
		return ctx.Format.ULP(ret, 2)
	default:
		return ctx.Format.ULP(ret, 2)
	}
}

// InverseSqrt is the only primitive of the power family; sqrt and pow
// expand through it and the exponentials.
var InverseSqrt expr.Func = &floatFunc1{name: "inversesqrt", spec: inverseSqrtSpec{}}

type inverseSqrtSpec struct{}

func (inverseSqrtSpec) applyExact(x float64) float64 { return 1 / math.Sqrt(x) }

func (inverseSqrtSpec) precision(ctx *expr.EvalContext, ret, x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	return ctx.Format.ULP(ret, 2)
}

func (inverseSqrtSpec) codomain() interval.Interval {
	return interval.Span(0, math.Inf(1))
}

// Sqrt expands to 1/inversesqrt(x).
var Sqrt expr.Func = newDerived("sqrt", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	return div(constant(1), apply(InverseSqrt, args[0]))
}, fparam("x"))

// Pow expands to exp2(y*log2(x)).
var Pow expr.Func = newDerived("pow", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	return apply(Exp2, mul(args[1], apply(Log2, args[0])))
}, fparam("x"), fparam("y"))
