// Package builtins provides interval models for the shading-language
// built-in functions. Each model is sound: for any concrete arguments
// within the input intervals, every value a conforming implementation
// may return lies inside the model's output interval.
//
// Primitive models describe a function by its exact point behavior, its
// permitted error, its interior extrema and its codomain; the shared
// machinery evaluates endpoints, unions the declared extrema, clips to
// the codomain and converts the result into the analysis format.
// Derived models expand into bodies built from other models and are
// memoized on first use.
package builtins

import (
	"fmt"
	"math"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
	"github.com/gogpu/glprec/interval"
)

// spec1 is the point specification of a one-argument scalar function.
// precision returns the permitted absolute error at a point: zero for
// correctly rounded functions, NaN to mark a domain error, and +Inf
// when any value in the codomain is permitted.
type spec1 interface {
	applyExact(x float64) float64
	precision(ctx *expr.EvalContext, ret, x float64) float64
}

// spec2 and spec3 are the two- and three-argument counterparts of
// spec1.
type spec2 interface {
	applyExact(x, y float64) float64
	precision(ctx *expr.EvalContext, ret, x, y float64) float64
}

type spec3 interface {
	applyExact(x, y, z float64) float64
	precision(ctx *expr.EvalContext, ret, x, y, z float64) float64
}

// extrema1 is implemented by specs whose function has interior extrema:
// the returned interval is unioned into every application that spans
// them. Without it a spec must be monotone.
type extrema1 interface {
	innerExtrema(ctx *expr.EvalContext, x interval.Interval) interval.Interval
}

type extrema2 interface {
	innerExtrema(ctx *expr.EvalContext, x, y interval.Interval) interval.Interval
}

// codomainer is implemented by specs with a restricted codomain; the
// application result is clipped to it. The default codomain is
// unbounded including NaN.
type codomainer interface {
	codomain() interval.Interval
}

func codomainOf(spec any) interval.Interval {
	if c, ok := spec.(codomainer); ok {
		return c.codomain()
	}
	return interval.Unbounded(true)
}

// applyPoint turns an exact result and a permitted error into the
// interval of acceptable values at one point.
func applyPoint(exact, prec float64) interval.Interval {
	if math.IsNaN(exact) || math.IsNaN(prec) {
		return interval.NaN()
	}
	if math.IsInf(prec, 0) {
		return interval.Unbounded(false)
	}
	return interval.Span(exact-prec, exact+prec)
}

// applyMonotone1 computes the image of an interval under a spec that is
// monotone between its declared extrema: point images at the endpoints,
// union of interior extrema, clipped to the codomain and converted into
// the analysis format. This routine carries the soundness guarantee of
// every primitive model.
func applyMonotone1(ctx *expr.EvalContext, spec spec1, x interval.Interval) interval.Interval {
	ret := interval.Empty()
	if !x.Empty() {
		ret = point1(ctx, spec, x.Lo()).Union(point1(ctx, spec, x.Hi()))
		if ex, ok := spec.(extrema1); ok {
			ret = ret.Union(ex.innerExtrema(ctx, x))
		}
	}
	if x.HasNaN() {
		ret = ret.Union(interval.NaN())
	}
	ret = ret.Intersection(codomainOf(spec).WithNaN())
	return ctx.Format.Convert(ret)
}

func applyMonotone2(ctx *expr.EvalContext, spec spec2, x, y interval.Interval) interval.Interval {
	ret := interval.Empty()
	if !x.Empty() && !y.Empty() {
		ret = point2(ctx, spec, x.Lo(), y.Lo()).
			Union(point2(ctx, spec, x.Lo(), y.Hi())).
			Union(point2(ctx, spec, x.Hi(), y.Lo())).
			Union(point2(ctx, spec, x.Hi(), y.Hi()))
		if ex, ok := spec.(extrema2); ok {
			ret = ret.Union(ex.innerExtrema(ctx, x, y))
		}
	}
	if x.HasNaN() || y.HasNaN() {
		ret = ret.Union(interval.NaN())
	}
	ret = ret.Intersection(codomainOf(spec).WithNaN())
	return ctx.Format.Convert(ret)
}

func applyMonotone3(ctx *expr.EvalContext, spec spec3, x, y, z interval.Interval) interval.Interval {
	ret := interval.Empty()
	if !x.Empty() && !y.Empty() && !z.Empty() {
		for _, xv := range [2]float64{x.Lo(), x.Hi()} {
			for _, yv := range [2]float64{y.Lo(), y.Hi()} {
				for _, zv := range [2]float64{z.Lo(), z.Hi()} {
					ret = ret.Union(point3(ctx, spec, xv, yv, zv))
				}
			}
		}
	}
	if x.HasNaN() || y.HasNaN() || z.HasNaN() {
		ret = ret.Union(interval.NaN())
	}
	ret = ret.Intersection(codomainOf(spec).WithNaN())
	return ctx.Format.Convert(ret)
}

func point1(ctx *expr.EvalContext, spec spec1, x float64) interval.Interval {
	exact := spec.applyExact(x)
	return applyPoint(exact, spec.precision(ctx, exact, x))
}

func point2(ctx *expr.EvalContext, spec spec2, x, y float64) interval.Interval {
	exact := spec.applyExact(x, y)
	return applyPoint(exact, spec.precision(ctx, exact, x, y))
}

func point3(ctx *expr.EvalContext, spec spec3, x, y, z float64) interval.Interval {
	exact := spec.applyExact(x, y, z)
	return applyPoint(exact, spec.precision(ctx, exact, x, y, z))
}

// floatFunc1 adapts a one-argument point spec into a function model.
type floatFunc1 struct {
	name string
	spec spec1
}

func (f *floatFunc1) Name() string { return f.name }
func (f *floatFunc1) Arity() int   { return 1 }

func (f *floatFunc1) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	return expr.Scalar(applyMonotone1(ctx, f.spec, scalarArg(f.name, args, 0)))
}

type floatFunc2 struct {
	name string
	spec spec2
}

func (f *floatFunc2) Name() string { return f.name }
func (f *floatFunc2) Arity() int   { return 2 }

func (f *floatFunc2) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	return expr.Scalar(applyMonotone2(ctx, f.spec,
		scalarArg(f.name, args, 0), scalarArg(f.name, args, 1)))
}

type floatFunc3 struct {
	name string
	spec spec3
}

func (f *floatFunc3) Name() string { return f.name }
func (f *floatFunc3) Arity() int   { return 3 }

func (f *floatFunc3) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	return expr.Scalar(applyMonotone3(ctx, f.spec,
		scalarArg(f.name, args, 0), scalarArg(f.name, args, 1), scalarArg(f.name, args, 2)))
}

// scalarArg extracts a scalar argument interval; a non-scalar argument
// is a programming error.
func scalarArg(name string, args []expr.Value, i int) interval.Interval {
	s, ok := args[i].(expr.Scalar)
	if !ok {
		panic(fmt.Sprintf("%s: argument %d is not a scalar", name, i))
	}
	return interval.Interval(s)
}

// vectorArg extracts a vector argument; a non-vector argument is a
// programming error.
func vectorArg(name string, args []expr.Value, i int) expr.Vector {
	v, ok := args[i].(expr.Vector)
	if !ok {
		panic(fmt.Sprintf("%s: argument %d is not a vector", name, i))
	}
	return v
}

// matrixArg extracts a matrix argument; a non-matrix argument is a
// programming error.
func matrixArg(name string, args []expr.Value, i int) expr.Matrix {
	m, ok := args[i].(expr.Matrix)
	if !ok {
		panic(fmt.Sprintf("%s: argument %d is not a matrix", name, i))
	}
	return m
}

// ulpBand returns a ULP-count error band selected by the precision
// qualifier under analysis.
func ulpBand(ctx *expr.EvalContext, ret, highp, mediump, lowp float64) float64 {
	switch ctx.Precision {
	case floatfmt.Highp:
		return ctx.Format.ULP(ret, highp)
	case floatfmt.Mediump:
		return ctx.Format.ULP(ret, mediump)
	default:
		return ctx.Format.ULP(ret, lowp)
	}
}
