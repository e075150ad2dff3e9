package builtins

import (
	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/interval"
)

// Add models the + operator. Addition is correctly rounded, so the
// result is the endpoint sums rounded outward onto the format grid.
var Add expr.Func = &addFunc{}

type addFunc struct{}

func (*addFunc) Name() string { return "add" }
func (*addFunc) Arity() int   { return 2 }

func (*addFunc) PrintCall(args []string) string {
	return "(" + args[0] + " + " + args[1] + ")"
}

func (f *addFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	x := scalarArg("add", args, 0)
	y := scalarArg("add", args, 1)
	// Fast path for ordinary operands.
	if x.Ordinary() && y.Ordinary() {
		return expr.Scalar(ctx.Format.Convert(ctx.Format.RoundOut(x.Add(y), true)))
	}
	return expr.Scalar(applyMonotone2(ctx, addSpec{}, x, y))
}

type addSpec struct{}

func (addSpec) applyExact(x, y float64) float64 { return x + y }

func (addSpec) precision(_ *expr.EvalContext, _, _, _ float64) float64 { return 0 }

// Sub models the - operator.
var Sub expr.Func = &subFunc{}

type subFunc struct{}

func (*subFunc) Name() string { return "sub" }
func (*subFunc) Arity() int   { return 2 }

func (*subFunc) PrintCall(args []string) string {
	return "(" + args[0] + " - " + args[1] + ")"
}

func (f *subFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	x := scalarArg("sub", args, 0)
	y := scalarArg("sub", args, 1)
	// Fast path for ordinary operands.
	if x.Ordinary() && y.Ordinary() {
		return expr.Scalar(ctx.Format.Convert(ctx.Format.RoundOut(x.Sub(y), true)))
	}
	return expr.Scalar(applyMonotone2(ctx, subSpec{}, x, y))
}

type subSpec struct{}

func (subSpec) applyExact(x, y float64) float64 { return x - y }

func (subSpec) precision(_ *expr.EvalContext, _, _, _ float64) float64 { return 0 }

// Mul models the * operator. The slow path catches the 0 times
// infinity corners, which produce NaN.
var Mul expr.Func = &mulFunc{}

type mulFunc struct{}

func (*mulFunc) Name() string { return "mul" }
func (*mulFunc) Arity() int   { return 2 }

func (*mulFunc) PrintCall(args []string) string {
	return "(" + args[0] + " * " + args[1] + ")"
}

func (f *mulFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	x := scalarArg("mul", args, 0)
	y := scalarArg("mul", args, 1)
	// Fast path for ordinary operands.
	if x.Ordinary() && y.Ordinary() {
		return expr.Scalar(ctx.Format.Convert(ctx.Format.RoundOut(x.Mul(y), true)))
	}
	return expr.Scalar(applyMonotone2(ctx, mulSpec{}, x, y))
}

type mulSpec struct{}

func (mulSpec) applyExact(x, y float64) float64 { return x * y }

func (mulSpec) precision(_ *expr.EvalContext, _, _, _ float64) float64 { return 0 }

// Div models the / operator with a 2.5 ULP error allowance. A
// denominator spanning zero splits the quotient into diverging halves,
// so the result is unbounded, and NaN joins in when the numerator spans
// zero as well.
var Div expr.Func = &divFunc{}

type divFunc struct{}

func (*divFunc) Name() string { return "div" }
func (*divFunc) Arity() int   { return 2 }

func (*divFunc) PrintCall(args []string) string {
	return "(" + args[0] + " / " + args[1] + ")"
}

func (f *divFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	x := scalarArg("div", args, 0)
	y := scalarArg("div", args, 1)
	return expr.Scalar(applyMonotone2(ctx, divSpec{}, x, y))
}

type divSpec struct{}

func (divSpec) applyExact(x, y float64) float64 { return x / y }

func (divSpec) precision(ctx *expr.EvalContext, ret, _, _ float64) float64 {
	return ctx.Format.ULP(ret, 2.5)
}

func (divSpec) innerExtrema(_ *expr.EvalContext, nom, den interval.Interval) interval.Interval {
	ret := interval.Empty()
	if den.Contains(0) {
		if nom.Contains(0) {
			ret = ret.Union(interval.NaN())
		}
		if nom.Lo() < 0 || nom.Hi() > 0 {
			ret = ret.Union(interval.Unbounded(false))
		}
	}
	return ret
}

// Negate models unary minus.
var Negate expr.Func = &negateFunc{}

type negateFunc struct{}

func (*negateFunc) Name() string { return "negate" }
func (*negateFunc) Arity() int   { return 1 }

func (*negateFunc) PrintCall(args []string) string {
	return "(-" + args[0] + ")"
}

func (f *negateFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	return expr.Scalar(applyMonotone1(ctx, negateSpec{}, scalarArg("negate", args, 0)))
}

type negateSpec struct{}

func (negateSpec) applyExact(x float64) float64 { return -x }

func (negateSpec) precision(_ *expr.EvalContext, _, _ float64) float64 { return 0 }
