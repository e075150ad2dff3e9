package builtins

import (
	"github.com/gogpu/glprec/expr"
)

// The hyperbolic functions all expand through the exponential and
// logarithm models, inheriting their argument-dependent error bands.
var (
	Sinh expr.Func = newDerived("sinh", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		x := args[0]
		return div(sub(apply(Exp, x), apply(Exp, neg(x))), constant(2))
	}, fparam("x"))

	Cosh expr.Func = newDerived("cosh", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		x := args[0]
		return div(add(apply(Exp, x), apply(Exp, neg(x))), constant(2))
	}, fparam("x"))

	Tanh expr.Func = newDerived("tanh", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		x := args[0]
		return div(apply(Sinh, x), apply(Cosh, x))
	}, fparam("x"))

	ASinh expr.Func = newDerived("asinh", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		x := args[0]
		return apply(Log, add(x, apply(Sqrt, add(mul(x, x), constant(1)))))
	}, fparam("x"))

	ACosh expr.Func = newDerived("acosh", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		x := args[0]
		return apply(Log, add(x, apply(Sqrt, mul(add(x, constant(1)), sub(x, constant(1))))))
	}, fparam("x"))

	ATanh expr.Func = newDerived("atanh", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		x := args[0]
		return mul(constant(0.5), apply(Log, div(add(constant(1), x), sub(constant(1), x))))
	}, fparam("x"))
)
