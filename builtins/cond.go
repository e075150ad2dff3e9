package builtins

import (
	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/interval"
)

// LessThan models the < comparison. The result is a boolean interval,
// 0 for false and 1 for true, covering both outcomes when the operand
// ranges overlap or when NaN makes the comparison unordered.
var LessThan expr.Func = &lessThanFunc{}

type lessThanFunc struct{}

func (*lessThanFunc) Name() string { return "lessThan" }
func (*lessThanFunc) Arity() int   { return 2 }

func (*lessThanFunc) PrintCall(args []string) string {
	return "(" + args[0] + " < " + args[1] + ")"
}

func (f *lessThanFunc) Apply(_ *expr.EvalContext, args []expr.Value) expr.Value {
	x := scalarArg("lessThan", args, 0)
	y := scalarArg("lessThan", args, 1)
	var ret interval.Interval
	switch {
	case x.Empty() || y.Empty():
		ret = interval.Empty()
	case x.Hi() < y.Lo():
		ret = interval.Point(1)
	case y.Hi() <= x.Lo():
		ret = interval.Point(0)
	default:
		ret = interval.Span(0, 1)
	}
	if x.HasNaN() || y.HasNaN() {
		ret = ret.Union(interval.Span(0, 1))
	}
	return expr.Scalar(ret)
}

// Cond models selection on a boolean interval: whichever branches the
// condition admits contribute to the result. An undefined condition
// admits both.
var Cond expr.Func = &condFunc{}

type condFunc struct{}

func (*condFunc) Name() string { return "cond" }
func (*condFunc) Arity() int   { return 3 }

func (*condFunc) PrintCall(args []string) string {
	return "(" + args[0] + " ? " + args[1] + " : " + args[2] + ")"
}

func (f *condFunc) Apply(_ *expr.EvalContext, args []expr.Value) expr.Value {
	c := scalarArg("cond", args, 0)
	var ret expr.Value
	take := func(v expr.Value) {
		if ret == nil {
			ret = v
		} else {
			ret = expr.UnionValues(ret, v)
		}
	}
	if c.Contains(1) || c.HasNaN() {
		take(args[1])
	}
	if c.Contains(0) || c.HasNaN() {
		take(args[2])
	}
	if ret == nil {
		return expr.NewValue(expr.TypeOf(args[1]))
	}
	return ret
}

// Alternatives admits two equally conforming computations of the same
// quantity: the result is the union of both.
var Alternatives expr.Func = &alternativesFunc{}

type alternativesFunc struct{}

func (*alternativesFunc) Name() string { return "alternatives" }
func (*alternativesFunc) Arity() int   { return 2 }

func (*alternativesFunc) PrintCall(args []string) string {
	return "{" + args[0] + " | " + args[1] + "}"
}

func (f *alternativesFunc) Apply(_ *expr.EvalContext, args []expr.Value) expr.Value {
	return expr.UnionValues(args[0], args[1])
}

func cond(c, a, b expr.Expr) expr.Expr  { return apply(Cond, c, a, b) }
func lessThan(a, b expr.Expr) expr.Expr { return apply(LessThan, a, b) }
func alt(a, b expr.Expr) expr.Expr      { return apply(Alternatives, a, b) }
