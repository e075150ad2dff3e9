package expr

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/glprec/floatfmt"
	"github.com/gogpu/glprec/interval"
)

// EvalContext carries the evaluation parameters: the float format and
// precision qualifier under analysis, the variable environment and the
// current function call depth. Trace, when non-nil, receives a record
// per function application.
type EvalContext struct {
	Format    floatfmt.Format
	Precision floatfmt.Precision
	Env       *Environment
	CallDepth int
	Trace     *slog.Logger
}

// NewContext returns an evaluation context with an empty environment.
func NewContext(format floatfmt.Format, prec floatfmt.Precision) *EvalContext {
	return &EvalContext{Format: format, Precision: prec, Env: NewEnvironment()}
}

// Child returns a context for evaluating a function body: the same
// analysis parameters with a fresh environment and one more call level.
func (ctx *EvalContext) Child(env *Environment) *EvalContext {
	child := *ctx
	child.Env = env
	child.CallDepth++
	return &child
}

// Evaluate computes the value of an expression. Arguments evaluate left
// to right.
func Evaluate(ctx *EvalContext, e Expr) Value {
	switch e := e.(type) {
	case *Variable:
		return ctx.Env.Lookup(e)
	case *Constant:
		return e.Val
	case *Apply:
		return evalApply(ctx, e.Fn, e.Args, false)
	case *ApplyScalar:
		return evalApply(ctx, e.Fn, e.Args, true)
	case *VectorComponent:
		base, ok := Evaluate(ctx, e.Base).(Vector)
		if !ok {
			panic(fmt.Sprintf("vector component access on non-vector expression %s", Print(e.Base)))
		}
		return Scalar(base[e.Index])
	case *MatrixComponent:
		base, ok := Evaluate(ctx, e.Base).(Matrix)
		if !ok {
			panic(fmt.Sprintf("matrix component access on non-matrix expression %s", Print(e.Base)))
		}
		return Scalar(base[e.Col][e.Row])
	default:
		panic(fmt.Sprintf("unknown expression kind %T", e))
	}
}

func evalApply(ctx *EvalContext, fn Func, argExprs []Expr, componentwise bool) Value {
	if len(argExprs) != fn.Arity() {
		panic(fmt.Sprintf("%s applied to %d arguments, wants %d", fn.Name(), len(argExprs), fn.Arity()))
	}
	args := make([]Value, len(argExprs))
	for i, a := range argExprs {
		args[i] = Evaluate(ctx, a)
	}
	if ctx.Trace != nil {
		ctx.Trace.Debug("apply", "func", fn.Name(), "depth", ctx.CallDepth)
	}
	if componentwise {
		return ApplyComponentwise(ctx, fn, args)
	}
	if of, ok := fn.(OutParamFunc); ok {
		ret, out := of.ApplyOut(ctx, args)
		idx := of.OutParamIndex()
		v, isVar := argExprs[idx].(*Variable)
		if !isVar {
			panic(fmt.Sprintf("out parameter %d of %s must be a variable", idx, fn.Name()))
		}
		ctx.Env.Bind(v, out)
		return ret
	}
	return fn.Apply(ctx, args)
}

// ApplyComponentwise applies a scalar function across vector or matrix
// arguments, broadcasting scalar arguments to every component. All
// non-scalar arguments must share one shape.
func ApplyComponentwise(ctx *EvalContext, fn Func, args []Value) Value {
	rows, cols := 1, 1
	const (
		scalarShape = iota
		vectorShape
		matrixShape
	)
	shape := scalarShape
	for _, a := range args {
		switch a := a.(type) {
		case Vector:
			if shape == matrixShape || (shape == vectorShape && rows != len(a)) {
				panic(fmt.Sprintf("mismatched argument shapes for %s", fn.Name()))
			}
			shape, rows = vectorShape, len(a)
		case Matrix:
			if shape == vectorShape || (shape == matrixShape && (cols != len(a) || rows != len(a[0]))) {
				panic(fmt.Sprintf("mismatched argument shapes for %s", fn.Name()))
			}
			shape, cols, rows = matrixShape, len(a), len(a[0])
		}
	}

	scalarAt := func(a Value, c, r int) Value {
		switch a := a.(type) {
		case Scalar:
			return a
		case Vector:
			return Scalar(a[r])
		case Matrix:
			return Scalar(a[c][r])
		default:
			panic(fmt.Sprintf("unknown value kind %T", a))
		}
	}
	applyAt := func(c, r int) interval.Interval {
		comp := make([]Value, len(args))
		for i, a := range args {
			comp[i] = scalarAt(a, c, r)
		}
		s, ok := fn.Apply(ctx, comp).(Scalar)
		if !ok {
			panic(fmt.Sprintf("%s is not a scalar function", fn.Name()))
		}
		return interval.Interval(s)
	}

	switch shape {
	case scalarShape:
		return fn.Apply(ctx, args)
	case vectorShape:
		out := make(Vector, rows)
		for r := range out {
			out[r] = applyAt(0, r)
		}
		return out
	default:
		out := make(Matrix, cols)
		for c := range out {
			out[c] = make([]interval.Interval, rows)
			for r := range out[c] {
				out[c][r] = applyAt(c, r)
			}
		}
		return out
	}
}

// ExecStatement executes one statement against the context environment.
func ExecStatement(ctx *EvalContext, s Statement) {
	switch s := s.(type) {
	case *VariableStatement:
		ctx.Env.Bind(s.Var, Evaluate(ctx, s.Init))
	default:
		panic(fmt.Sprintf("unknown statement kind %T", s))
	}
}

// ExecStatements executes statements in order.
func ExecStatements(ctx *EvalContext, stmts []Statement) {
	for _, s := range stmts {
		ExecStatement(ctx, s)
	}
}

// BindParams binds parameter variables to argument values in env.
func BindParams(env *Environment, params []*Variable, args []Value) {
	if len(params) != len(args) {
		panic(fmt.Sprintf("binding %d arguments to %d parameters", len(args), len(params)))
	}
	for i, p := range params {
		env.Bind(p, args[i])
	}
}
