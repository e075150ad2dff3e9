package builtins

import (
	"github.com/gogpu/glprec/expr"
)

// CompWise lifts a scalar function model to vectors and matrices by
// componentwise application. Scalar arguments broadcast across every
// component, so mixed signatures such as min(vec3, float) need no
// separate model. Out parameters are lifted componentwise as well.
func CompWise(fn expr.Func) expr.Func {
	return CompWiseNamed("", fn)
}

// CompWiseNamed is CompWise under another function name, for built-ins
// such as matrixCompMult that rename a scalar operation.
func CompWiseNamed(name string, fn expr.Func) expr.Func {
	if of, ok := fn.(expr.OutParamFunc); ok {
		return &compWiseOutFunc{compWiseFunc{inner: fn, name: name}, of}
	}
	return &compWiseFunc{inner: fn, name: name}
}

type compWiseFunc struct {
	inner expr.Func
	name  string
}

func (c *compWiseFunc) Name() string {
	if c.name != "" {
		return c.name
	}
	return c.inner.Name()
}

func (c *compWiseFunc) Arity() int { return c.inner.Arity() }

func (c *compWiseFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	return expr.ApplyComponentwise(ctx, c.inner, args)
}

func (c *compWiseFunc) PrintCall(args []string) string {
	if c.name == "" {
		if p, ok := c.inner.(expr.CallPrinter); ok {
			return p.PrintCall(args)
		}
	}
	return expr.PrintDefaultCall(c.Name(), args)
}

type compWiseOutFunc struct {
	compWiseFunc
	inner expr.OutParamFunc
}

func (c *compWiseOutFunc) OutParamIndex() int { return c.inner.OutParamIndex() }

func (c *compWiseOutFunc) ApplyOut(ctx *expr.EvalContext, args []expr.Value) (expr.Value, expr.Value) {
	rows := 1
	vector := false
	for _, a := range args {
		if v, ok := a.(expr.Vector); ok {
			vector, rows = true, len(v)
		}
	}
	if !vector {
		return c.inner.ApplyOut(ctx, args)
	}
	ret := make(expr.Vector, rows)
	out := make(expr.Vector, rows)
	for r := 0; r < rows; r++ {
		comp := make([]expr.Value, len(args))
		for i, a := range args {
			if v, ok := a.(expr.Vector); ok {
				comp[i] = expr.Scalar(v[r])
			} else {
				comp[i] = a
			}
		}
		cr, co := c.inner.ApplyOut(ctx, comp)
		ret[r] = cr.(expr.Scalar).Iv()
		out[r] = co.(expr.Scalar).Iv()
	}
	return ret, out
}
