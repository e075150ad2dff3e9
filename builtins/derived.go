package builtins

import (
	"fmt"
	"sync"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/interval"
)

// ExpandContext accumulates the statements of a derived-function body.
type ExpandContext struct {
	n     int
	stmts []expr.Statement
}

// Bind introduces a named temporary holding e so that the expansion
// evaluates it once, and returns a reference to it.
func (ec *ExpandContext) Bind(name string, t expr.Type, e expr.Expr) expr.Expr {
	v := expr.NewVariable(fmt.Sprintf("%s_%d", name, ec.n), t)
	ec.n++
	ec.stmts = append(ec.stmts, &expr.VariableStatement{Var: v, Init: e})
	return v
}

// derivedFunc defines a built-in by expansion into a body built from
// other models. The body is constructed once and memoized; every
// application evaluates it in a fresh child environment.
type derivedFunc struct {
	name   string
	params []*expr.Variable
	expand func(ec *ExpandContext, args []expr.Expr) expr.Expr

	once sync.Once
	body []expr.Statement
	ret  expr.Expr
}

func newDerived(name string, expand func(ec *ExpandContext, args []expr.Expr) expr.Expr, params ...*expr.Variable) *derivedFunc {
	return &derivedFunc{name: name, params: params, expand: expand}
}

func (d *derivedFunc) Name() string { return d.name }
func (d *derivedFunc) Arity() int   { return len(d.params) }

// Body returns the memoized expansion of the function.
func (d *derivedFunc) Body() ([]*expr.Variable, []expr.Statement, expr.Expr) {
	d.once.Do(func() {
		ec := &ExpandContext{}
		args := make([]expr.Expr, len(d.params))
		for i, p := range d.params {
			args[i] = p
		}
		d.ret = d.expand(ec, args)
		d.body = ec.stmts
	})
	return d.params, d.body, d.ret
}

func (d *derivedFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	params, body, ret := d.Body()
	child := ctx.Child(expr.NewEnvironment())
	expr.BindParams(child.Env, params, args)
	expr.ExecStatements(child, body)
	return expr.Evaluate(child, ret)
}

// Expression builders used by derived bodies.

func apply(fn expr.Func, args ...expr.Expr) expr.Expr {
	return &expr.Apply{Fn: fn, Args: args}
}

func applyScalar(fn expr.Func, args ...expr.Expr) expr.Expr {
	return &expr.ApplyScalar{Fn: fn, Args: args}
}

func constant(v float64) expr.Expr {
	return &expr.Constant{Val: expr.Scalar(interval.Point(v))}
}

func constantVec(size int, v float64) expr.Expr {
	vec := make(expr.Vector, size)
	for i := range vec {
		vec[i] = interval.Point(v)
	}
	return &expr.Constant{Val: vec}
}

func add(a, b expr.Expr) expr.Expr { return apply(Add, a, b) }
func sub(a, b expr.Expr) expr.Expr { return apply(Sub, a, b) }
func mul(a, b expr.Expr) expr.Expr { return apply(Mul, a, b) }
func div(a, b expr.Expr) expr.Expr { return apply(Div, a, b) }
func neg(a expr.Expr) expr.Expr    { return apply(Negate, a) }

func comp(base expr.Expr, i int) expr.Expr {
	return &expr.VectorComponent{Base: base, Index: i}
}

func matComp(base expr.Expr, row, col int) expr.Expr {
	return &expr.MatrixComponent{Base: base, Row: row, Col: col}
}

func fparam(name string) *expr.Variable {
	return expr.NewVariable(name, expr.Float)
}

func vparam(name string, size int) *expr.Variable {
	return expr.NewVariable(name, expr.VecType(size))
}

func mparam(name string, cols, rows int) *expr.Variable {
	return expr.NewVariable(name, expr.MatType(cols, rows))
}
