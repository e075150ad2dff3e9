package builtins

import (
	"fmt"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/interval"
)

// GenVec returns the vector constructor of the given size: that many
// scalar arguments assembled into a vector. Size 1 passes its argument
// through.
func GenVec(size int) expr.Func {
	return &genVecFunc{size: size, typ: expr.VecType(size)}
}

type genVecFunc struct {
	size int
	typ  expr.Type
}

func (f *genVecFunc) Name() string { return f.typ.String() }
func (f *genVecFunc) Arity() int   { return f.size }

func (f *genVecFunc) Apply(_ *expr.EvalContext, args []expr.Value) expr.Value {
	if f.size == 1 {
		return args[0]
	}
	out := make(expr.Vector, f.size)
	for i := range out {
		out[i] = scalarArg(f.Name(), args, i)
	}
	return out
}

// GenMat returns the matrix constructor of the given shape: cols column
// vectors of rows components assembled into a matrix.
func GenMat(cols, rows int) expr.Func {
	return &genMatFunc{cols: cols, rows: rows, typ: expr.MatType(cols, rows)}
}

type genMatFunc struct {
	cols, rows int
	typ        expr.Type
}

func (f *genMatFunc) Name() string { return f.typ.String() }
func (f *genMatFunc) Arity() int   { return f.cols }

func (f *genMatFunc) Apply(_ *expr.EvalContext, args []expr.Value) expr.Value {
	out := make(expr.Matrix, f.cols)
	for c := range out {
		col := vectorArg(f.Name(), args, c)
		if len(col) != f.rows {
			panic(fmt.Sprintf("%s: column %d has %d components, wants %d",
				f.Name(), c, len(col), f.rows))
		}
		out[c] = append([]interval.Interval(nil), col...)
	}
	return out
}

// OuterProduct returns the outerProduct model for a rows-component
// column argument and a cols-component row argument.
func OuterProduct(rows, cols int) expr.Func {
	return &outerProductFunc{rows: rows, cols: cols}
}

type outerProductFunc struct {
	rows, cols int
}

func (*outerProductFunc) Name() string { return "outerProduct" }
func (*outerProductFunc) Arity() int   { return 2 }

func (f *outerProductFunc) Apply(ctx *expr.EvalContext, args []expr.Value) expr.Value {
	c := vectorArg("outerProduct", args, 0)
	r := vectorArg("outerProduct", args, 1)
	out := make(expr.Matrix, f.cols)
	for col := range out {
		out[col] = make([]interval.Interval, f.rows)
		for row := range out[col] {
			prod := Mul.Apply(ctx, []expr.Value{expr.Scalar(c[row]), expr.Scalar(r[col])})
			out[col][row] = prod.(expr.Scalar).Iv()
		}
	}
	return out
}

// Transpose returns the transpose model for a cols-by-rows matrix
// argument. Components move without rounding.
func Transpose(cols, rows int) expr.Func {
	return &transposeFunc{cols: cols, rows: rows}
}

type transposeFunc struct {
	cols, rows int
}

func (*transposeFunc) Name() string { return "transpose" }
func (*transposeFunc) Arity() int   { return 1 }

func (f *transposeFunc) Apply(_ *expr.EvalContext, args []expr.Value) expr.Value {
	m := matrixArg("transpose", args, 0)
	out := make(expr.Matrix, f.rows)
	for c := range out {
		out[c] = make([]interval.Interval, f.cols)
		for r := range out[c] {
			out[c][r] = m[r][c]
		}
	}
	return out
}
