package builtins

import (
	"github.com/gogpu/glprec/expr"
)

// Determinant returns the determinant model for square matrices of the
// given size. The expansion is the cofactor sum along the first column.
func Determinant(size int) expr.Func { return determinantFuncs[size] }

// Inverse returns the inverse model for square matrices of the given
// size: the adjugate over a bound determinant.
func Inverse(size int) expr.Func { return inverseFuncs[size] }

// MatrixCompMult models componentwise matrix multiplication.
var MatrixCompMult expr.Func = CompWiseNamed("matrixCompMult", Mul)

var (
	determinantFuncs = [5]expr.Func{nil, nil, makeDeterminant(2), makeDeterminant(3), makeDeterminant(4)}
	inverseFuncs     = [5]expr.Func{nil, nil, makeInverse(2), makeInverse(3), makeInverse(4)}
)

func makeDeterminant(size int) expr.Func {
	return newDerived("determinant", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		return detGrid(matGrid(args[0], size))
	}, mparam("m", size, size))
}

func makeInverse(size int) expr.Func {
	return newDerived("inverse", func(ec *ExpandContext, args []expr.Expr) expr.Expr {
		m := args[0]
		g := matGrid(m, size)
		det := ec.Bind("det", expr.Float, detGrid(g))
		cols := make([]expr.Expr, size)
		for j := 0; j < size; j++ {
			rows := make([]expr.Expr, size)
			for i := 0; i < size; i++ {
				entry := div(detGrid(minorGrid(g, i, j)), det)
				if (i+j)%2 == 1 {
					entry = neg(entry)
				}
				rows[i] = entry
			}
			cols[j] = apply(GenVec(size), rows...)
		}
		return apply(GenMat(size, size), cols...)
	}, mparam("m", size, size))
}

// matGrid lays the components of a size-by-size matrix expression out
// as a column-major grid of component expressions.
func matGrid(m expr.Expr, size int) [][]expr.Expr {
	g := make([][]expr.Expr, size)
	for c := range g {
		g[c] = make([]expr.Expr, size)
		for r := range g[c] {
			g[c][r] = matComp(m, r, c)
		}
	}
	return g
}

// minorGrid removes one column and one row.
func minorGrid(g [][]expr.Expr, col, row int) [][]expr.Expr {
	var out [][]expr.Expr
	for c := range g {
		if c == col {
			continue
		}
		var column []expr.Expr
		for r := range g[c] {
			if r == row {
				continue
			}
			column = append(column, g[c][r])
		}
		out = append(out, column)
	}
	return out
}

// detGrid is the determinant of a column-major grid by cofactor
// expansion along the first column.
func detGrid(g [][]expr.Expr) expr.Expr {
	switch len(g) {
	case 1:
		return g[0][0]
	case 2:
		return sub(mul(g[0][0], g[1][1]), mul(g[1][0], g[0][1]))
	}
	var det expr.Expr
	for r := range g {
		term := mul(g[0][r], detGrid(minorGrid(g, 0, r)))
		switch {
		case det == nil:
			det = term
		case r%2 == 1:
			det = sub(det, term)
		default:
			det = add(det, term)
		}
	}
	return det
}
