package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/glprec/floatfmt"
	"github.com/gogpu/glprec/interval"
)

// Value is the result of evaluating an expression: one interval per
// scalar component of a shading-language value. The three shapes mirror
// the scalar, vector and matrix type families. Matrices are column-major.
type Value interface {
	valueKind()
}

// Scalar is a single component interval.
type Scalar interval.Interval

func (Scalar) valueKind() {}

// Vector holds one interval per vector component.
type Vector []interval.Interval

func (Vector) valueKind() {}

// Matrix holds one interval per matrix element, indexed [column][row].
type Matrix [][]interval.Interval

func (Matrix) valueKind() {}

// Iv returns the underlying interval of a scalar value.
func (s Scalar) Iv() interval.Interval { return interval.Interval(s) }

// String renders the scalar's interval.
func (s Scalar) String() string { return interval.Interval(s).String() }

// String renders the vector as a parenthesized component list.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, iv := range v {
		parts[i] = iv.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// String renders the matrix as a parenthesized list of columns.
func (m Matrix) String() string {
	cols := make([]string, len(m))
	for c, col := range m {
		cols[c] = Vector(col).String()
	}
	return "(" + strings.Join(cols, ", ") + ")"
}

// NewValue returns a value of type t with every component set to the
// empty interval.
func NewValue(t Type) Value {
	rows, cols := t.Shape()
	switch {
	case t.IsScalar():
		return Scalar(interval.Empty())
	case t.IsVector():
		v := make(Vector, rows)
		for i := range v {
			v[i] = interval.Empty()
		}
		return v
	default:
		m := make(Matrix, cols)
		for c := range m {
			m[c] = make([]interval.Interval, rows)
			for r := range m[c] {
				m[c][r] = interval.Empty()
			}
		}
		return m
	}
}

// TypeOf returns the value type matching v's shape. Scalars report
// Float; boolean and integer scalars are not distinguishable from their
// shape alone.
func TypeOf(v Value) Type {
	switch v := v.(type) {
	case Scalar:
		return Float
	case Vector:
		return VecType(len(v))
	case Matrix:
		return MatType(len(v), len(v[0]))
	default:
		panic(fmt.Sprintf("unknown value kind %T", v))
	}
}

// mapValue applies f to every component interval of v.
func mapValue(v Value, f func(interval.Interval) interval.Interval) Value {
	switch v := v.(type) {
	case Scalar:
		return Scalar(f(interval.Interval(v)))
	case Vector:
		out := make(Vector, len(v))
		for i, iv := range v {
			out[i] = f(iv)
		}
		return out
	case Matrix:
		out := make(Matrix, len(v))
		for c, col := range v {
			out[c] = make([]interval.Interval, len(col))
			for r, iv := range col {
				out[c][r] = f(iv)
			}
		}
		return out
	default:
		panic(fmt.Sprintf("unknown value kind %T", v))
	}
}

// UnionValues returns the componentwise union of two values of the same
// shape.
func UnionValues(a, b Value) Value {
	switch a := a.(type) {
	case Scalar:
		bs, ok := b.(Scalar)
		if !ok {
			panic(shapeMismatch("union", a, b))
		}
		return Scalar(interval.Interval(a).Union(interval.Interval(bs)))
	case Vector:
		bv, ok := b.(Vector)
		if !ok || len(a) != len(bv) {
			panic(shapeMismatch("union", a, b))
		}
		out := make(Vector, len(a))
		for i := range a {
			out[i] = a[i].Union(bv[i])
		}
		return out
	case Matrix:
		bm, ok := b.(Matrix)
		if !ok || len(a) != len(bm) {
			panic(shapeMismatch("union", a, b))
		}
		out := make(Matrix, len(a))
		for c := range a {
			if len(a[c]) != len(bm[c]) {
				panic(shapeMismatch("union", a, b))
			}
			out[c] = make([]interval.Interval, len(a[c]))
			for r := range a[c] {
				out[c][r] = a[c][r].Union(bm[c][r])
			}
		}
		return out
	default:
		panic(fmt.Sprintf("unknown value kind %T", a))
	}
}

// ConvertValue maps every component through Format.Convert.
func ConvertValue(f floatfmt.Format, v Value) Value {
	return mapValue(v, f.Convert)
}

// RoundOutValue maps every component through Format.RoundOut.
func RoundOutValue(f floatfmt.Format, v Value, roundUnderOverflow bool) Value {
	return mapValue(v, func(iv interval.Interval) interval.Interval {
		return f.RoundOut(iv, roundUnderOverflow)
	})
}

// ContainsPoint reports whether each component interval of v contains
// the corresponding component of p. The shapes must match; a mismatch is
// a programming error.
func ContainsPoint(v Value, p Point) bool {
	switch v := v.(type) {
	case Scalar:
		ps, ok := p.(ScalarPoint)
		if !ok {
			panic(shapeMismatch("contains", v, p))
		}
		return interval.Interval(v).Contains(float64(ps))
	case Vector:
		pv, ok := p.(VectorPoint)
		if !ok || len(v) != len(pv) {
			panic(shapeMismatch("contains", v, p))
		}
		for i := range v {
			if !v[i].Contains(pv[i]) {
				return false
			}
		}
		return true
	case Matrix:
		pm, ok := p.(MatrixPoint)
		if !ok || len(v) != len(pm) {
			panic(shapeMismatch("contains", v, p))
		}
		for c := range v {
			if len(v[c]) != len(pm[c]) {
				panic(shapeMismatch("contains", v, p))
			}
			for r := range v[c] {
				if !v[c][r].Contains(pm[c][r]) {
					return false
				}
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unknown value kind %T", v))
	}
}

func shapeMismatch(op string, a, b any) string {
	return fmt.Sprintf("shape mismatch in %s: %T vs %T", op, a, b)
}

// Point is a concrete shading-language value: the float64 counterpart of
// Value. Sampled inputs and observed implementation outputs are points.
type Point interface {
	pointKind()
}

// ScalarPoint is a concrete scalar.
type ScalarPoint float64

func (ScalarPoint) pointKind() {}

// VectorPoint is a concrete vector.
type VectorPoint []float64

func (VectorPoint) pointKind() {}

// MatrixPoint is a concrete column-major matrix.
type MatrixPoint [][]float64

func (MatrixPoint) pointKind() {}

// String renders the scalar as a literal.
func (p ScalarPoint) String() string { return fmt.Sprintf("%g", float64(p)) }

// String renders the vector as a constructor call.
func (p VectorPoint) String() string {
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return fmt.Sprintf("vec%d(%s)", len(p), strings.Join(parts, ", "))
}

// String renders the matrix as a constructor call over columns.
func (p MatrixPoint) String() string {
	cols := make([]string, len(p))
	for c, col := range p {
		cols[c] = VectorPoint(col).String()
	}
	return fmt.Sprintf("mat%dx%d(%s)", len(p), len(p[0]), strings.Join(cols, ", "))
}

// NewPoint returns a zero concrete value of type t.
func NewPoint(t Type) Point {
	rows, cols := t.Shape()
	switch {
	case t.IsScalar():
		return ScalarPoint(0)
	case t.IsVector():
		return make(VectorPoint, rows)
	default:
		m := make(MatrixPoint, cols)
		for c := range m {
			m[c] = make([]float64, rows)
		}
		return m
	}
}

// RoundPoint rounds a concrete value into the format grid in both
// directions, producing the input interval for analysis. NaN components
// map to the NaN-only interval.
func RoundPoint(f floatfmt.Format, p Point) Value {
	round := func(x float64) interval.Interval {
		if math.IsNaN(x) {
			return interval.NaN()
		}
		return interval.Span(f.Round(x, false), f.Round(x, true))
	}
	switch p := p.(type) {
	case ScalarPoint:
		return Scalar(round(float64(p)))
	case VectorPoint:
		out := make(Vector, len(p))
		for i, x := range p {
			out[i] = round(x)
		}
		return out
	case MatrixPoint:
		out := make(Matrix, len(p))
		for c, col := range p {
			out[c] = make([]interval.Interval, len(col))
			for r, x := range col {
				out[c][r] = round(x)
			}
		}
		return out
	default:
		panic(fmt.Sprintf("unknown point kind %T", p))
	}
}
