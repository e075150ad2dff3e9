// Package expr defines the typed expression language of the precision
// oracle: the closed set of shading-language value types, interval-valued
// results, an immutable expression tree, and the evaluator that turns a
// tree plus an input environment into sound output intervals.
package expr

import "fmt"

// Type identifies one of the shading-language value types the oracle
// models. The set is closed: scalars, float vectors and float matrices.
type Type uint8

const (
	// Bool is a boolean scalar, modeled as an interval within [0, 1].
	Bool Type = iota
	// Int is a signed integer scalar.
	Int
	// Float is a floating-point scalar.
	Float
	// Vec2 is a 2-component float vector.
	Vec2
	// Vec3 is a 3-component float vector.
	Vec3
	// Vec4 is a 4-component float vector.
	Vec4
	// Mat2 is a 2-column, 2-row float matrix.
	Mat2
	// Mat2x3 is a 2-column, 3-row float matrix.
	Mat2x3
	// Mat2x4 is a 2-column, 4-row float matrix.
	Mat2x4
	// Mat3x2 is a 3-column, 2-row float matrix.
	Mat3x2
	// Mat3 is a 3-column, 3-row float matrix.
	Mat3
	// Mat3x4 is a 3-column, 4-row float matrix.
	Mat3x4
	// Mat4x2 is a 4-column, 2-row float matrix.
	Mat4x2
	// Mat4x3 is a 4-column, 3-row float matrix.
	Mat4x3
	// Mat4 is a 4-column, 4-row float matrix.
	Mat4
)

// String returns the shading-language spelling of the type.
func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Mat2:
		return "mat2"
	case Mat2x3:
		return "mat2x3"
	case Mat2x4:
		return "mat2x4"
	case Mat3x2:
		return "mat3x2"
	case Mat3:
		return "mat3"
	case Mat3x4:
		return "mat3x4"
	case Mat4x2:
		return "mat4x2"
	case Mat4x3:
		return "mat4x3"
	case Mat4:
		return "mat4"
	default:
		panic(fmt.Sprintf("invalid typename Type(%d)", uint8(t)))
	}
}

// ParseType parses a shading-language type spelling.
func ParseType(name string) (Type, error) {
	for t := Bool; t <= Mat4; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid typename %q", name)
}

// Shape returns the number of rows and columns of t. Scalars are 1x1 and
// vectors are Nx1.
func (t Type) Shape() (rows, cols int) {
	switch t {
	case Bool, Int, Float:
		return 1, 1
	case Vec2:
		return 2, 1
	case Vec3:
		return 3, 1
	case Vec4:
		return 4, 1
	case Mat2:
		return 2, 2
	case Mat2x3:
		return 3, 2
	case Mat2x4:
		return 4, 2
	case Mat3x2:
		return 2, 3
	case Mat3:
		return 3, 3
	case Mat3x4:
		return 4, 3
	case Mat4x2:
		return 2, 4
	case Mat4x3:
		return 3, 4
	case Mat4:
		return 4, 4
	default:
		panic(fmt.Sprintf("invalid typename Type(%d)", uint8(t)))
	}
}

// Rows returns the number of rows.
func (t Type) Rows() int {
	r, _ := t.Shape()
	return r
}

// Cols returns the number of columns.
func (t Type) Cols() int {
	_, c := t.Shape()
	return c
}

// Size returns the number of scalar components.
func (t Type) Size() int {
	r, c := t.Shape()
	return r * c
}

// IsScalar reports whether t is a scalar type.
func (t Type) IsScalar() bool { return t == Bool || t == Int || t == Float }

// IsVector reports whether t is a vector type.
func (t Type) IsVector() bool { return t >= Vec2 && t <= Vec4 }

// IsMatrix reports whether t is a matrix type.
func (t Type) IsMatrix() bool { return t >= Mat2 && t <= Mat4 }

// Scalar returns the component scalar type of t.
func (t Type) Scalar() Type {
	if t.IsScalar() {
		return t
	}
	return Float
}

// Column returns the column vector type of a matrix. It panics for
// non-matrix types.
func (t Type) Column() Type {
	if !t.IsMatrix() {
		panic(fmt.Sprintf("Column on non-matrix type %s", t))
	}
	return VecType(t.Rows())
}

// VecType returns the float vector type with the given component count.
func VecType(size int) Type {
	switch size {
	case 1:
		return Float
	case 2:
		return Vec2
	case 3:
		return Vec3
	case 4:
		return Vec4
	default:
		panic(fmt.Sprintf("invalid vector size %d", size))
	}
}

// MatType returns the float matrix type with the given column and row
// counts.
func MatType(cols, rows int) Type {
	switch {
	case cols == 2 && rows == 2:
		return Mat2
	case cols == 2 && rows == 3:
		return Mat2x3
	case cols == 2 && rows == 4:
		return Mat2x4
	case cols == 3 && rows == 2:
		return Mat3x2
	case cols == 3 && rows == 3:
		return Mat3
	case cols == 3 && rows == 4:
		return Mat3x4
	case cols == 4 && rows == 2:
		return Mat4x2
	case cols == 4 && rows == 3:
		return Mat4x3
	case cols == 4 && rows == 4:
		return Mat4
	default:
		panic(fmt.Sprintf("invalid matrix shape %dx%d", cols, rows))
	}
}
