package expr

import "testing"

func TestTypeShapes(t *testing.T) {
	tests := []struct {
		typ  Type
		name string
		rows int
		cols int
	}{
		{Bool, "bool", 1, 1},
		{Int, "int", 1, 1},
		{Float, "float", 1, 1},
		{Vec2, "vec2", 2, 1},
		{Vec3, "vec3", 3, 1},
		{Vec4, "vec4", 4, 1},
		{Mat2, "mat2", 2, 2},
		{Mat2x3, "mat2x3", 3, 2},
		{Mat2x4, "mat2x4", 4, 2},
		{Mat3x2, "mat3x2", 2, 3},
		{Mat3, "mat3", 3, 3},
		{Mat3x4, "mat3x4", 4, 3},
		{Mat4x2, "mat4x2", 2, 4},
		{Mat4x3, "mat4x3", 3, 4},
		{Mat4, "mat4", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			rows, cols := tt.typ.Shape()
			if rows != tt.rows || cols != tt.cols {
				t.Errorf("Shape() = %d rows x %d cols, want %d x %d", rows, cols, tt.rows, tt.cols)
			}
			if got := tt.typ.Size(); got != tt.rows*tt.cols {
				t.Errorf("Size() = %d, want %d", got, tt.rows*tt.cols)
			}
			parsed, err := ParseType(tt.name)
			if err != nil {
				t.Fatalf("ParseType(%q): %v", tt.name, err)
			}
			if parsed != tt.typ {
				t.Errorf("ParseType(%q) = %v, want %v", tt.name, parsed, tt.typ)
			}
		})
	}
}

func TestParseTypeInvalid(t *testing.T) {
	if _, err := ParseType("vec5"); err == nil {
		t.Fatal("expected error for invalid typename")
	}
	if _, err := ParseType(""); err == nil {
		t.Fatal("expected error for empty typename")
	}
}

func TestInvalidTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range type")
		}
	}()
	Type(200).Shape()
}

func TestTypeFamilies(t *testing.T) {
	if !Float.IsScalar() || Float.IsVector() || Float.IsMatrix() {
		t.Error("float should be scalar only")
	}
	if !Vec3.IsVector() || Vec3.IsScalar() {
		t.Error("vec3 should be a vector")
	}
	if !Mat3x4.IsMatrix() || Mat3x4.IsVector() {
		t.Error("mat3x4 should be a matrix")
	}
	if Vec3.Scalar() != Float || Bool.Scalar() != Bool || Int.Scalar() != Int {
		t.Error("wrong component scalar types")
	}
	if Mat3x4.Column() != Vec4 {
		t.Errorf("mat3x4 column = %v, want vec4", Mat3x4.Column())
	}
	if VecType(3) != Vec3 || VecType(1) != Float {
		t.Error("wrong VecType results")
	}
	if MatType(3, 4) != Mat3x4 || MatType(2, 2) != Mat2 {
		t.Error("wrong MatType results")
	}
}
