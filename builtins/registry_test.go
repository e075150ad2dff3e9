package builtins

import (
	"sort"
	"testing"

	"github.com/gogpu/glprec/expr"
)

func TestLookupScalar(t *testing.T) {
	f, ok := Lookup("sin", expr.Float)
	if !ok {
		t.Fatal("sin not found at float")
	}
	if f != Sin {
		t.Error("float lookup did not return the scalar model")
	}
}

func TestLookupVectorLifts(t *testing.T) {
	f, ok := Lookup("sin", expr.Vec3)
	if !ok {
		t.Fatal("sin not found at vec3")
	}
	got, isVec := f.Apply(highpCtx(), []expr.Value{vec(0, 0, 0)}).(expr.Vector)
	if !isVec {
		t.Fatal("vec3 sin did not return a vector")
	}
	for i := range got {
		wantContains(t, got[i], 0)
	}
}

func TestLookupMatrixComponentwise(t *testing.T) {
	if _, ok := Lookup("add", expr.Mat2); !ok {
		t.Error("add not found at mat2")
	}
	if _, ok := Lookup("mul", expr.Mat2); ok {
		t.Error("componentwise mul must not resolve at matrix types")
	}
	if _, ok := Lookup("sin", expr.Mat2); ok {
		t.Error("sin must not resolve at matrix types")
	}
}

func TestLookupATan2(t *testing.T) {
	f, ok := Lookup("atan2", expr.Float)
	if !ok {
		t.Fatal("atan2 not found at float")
	}
	if f.Name() != "atan" {
		t.Errorf("atan2 model is named %q, want atan", f.Name())
	}
	if f.Arity() != 2 {
		t.Errorf("atan2 arity = %d, want 2", f.Arity())
	}
}

func TestLookupGeometric(t *testing.T) {
	f, ok := Lookup("dot", expr.Vec4)
	if !ok {
		t.Fatal("dot not found at vec4")
	}
	if f.Arity() != 2 {
		t.Errorf("dot arity = %d, want 2", f.Arity())
	}
	if _, ok := Lookup("dot", expr.Mat2); ok {
		t.Error("dot must not resolve at matrix types")
	}
	if _, ok := Lookup("cross", expr.Vec3); !ok {
		t.Error("cross not found at vec3")
	}
	if _, ok := Lookup("cross", expr.Vec2); ok {
		t.Error("cross must not resolve at vec2")
	}
}

func TestLookupMatrixShapes(t *testing.T) {
	if _, ok := Lookup("determinant", expr.Mat3); !ok {
		t.Error("determinant not found at mat3")
	}
	if _, ok := Lookup("determinant", expr.Mat3x2); ok {
		t.Error("determinant must not resolve at non-square shapes")
	}
	if _, ok := Lookup("inverse", expr.Mat4); !ok {
		t.Error("inverse not found at mat4")
	}
	f, ok := Lookup("transpose", expr.Mat2x3)
	if !ok {
		t.Fatal("transpose not found at mat2x3")
	}
	in := mat([]float64{1, 2, 3}, []float64{4, 5, 6})
	got := callMat(t, highpCtx(), f, in)
	if len(got) != 3 || len(got[0]) != 2 {
		t.Errorf("transposed shape %dx%d, want 3x2", len(got), len(got[0]))
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("texelFetch", expr.Float); ok {
		t.Error("unmodeled name must not resolve")
	}
}

func TestSignature(t *testing.T) {
	tests := []struct {
		name   string
		at     expr.Type
		params []expr.Type
		outs   []expr.Type
	}{
		{"sin", expr.Float, []expr.Type{expr.Float}, []expr.Type{expr.Float}},
		{"clamp", expr.Vec3, []expr.Type{expr.Vec3, expr.Vec3, expr.Vec3}, []expr.Type{expr.Vec3}},
		{"modf", expr.Vec2, []expr.Type{expr.Vec2, expr.Vec2}, []expr.Type{expr.Vec2, expr.Vec2}},
		{"dot", expr.Vec4, []expr.Type{expr.Vec4, expr.Vec4}, []expr.Type{expr.Float}},
		{"length", expr.Vec3, []expr.Type{expr.Vec3}, []expr.Type{expr.Float}},
		{"refract", expr.Vec2, []expr.Type{expr.Vec2, expr.Vec2, expr.Float}, []expr.Type{expr.Vec2}},
		{"cross", expr.Vec3, []expr.Type{expr.Vec3, expr.Vec3}, []expr.Type{expr.Vec3}},
		{"outerProduct", expr.Mat3x2, []expr.Type{expr.Vec2, expr.Vec3}, []expr.Type{expr.Mat3x2}},
		{"transpose", expr.Mat2x3, []expr.Type{expr.Mat2x3}, []expr.Type{expr.Mat3x2}},
		{"determinant", expr.Mat2, []expr.Type{expr.Mat2}, []expr.Type{expr.Float}},
		{"inverse", expr.Mat3, []expr.Type{expr.Mat3}, []expr.Type{expr.Mat3}},
	}
	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.at.String(), func(t *testing.T) {
			params, outs, ok := Signature(tt.name, tt.at)
			if !ok {
				t.Fatalf("no signature for %s at %s", tt.name, tt.at)
			}
			if !typesEqual(params, tt.params) {
				t.Errorf("params = %v, want %v", params, tt.params)
			}
			if !typesEqual(outs, tt.outs) {
				t.Errorf("outs = %v, want %v", outs, tt.outs)
			}
		})
	}
}

func TestSignatureRejectsShapes(t *testing.T) {
	if _, _, ok := Signature("sin", expr.Mat2); ok {
		t.Error("sin must have no matrix signature")
	}
	if _, _, ok := Signature("determinant", expr.Mat3x2); ok {
		t.Error("determinant must have no non-square signature")
	}
	if _, _, ok := Signature("texelFetch", expr.Float); ok {
		t.Error("unmodeled name must have no signature")
	}
}

func typesEqual(a, b []expr.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNames(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Error("names are not sorted")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"add", "sin", "atan2", "dot", "inverse", "modf", "smoothstep"} {
		if !seen[want] {
			t.Errorf("names are missing %q", want)
		}
	}
}
