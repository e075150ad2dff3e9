package expr

import (
	"strings"
	"testing"

	"github.com/gogpu/glprec/interval"
)

func TestValidateProgramClean(t *testing.T) {
	x := NewVariable("x", Float)
	y := NewVariable("y", Float)
	stmts := []Statement{
		&VariableStatement{Var: y, Init: &Apply{Fn: addOp{}, Args: []Expr{x, x}}},
	}
	if errs := ValidateProgram([]*Variable{x}, stmts, y); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestValidateProgramDefects(t *testing.T) {
	x := NewVariable("x", Float)
	v := NewVariable("v", Vec3)
	one := &Constant{Val: Scalar(interval.Point(1))}

	tests := []struct {
		name   string
		params []*Variable
		stmts  []Statement
		ret    Expr
		want   string
	}{
		{
			name: "undeclared variable",
			ret:  NewVariable("ghost", Float),
			want: "undeclared",
		},
		{
			name:   "type mismatch",
			params: []*Variable{x},
			ret:    NewVariable("x", Vec2),
			want:   "declared as",
		},
		{
			name:   "arity",
			params: []*Variable{x},
			ret:    &Apply{Fn: addOp{}, Args: []Expr{x}},
			want:   "wants 2",
		},
		{
			name:   "component out of range",
			params: []*Variable{v},
			ret:    &VectorComponent{Base: v, Index: 3},
			want:   "out of range",
		},
		{
			name:   "component on scalar",
			params: []*Variable{x},
			ret:    &VectorComponent{Base: x, Index: 0},
			want:   "component access on float",
		},
		{
			name:   "out parameter not a variable",
			params: []*Variable{x},
			ret:    &Apply{Fn: halves{}, Args: []Expr{x, one}},
			want:   "must be a variable",
		},
		{
			name:   "redeclared",
			params: []*Variable{x},
			stmts: []Statement{
				&VariableStatement{Var: NewVariable("x", Vec2), Init: one},
			},
			want: "redeclared",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateProgram(tt.params, tt.stmts, tt.ret)
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			var all []string
			for _, e := range errs {
				all = append(all, e.Error())
			}
			joined := strings.Join(all, "; ")
			if !strings.Contains(joined, tt.want) {
				t.Errorf("errors %q do not mention %q", joined, tt.want)
			}
		})
	}
}
