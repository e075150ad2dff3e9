package expr

import "fmt"

// ValidationError describes one defect found in a program.
type ValidationError struct {
	Message string
	// Path locates the defect: a statement index or "result".
	Path string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("at %s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Validator accumulates validation errors over a program.
type Validator struct {
	errors []ValidationError
	vars   map[string]Type
}

// ValidateProgram checks that a program is well formed: variables are
// declared before use with consistent types, application arities match,
// out parameters are variables, and component accesses are in range.
// Type information is propagated where the tree determines it; function
// result shapes are not modeled and stay unchecked.
func ValidateProgram(params []*Variable, stmts []Statement, ret Expr) []ValidationError {
	v := &Validator{vars: make(map[string]Type)}
	for _, p := range params {
		v.vars[p.Name] = p.Type
	}
	for i, s := range stmts {
		v.statement(fmt.Sprintf("statement %d", i), s)
	}
	if ret != nil {
		v.expression("result", ret)
	}
	return v.errors
}

func (v *Validator) errorf(path, format string, args ...any) {
	v.errors = append(v.errors, ValidationError{
		Message: fmt.Sprintf(format, args...),
		Path:    path,
	})
}

func (v *Validator) statement(path string, s Statement) {
	switch s := s.(type) {
	case *VariableStatement:
		if s.Var == nil {
			v.errorf(path, "variable statement without a variable")
			return
		}
		v.expression(path, s.Init)
		if prev, ok := v.vars[s.Var.Name]; ok && prev != s.Var.Type {
			v.errorf(path, "variable %q redeclared as %s, was %s", s.Var.Name, s.Var.Type, prev)
		}
		v.vars[s.Var.Name] = s.Var.Type
	default:
		v.errorf(path, "unknown statement kind %T", s)
	}
}

// expression validates e and returns its type when the tree determines
// it.
func (v *Validator) expression(path string, e Expr) (Type, bool) {
	switch e := e.(type) {
	case *Variable:
		declared, ok := v.vars[e.Name]
		if !ok {
			v.errorf(path, "undeclared variable %q", e.Name)
			return e.Type, false
		}
		if declared != e.Type {
			v.errorf(path, "variable %q used as %s, declared as %s", e.Name, e.Type, declared)
		}
		return declared, true
	case *Constant:
		if e.Val == nil {
			v.errorf(path, "constant without a value")
			return 0, false
		}
		return TypeOf(e.Val), true
	case *Apply:
		v.application(path, e.Fn, e.Args, false)
		return 0, false
	case *ApplyScalar:
		v.application(path, e.Fn, e.Args, true)
		return 0, false
	case *VectorComponent:
		t, known := v.expression(path, e.Base)
		if known {
			if !t.IsVector() {
				v.errorf(path, "vector component access on %s", t)
			} else if e.Index < 0 || e.Index >= t.Rows() {
				v.errorf(path, "component index %d out of range for %s", e.Index, t)
			}
		}
		return Float, true
	case *MatrixComponent:
		t, known := v.expression(path, e.Base)
		if known {
			if !t.IsMatrix() {
				v.errorf(path, "matrix component access on %s", t)
			} else if e.Col < 0 || e.Col >= t.Cols() || e.Row < 0 || e.Row >= t.Rows() {
				v.errorf(path, "element [%d][%d] out of range for %s", e.Col, e.Row, t)
			}
		}
		return Float, true
	default:
		v.errorf(path, "unknown expression kind %T", e)
		return 0, false
	}
}

func (v *Validator) application(path string, fn Func, args []Expr, componentwise bool) {
	if fn == nil {
		v.errorf(path, "application without a function")
		return
	}
	if len(args) != fn.Arity() {
		v.errorf(path, "%s applied to %d arguments, wants %d", fn.Name(), len(args), fn.Arity())
	}
	if of, ok := fn.(OutParamFunc); ok && !componentwise {
		idx := of.OutParamIndex()
		if idx >= 0 && idx < len(args) {
			if _, isVar := args[idx].(*Variable); !isVar {
				v.errorf(path, "out parameter %d of %s must be a variable", idx, fn.Name())
			}
		}
	}
	for _, a := range args {
		v.expression(path, a)
	}
}
