package expr

import (
	"fmt"
	"strings"

	"github.com/gogpu/glprec/interval"
)

// Print renders an expression in shading-language syntax. Operators
// print in infix form and applications as calls; the output is meant for
// logs and failure reports, not for compilation.
func Print(e Expr) string {
	switch e := e.(type) {
	case *Variable:
		return e.Name
	case *Constant:
		return constantString(e.Val)
	case *Apply:
		return printCall(e.Fn, e.Args)
	case *ApplyScalar:
		return printCall(e.Fn, e.Args)
	case *VectorComponent:
		return fmt.Sprintf("%s[%d]", Print(e.Base), e.Index)
	case *MatrixComponent:
		return fmt.Sprintf("%s[%d][%d]", Print(e.Base), e.Col, e.Row)
	default:
		panic(fmt.Sprintf("unknown expression kind %T", e))
	}
}

func printCall(fn Func, args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Print(a)
	}
	if cp, ok := fn.(CallPrinter); ok {
		return cp.PrintCall(parts)
	}
	return PrintDefaultCall(fn.Name(), parts)
}

// PrintDefaultCall renders a plain function call. Wrapper functions use
// it when their inner function declares no custom call syntax.
func PrintDefaultCall(name string, args []string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}

func constantString(v Value) string {
	if s, ok := v.(Scalar); ok {
		iv := interval.Interval(s)
		if !iv.Empty() && !iv.HasNaN() && iv.Lo() == iv.Hi() {
			return fmt.Sprintf("%g", iv.Lo())
		}
	}
	return fmt.Sprintf("%v", v)
}

// PrintStatement renders a statement as a declaration line.
func PrintStatement(s Statement) string {
	switch s := s.(type) {
	case *VariableStatement:
		return fmt.Sprintf("%s %s = %s;", s.Var.Type, s.Var.Name, Print(s.Init))
	default:
		panic(fmt.Sprintf("unknown statement kind %T", s))
	}
}

// PrintProgram renders a statement list one line per statement.
func PrintProgram(stmts []Statement) string {
	lines := make([]string, len(stmts))
	for i, s := range stmts {
		lines[i] = PrintStatement(s)
	}
	return strings.Join(lines, "\n")
}
