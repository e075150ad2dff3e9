// Package glprec computes precision intervals for GLSL built-in
// functions.
//
// For every built-in, value type and precision qualifier, the package
// answers the question a conformance checker asks: which concrete
// outputs may a conforming implementation produce for these inputs?
// The answer is an interval (per component) that accounts for input
// rounding, the permitted function error and the value range of the
// evaluation format. An implementation output outside the interval is
// a precision violation; anything inside is admitted.
//
// The package provides a string-keyed facade over the underlying
// packages. Example:
//
//	v, err := glprec.EvaluateBuiltin("sin", "float", "highp",
//	    []expr.Point{expr.ScalarPoint(1.0)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // interval around sin(1)
//
// To check an implementation output directly:
//
//	ok, err := glprec.CheckSample("dot", "vec3", "mediump",
//	    []expr.Point{
//	        expr.VectorPoint{1, 2, 3},
//	        expr.VectorPoint{4, 5, 6},
//	    },
//	    expr.ScalarPoint(32.0))
//
// Typed access lives in the underlying packages: interval holds the
// interval arithmetic, floatfmt the float formats and precision
// qualifiers, expr the expression language and evaluator, builtins the
// function models and registry, and precision the sampling case
// driver.
package glprec

import (
	"fmt"

	"github.com/gogpu/glprec/builtins"
	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
)

// EvaluateBuiltin computes the admitted output interval of one
// built-in application. The type selects the overload the way the
// registry does (vec3 for dot(vec3, vec3), mat2 for inverse(mat2));
// args are rounded through the precision's format before evaluation.
// For built-ins with an out parameter the returned value is the
// function result; the out slot takes no argument.
func EvaluateBuiltin(name, typeName, precisionName string, args []expr.Point) (expr.Value, error) {
	t, err := expr.ParseType(typeName)
	if err != nil {
		return nil, err
	}
	p, err := floatfmt.ParsePrecision(precisionName)
	if err != nil {
		return nil, err
	}
	fn, ok := builtins.Lookup(name, t)
	if !ok {
		return nil, fmt.Errorf("no built-in %q at %s", name, t)
	}
	params, _, _ := builtins.Signature(name, t)
	outIdx := -1
	if of, isOut := fn.(expr.OutParamFunc); isOut {
		outIdx = of.OutParamIndex()
	}
	want := len(params)
	if outIdx >= 0 {
		want--
	}
	if len(args) != want {
		return nil, fmt.Errorf("%s wants %d arguments, got %d", name, want, len(args))
	}
	format := floatfmt.FormatFor(p)
	vals := make([]expr.Value, len(params))
	next := 0
	for i, pt := range params {
		if i == outIdx {
			vals[i] = expr.NewValue(pt)
			continue
		}
		arg := args[next]
		next++
		if !argMatches(arg, pt) {
			return nil, fmt.Errorf("%s argument %d wants %s", name, next-1, pt)
		}
		vals[i] = expr.RoundPoint(format, arg)
	}
	ctx := expr.NewContext(format, p)
	return fn.Apply(ctx, vals), nil
}

// CheckSample reports whether a concrete output is admitted for the
// given inputs.
func CheckSample(name, typeName, precisionName string, args []expr.Point, got expr.Point) (bool, error) {
	v, err := EvaluateBuiltin(name, typeName, precisionName, args)
	if err != nil {
		return false, err
	}
	return expr.ContainsPoint(v, got), nil
}

// MustFormat returns the float format of a precision spelling and
// panics on an unknown one. Use it for fixed spellings in tests and
// tools.
func MustFormat(precisionName string) floatfmt.Format {
	p, err := floatfmt.ParsePrecision(precisionName)
	if err != nil {
		panic(err)
	}
	return floatfmt.FormatFor(p)
}

func argMatches(p expr.Point, t expr.Type) bool {
	switch p := p.(type) {
	case expr.ScalarPoint:
		return t == expr.Float
	case expr.VectorPoint:
		return t.IsVector() && len(p) == t.Size()
	case expr.MatrixPoint:
		return t.IsMatrix() && len(p) == t.Cols() && len(p) > 0 && len(p[0]) == t.Rows()
	default:
		return false
	}
}
