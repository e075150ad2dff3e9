package builtins

import (
	"sort"

	"github.com/gogpu/glprec/expr"
)

// scalarModels are the built-ins defined on float components. At
// vector types they apply componentwise; the linear subset also applies
// componentwise at matrix types.
var scalarModels = map[string]expr.Func{
	"add":         Add,
	"sub":         Sub,
	"mul":         Mul,
	"div":         Div,
	"negate":      Negate,
	"radians":     Radians,
	"degrees":     Degrees,
	"sin":         Sin,
	"cos":         Cos,
	"tan":         Tan,
	"asin":        ASin,
	"acos":        ACos,
	"atan":        ATan,
	"atan2":       ATan2,
	"sinh":        Sinh,
	"cosh":        Cosh,
	"tanh":        Tanh,
	"asinh":       ASinh,
	"acosh":       ACosh,
	"atanh":       ATanh,
	"pow":         Pow,
	"exp":         Exp,
	"log":         Log,
	"exp2":        Exp2,
	"log2":        Log2,
	"sqrt":        Sqrt,
	"inversesqrt": InverseSqrt,
	"abs":         Abs,
	"sign":        Sign,
	"floor":       Floor,
	"trunc":       Trunc,
	"round":       Round,
	"roundEven":   RoundEven,
	"ceil":        Ceil,
	"fract":       Fract,
	"mod":         Mod,
	"modf":        Modf,
	"min":         Min,
	"max":         Max,
	"clamp":       Clamp,
	"mix":         Mix,
	"step":        Step,
	"smoothstep":  SmoothStep,
}

// matrixModels lists the scalar models that are also defined
// componentwise on matrices. Matrix multiplication is not among them;
// its componentwise form is matrixCompMult.
var matrixModels = map[string]bool{
	"add":    true,
	"sub":    true,
	"div":    true,
	"negate": true,
}

// vectorModels are the geometric built-ins, instantiated per component
// count.
var vectorModels = map[string]func(size int) expr.Func{
	"dot":         Dot,
	"length":      Length,
	"distance":    Distance,
	"normalize":   Normalize,
	"faceforward": FaceForward,
	"reflect":     Reflect,
	"refract":     Refract,
}

// shapeBoundNames are the built-ins tied to one specific shape.
var shapeBoundNames = []string{
	"cross", "matrixCompMult", "outerProduct", "transpose", "determinant", "inverse",
}

// Lookup returns the model for the named built-in instantiated at a
// value type: the argument or result type that selects the overload,
// such as vec3 for dot(vec3, vec3) or mat3 for inverse(mat3).
func Lookup(name string, t expr.Type) (expr.Func, bool) {
	if f, ok := scalarModels[name]; ok {
		switch {
		case t == expr.Float:
			return f, true
		case t.IsVector():
			return CompWise(f), true
		case t.IsMatrix() && matrixModels[name]:
			return CompWise(f), true
		}
		return nil, false
	}
	if ctor, ok := vectorModels[name]; ok {
		if t == expr.Float || t.IsVector() {
			return ctor(t.Rows()), true
		}
		return nil, false
	}
	switch name {
	case "cross":
		if t == expr.Vec3 {
			return Cross, true
		}
	case "matrixCompMult":
		if t.IsMatrix() {
			return MatrixCompMult, true
		}
	case "outerProduct":
		if t.IsMatrix() {
			return OuterProduct(t.Rows(), t.Cols()), true
		}
	case "transpose":
		if t.IsMatrix() {
			return Transpose(t.Cols(), t.Rows()), true
		}
	case "determinant":
		if t.IsMatrix() && t.Rows() == t.Cols() {
			return Determinant(t.Rows()), true
		}
	case "inverse":
		if t.IsMatrix() && t.Rows() == t.Cols() {
			return Inverse(t.Rows()), true
		}
	}
	return nil, false
}

// Signature reports the parameter and output types of the named
// built-in instantiated at t, under the same overload selection as
// Lookup. The first output is the return value; for built-ins that
// write through an out parameter the written slot appears both in
// params and as a second output.
func Signature(name string, t expr.Type) (params, outs []expr.Type, ok bool) {
	if f, found := scalarModels[name]; found {
		if t != expr.Float && !t.IsVector() && !(t.IsMatrix() && matrixModels[name]) {
			return nil, nil, false
		}
		params = make([]expr.Type, f.Arity())
		for i := range params {
			params[i] = t
		}
		outs = []expr.Type{t}
		if of, isOut := f.(expr.OutParamFunc); isOut {
			outs = append(outs, params[of.OutParamIndex()])
		}
		return params, outs, true
	}
	if _, found := vectorModels[name]; found {
		if t != expr.Float && !t.IsVector() {
			return nil, nil, false
		}
		switch name {
		case "dot", "distance":
			return []expr.Type{t, t}, []expr.Type{expr.Float}, true
		case "length":
			return []expr.Type{t}, []expr.Type{expr.Float}, true
		case "normalize":
			return []expr.Type{t}, []expr.Type{t}, true
		case "faceforward":
			return []expr.Type{t, t, t}, []expr.Type{t}, true
		case "reflect":
			return []expr.Type{t, t}, []expr.Type{t}, true
		case "refract":
			return []expr.Type{t, t, expr.Float}, []expr.Type{t}, true
		}
		return nil, nil, false
	}
	switch name {
	case "cross":
		if t == expr.Vec3 {
			return []expr.Type{t, t}, []expr.Type{t}, true
		}
	case "matrixCompMult":
		if t.IsMatrix() {
			return []expr.Type{t, t}, []expr.Type{t}, true
		}
	case "outerProduct":
		if t.IsMatrix() {
			return []expr.Type{expr.VecType(t.Rows()), expr.VecType(t.Cols())}, []expr.Type{t}, true
		}
	case "transpose":
		if t.IsMatrix() {
			return []expr.Type{t}, []expr.Type{expr.MatType(t.Rows(), t.Cols())}, true
		}
	case "determinant":
		if t.IsMatrix() && t.Rows() == t.Cols() {
			return []expr.Type{t}, []expr.Type{expr.Float}, true
		}
	case "inverse":
		if t.IsMatrix() && t.Rows() == t.Cols() {
			return []expr.Type{t}, []expr.Type{t}, true
		}
	}
	return nil, nil, false
}

// Names returns the sorted names of every modeled built-in.
func Names() []string {
	seen := make(map[string]bool)
	for name := range scalarModels {
		seen[name] = true
	}
	for name := range vectorModels {
		seen[name] = true
	}
	for _, name := range shapeBoundNames {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
