package builtins

import (
	"github.com/gogpu/glprec/expr"
)

// The geometric functions expand per vector size; the instances are
// shared so each body is built once.

// Dot returns the dot model for size-component vectors.
func Dot(size int) expr.Func { return dotFuncs[size] }

// Length returns the length model for size-component vectors.
func Length(size int) expr.Func { return lengthFuncs[size] }

// Distance returns the distance model for size-component vectors.
func Distance(size int) expr.Func { return distanceFuncs[size] }

// Normalize returns the normalize model for size-component vectors.
func Normalize(size int) expr.Func { return normalizeFuncs[size] }

// FaceForward returns the faceforward model for size-component vectors.
func FaceForward(size int) expr.Func { return faceForwardFuncs[size] }

// Reflect returns the reflect model for size-component vectors.
func Reflect(size int) expr.Func { return reflectFuncs[size] }

// Refract returns the refract model for size-component vectors.
func Refract(size int) expr.Func { return refractFuncs[size] }

// Cross models the three-component cross product.
var Cross expr.Func = newDerived("cross", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
	a, b := args[0], args[1]
	return apply(GenVec(3),
		sub(mul(comp(a, 1), comp(b, 2)), mul(comp(b, 1), comp(a, 2))),
		sub(mul(comp(a, 2), comp(b, 0)), mul(comp(b, 2), comp(a, 0))),
		sub(mul(comp(a, 0), comp(b, 1)), mul(comp(b, 0), comp(a, 1))))
}, vparam("x", 3), vparam("y", 3))

var (
	dotFuncs         = [5]expr.Func{nil, makeDot(1), makeDot(2), makeDot(3), makeDot(4)}
	lengthFuncs      = [5]expr.Func{nil, makeLength(1), makeLength(2), makeLength(3), makeLength(4)}
	distanceFuncs    = [5]expr.Func{nil, makeDistance(1), makeDistance(2), makeDistance(3), makeDistance(4)}
	normalizeFuncs   = [5]expr.Func{nil, makeNormalize(1), makeNormalize(2), makeNormalize(3), makeNormalize(4)}
	faceForwardFuncs = [5]expr.Func{nil, makeFaceForward(1), makeFaceForward(2), makeFaceForward(3), makeFaceForward(4)}
	reflectFuncs     = [5]expr.Func{nil, makeReflect(1), makeReflect(2), makeReflect(3), makeReflect(4)}
	refractFuncs     = [5]expr.Func{nil, makeRefract(1), makeRefract(2), makeRefract(3), makeRefract(4)}
)

func makeDot(size int) expr.Func {
	return newDerived("dot", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		a, b := args[0], args[1]
		if size == 1 {
			return mul(a, b)
		}
		sum := mul(comp(a, 0), comp(b, 0))
		for i := 1; i < size; i++ {
			sum = add(sum, mul(comp(a, i), comp(b, i)))
		}
		return sum
	}, vparam("x", size), vparam("y", size))
}

func makeLength(size int) expr.Func {
	return newDerived("length", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		return apply(Sqrt, apply(Dot(size), args[0], args[0]))
	}, vparam("x", size))
}

func makeDistance(size int) expr.Func {
	return newDerived("distance", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		return apply(Length(size), applyScalar(Sub, args[0], args[1]))
	}, vparam("p0", size), vparam("p1", size))
}

func makeNormalize(size int) expr.Func {
	return newDerived("normalize", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		x := args[0]
		return applyScalar(Mul, x, apply(InverseSqrt, apply(Dot(size), x, x)))
	}, vparam("x", size))
}

func makeFaceForward(size int) expr.Func {
	return newDerived("faceforward", func(_ *ExpandContext, args []expr.Expr) expr.Expr {
		n, i, nref := args[0], args[1], args[2]
		return cond(lessThan(apply(Dot(size), nref, i), constant(0)),
			n, applyScalar(Negate, n))
	}, vparam("n", size), vparam("i", size), vparam("nref", size))
}

func makeReflect(size int) expr.Func {
	return newDerived("reflect", func(ec *ExpandContext, args []expr.Expr) expr.Expr {
		i, n := args[0], args[1]
		dotNI := ec.Bind("dotNI", expr.Float, apply(Dot(size), n, i))
		// Implementations may associate the scaling either way.
		return applyScalar(Sub, i,
			alt(applyScalar(Mul, n, mul(constant(2), dotNI)),
				applyScalar(Mul, applyScalar(Mul, n, dotNI), constant(2))))
	}, vparam("i", size), vparam("n", size))
}

func makeRefract(size int) expr.Func {
	return newDerived("refract", func(ec *ExpandContext, args []expr.Expr) expr.Expr {
		i, n, eta := args[0], args[1], args[2]
		dotNI := ec.Bind("dotNI", expr.Float, apply(Dot(size), n, i))
		k := ec.Bind("k", expr.Float,
			sub(constant(1), mul(mul(eta, eta), sub(constant(1), mul(dotNI, dotNI)))))
		zero := constant(0)
		if size > 1 {
			zero = constantVec(size, 0)
		}
		return cond(lessThan(k, constant(0)),
			zero,
			applyScalar(Sub,
				applyScalar(Mul, i, eta),
				applyScalar(Mul, n, add(mul(eta, dotNI), apply(Sqrt, k)))))
	}, vparam("i", size), vparam("n", size), fparam("eta"))
}
