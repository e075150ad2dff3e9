package precision

import (
	"math"
	"math/rand"

	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
)

// specialScalars are the values every sweep checks before drawing
// randomly: zeros, units, halves, the format extremes and the smallest
// normal magnitude.
func specialScalars(f floatfmt.Format) []float64 {
	least := math.Ldexp(1, f.MinExp)
	return []float64{
		0, math.Copysign(0, -1),
		1, -1,
		0.5, -0.5,
		f.MaxValue(), -f.MaxValue(),
		least, -least,
	}
}

// GenerateSamples draws n input tuples for the program,
// deterministically for a given seed. The first tuples take the
// format's special values on every component; the rest draw random
// magnitudes spread uniformly across the exponent range, so small and
// large inputs are equally represented.
func GenerateSamples(prog *Program, f floatfmt.Format, n int, seed int64) []Sample {
	rng := rand.New(rand.NewSource(seed))
	specials := specialScalars(f)
	samples := make([]Sample, n)
	for i := range samples {
		s := make(Sample, len(prog.Inputs))
		for j, in := range prog.Inputs {
			s[j] = samplePoint(rng, f, specials, i, in.Type)
		}
		samples[i] = s
	}
	return samples
}

func samplePoint(rng *rand.Rand, f floatfmt.Format, specials []float64, i int, t expr.Type) expr.Point {
	scalar := func() float64 {
		if i < len(specials) {
			return specials[i]
		}
		return randomScalar(rng, f)
	}
	switch {
	case t.IsVector():
		p := make(expr.VectorPoint, t.Size())
		for k := range p {
			p[k] = scalar()
		}
		return p
	case t.IsMatrix():
		p := make(expr.MatrixPoint, t.Cols())
		for c := range p {
			p[c] = make([]float64, t.Rows())
			for r := range p[c] {
				p[c][r] = scalar()
			}
		}
		return p
	default:
		return expr.ScalarPoint(scalar())
	}
}

// randomScalar draws a representable magnitude: a uniform significand
// at a uniform exponent, clamped into the format's finite range.
func randomScalar(rng *rand.Rand, f floatfmt.Format) float64 {
	exp := f.MinExp + rng.Intn(f.MaxExp-f.MinExp+1)
	v := math.Ldexp(1+rng.Float64(), exp)
	if v > f.MaxValue() {
		v = f.MaxValue()
	}
	if rng.Intn(2) == 1 {
		v = -v
	}
	return v
}
