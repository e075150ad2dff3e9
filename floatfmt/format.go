// Package floatfmt models floating-point formats by exponent range,
// significand width and platform capabilities. A Format turns exact real
// intervals into the set of values a conforming implementation may
// produce: directed rounding onto the representable grid, ULP sizing for
// error bands, and range conversion honoring subnormal, infinity and NaN
// support.
package floatfmt

import (
	"fmt"
	"math"

	"github.com/gogpu/glprec/interval"
)

// Choice is a tri-state answer for a format capability that the target
// platform may, must, or must not provide.
type Choice uint8

const (
	// No means the capability is absent.
	No Choice = iota
	// Maybe means the capability may or may not be present; analysis
	// admits both behaviors.
	Maybe
	// Yes means the capability is present.
	Yes
)

// String returns the name of the choice.
func (c Choice) String() string {
	switch c {
	case No:
		return "no"
	case Maybe:
		return "maybe"
	case Yes:
		return "yes"
	default:
		return fmt.Sprintf("Choice(%d)", uint8(c))
	}
}

// Format describes a floating-point format: the exponent range and
// significand width of the representable grid, plus tri-state
// capabilities of the platform it models.
type Format struct {
	// MinExp is the minimum normal exponent, inclusive.
	MinExp int

	// MaxExp is the maximum exponent, inclusive.
	MaxExp int

	// FractionBits is the number of stored significand bits.
	FractionBits int

	// HasSubnormal tells whether subnormal numbers are representable.
	HasSubnormal Choice

	// HasInf tells whether infinities are representable.
	HasInf Choice

	// HasNaN tells whether NaNs are representable.
	HasNaN Choice

	// ExactPrecision forbids the implementation from computing with
	// more precision than the format describes. When false, results
	// between grid points are also legal.
	ExactPrecision bool
}

// New returns a format with the given grid parameters and all
// capabilities set to Maybe.
func New(minExp, maxExp, fractionBits int, exact bool) Format {
	return Format{
		MinExp:         minExp,
		MaxExp:         maxExp,
		FractionBits:   fractionBits,
		HasSubnormal:   Maybe,
		HasInf:         Maybe,
		HasNaN:         Maybe,
		ExactPrecision: exact,
	}
}

// Float32 returns the IEEE binary32 format.
func Float32() Format {
	return Format{
		MinExp:         -126,
		MaxExp:         127,
		FractionBits:   23,
		HasSubnormal:   Yes,
		HasInf:         Yes,
		HasNaN:         Yes,
		ExactPrecision: true,
	}
}

// Float64 returns the IEEE binary64 format.
func Float64() Format {
	return Format{
		MinExp:         -1022,
		MaxExp:         1023,
		FractionBits:   52,
		HasSubnormal:   Yes,
		HasInf:         Yes,
		HasNaN:         Yes,
		ExactPrecision: true,
	}
}

// Float16 returns the IEEE binary16 format.
func Float16() Format {
	return Format{
		MinExp:         -14,
		MaxExp:         15,
		FractionBits:   10,
		HasSubnormal:   Yes,
		HasInf:         Yes,
		HasNaN:         Yes,
		ExactPrecision: true,
	}
}

// MaxValue returns the largest representable finite value,
// (2 - 2^-FractionBits) * 2^MaxExp.
func (f Format) MaxValue() float64 {
	return math.Ldexp(2-math.Ldexp(1, -f.FractionBits), f.MaxExp)
}

// fractExp splits x into significand and exponent with the significand
// normalized to [1, 2). fractExp(0) returns (0, -1); infinities and NaN
// pass through as the significand.
func fractExp(x float64) (frac float64, exp int) {
	frac, e := math.Frexp(x)
	return frac * 2, e - 1
}

func exponentOf(x float64) int {
	_, exp := fractExp(x)
	return exp
}

// exponentShift returns the distance between the nominal exponent and
// the exponent of the lowest significand bit of a number represented in
// this format. For normal numbers this is FractionBits; for subnormals
// it is smaller, and for magnitudes below the smallest quantum it is
// negative.
func (f Format) exponentShift(exp int) int {
	return f.FractionBits - max(f.MinExp-exp, 0)
}

// ULP returns the size of count units in the last place at x. The
// quantum is determined by x's binade: exact powers of two use the
// distance to the next lower value, zero and subnormal magnitudes use
// the smallest quantum, and out-of-range exponents clamp to the format's
// exponent range. NaN propagates. The scaling is an exact power-of-two
// operation, never an approximation that could undershoot.
func (f Format) ULP(x float64, count float64) float64 {
	frac, exp := fractExp(math.Abs(x))
	switch {
	case math.IsNaN(frac):
		return math.NaN()
	case math.IsInf(frac, 0):
		exp = f.MaxExp
	case frac == 1:
		// Harrison's ULP: at a binade boundary use the distance to
		// the next lower value.
		exp--
	case frac == 0:
		exp = f.MinExp
	}
	exp = min(max(exp, f.MinExp), f.MaxExp)
	return math.Ldexp(count, exp-f.FractionBits)
}

// Round rounds d onto the representable grid in the given direction;
// upward means toward +Inf. Magnitudes below the smallest quantum round
// to zero or the quantum, infinities and NaN pass through. Round does
// not clamp the exponent range; see RoundOut and Convert.
func (f Format) Round(d float64, upward bool) float64 {
	frac, exp := fractExp(d)
	shift := f.exponentShift(exp)
	shiftFrac := math.Ldexp(frac, shift)
	var roundFrac float64
	if upward {
		roundFrac = math.Ceil(shiftFrac)
	} else {
		roundFrac = math.Floor(shiftFrac)
	}
	return math.Ldexp(roundFrac, exp-shift)
}

// roundOut is Round with overflow handling: when roundUnderOverflow is
// set and d's exponent exceeds the format's range, rounding toward zero
// clamps to the largest finite value.
func (f Format) roundOut(d float64, upward, roundUnderOverflow bool) float64 {
	exp := exponentOf(d)
	if roundUnderOverflow && exp > f.MaxExp && upward == (d < 0) {
		if d < 0 {
			return -f.MaxValue()
		}
		return f.MaxValue()
	}
	return f.Round(d, upward)
}

// RoundOut rounds both interval bounds outward onto the grid, preserving
// the NaN flag. roundUnderOverflow should be true when the interval is
// the result of an arithmetic operation whose operands were all finite:
// an overflowing bound then clamps to the largest finite value instead
// of escaping to infinity.
func (f Format) RoundOut(iv interval.Interval, roundUnderOverflow bool) interval.Interval {
	ret := iv.NaNPart()
	if !iv.Empty() {
		ret = ret.Union(interval.Span(
			f.roundOut(iv.Lo(), false, roundUnderOverflow),
			f.roundOut(iv.Hi(), true, roundUnderOverflow)))
	}
	return ret
}

// convertValue maps one bound to the interval of representable values an
// implementation may return for it: directed grid rounding followed by
// range clamping through the capability tri-states. Maybe capabilities
// union both behaviors.
func (f Format) convertValue(v float64, upward bool) interval.Interval {
	r := f.Round(v, upward)
	if r == 0 || math.IsNaN(r) {
		return interval.Point(r)
	}
	sign := 1.0
	if math.Signbit(r) {
		sign = -1
	}
	mag := math.Abs(r)
	switch {
	case mag < math.Ldexp(1, f.MinExp):
		switch f.HasSubnormal {
		case Yes:
			return interval.Point(r)
		case No:
			return interval.Point(sign * 0)
		default:
			return interval.Span(sign*0, r)
		}
	case mag > f.MaxValue():
		// Overflow may clamp to the largest finite value even on
		// platforms with infinities, so only the No case is a point.
		if f.HasInf == No {
			return interval.Point(sign * f.MaxValue())
		}
		return interval.Span(sign*f.MaxValue(), sign*math.Inf(1))
	default:
		return interval.Point(r)
	}
}

// Convert returns the interval of values a conforming implementation may
// return when the exact result lies in iv. The NaN part maps through the
// HasNaN tri-state: if NaN might be unsupported, any value at all is a
// legal outcome for it. Bounds round outward onto the grid and clamp
// through HasSubnormal and HasInf. When the format does not require
// exact precision, the unrounded values remain legal and are unioned in.
func (f Format) Convert(iv interval.Interval) interval.Interval {
	ret := interval.Empty()
	tmp := iv
	if iv.HasNaN() {
		if f.HasNaN != No {
			ret = ret.Union(interval.NaN())
		}
		if f.HasNaN != Yes {
			tmp = interval.Unbounded(false)
		}
	}
	if tmp.Empty() {
		return ret
	}
	ret = ret.Union(f.convertValue(tmp.Lo(), false)).Union(f.convertValue(tmp.Hi(), true))
	if !f.ExactPrecision {
		ret = ret.Union(interval.Span(tmp.Lo(), tmp.Hi()))
	}
	return ret
}

// FloatToHex renders x as a hexadecimal significand and power-of-two
// exponent at this format's significand width.
func (f Format) FloatToHex(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	if math.IsInf(x, 0) {
		if x < 0 {
			return "-inf"
		}
		return "+inf"
	}
	if x == 0 {
		return "0.0"
	}
	frac, exp := fractExp(math.Abs(x))
	shift := f.exponentShift(exp)
	bits := uint64(math.Ldexp(frac, shift))
	whole := bits >> uint(f.FractionBits)
	fraction := bits & (1<<uint(f.FractionBits) - 1)
	exponent := exp + f.FractionBits - shift
	numDigits := (f.FractionBits + 3) / 4
	aligned := fraction << (uint(numDigits)*4 - uint(f.FractionBits))
	sign := ""
	if x < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s0x%d.%0*xp%d", sign, whole, numDigits, aligned, exponent)
}

// IntervalToHex renders an interval with FloatToHex bounds.
func (f Format) IntervalToHex(iv interval.Interval) string {
	switch {
	case iv.OnlyNaN():
		return "{ NaN }"
	case iv.Empty():
		return "{}"
	case iv == interval.Unbounded(true):
		return "<any>"
	case iv.Lo() == iv.Hi():
		if iv.HasNaN() {
			return "{ NaN, " + f.FloatToHex(iv.Lo()) + " }"
		}
		return "{ " + f.FloatToHex(iv.Lo()) + " }"
	}
	prefix := ""
	if iv.HasNaN() {
		prefix = "{ NaN } | "
	}
	return prefix + "[" + f.FloatToHex(iv.Lo()) + ", " + f.FloatToHex(iv.Hi()) + "]"
}
