// Package interval implements closed real intervals over float64 with an
// explicit NaN flag. Intervals are the value domain of the precision
// oracle: every analysis result is an interval guaranteed to contain all
// values a conforming implementation may produce.
package interval

import (
	"fmt"
	"math"
)

// Interval is a closed range of real numbers together with a flag that
// records whether NaN is among the possible values. The empty interval is
// represented as [+Inf, -Inf]. Interval is an immutable value type; all
// methods return new values.
type Interval struct {
	hasNaN bool
	lo     float64
	hi     float64
}

// Empty returns the interval containing no values.
func Empty() Interval {
	return Interval{lo: math.Inf(1), hi: math.Inf(-1)}
}

// NaN returns the interval whose only possible value is NaN.
func NaN() Interval {
	return Interval{hasNaN: true, lo: math.Inf(1), hi: math.Inf(-1)}
}

// Point returns the interval containing exactly v. A NaN argument yields
// the NaN-only interval.
func Point(v float64) Interval {
	if math.IsNaN(v) {
		return NaN()
	}
	return Interval{lo: v, hi: v}
}

// Span returns the smallest interval containing both a and b. Either
// argument may be NaN, which sets the NaN flag instead of a bound.
func Span(a, b float64) Interval {
	return Point(a).Union(Point(b))
}

// Bounds returns the interval [lo, hi] with the given NaN flag. It panics
// if lo > hi or either bound is NaN; malformed bounds are a programming
// error, not a data condition.
func Bounds(lo, hi float64, hasNaN bool) Interval {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		panic(fmt.Sprintf("interval: malformed bounds [%v, %v]", lo, hi))
	}
	return Interval{hasNaN: hasNaN, lo: lo, hi: hi}
}

// Unbounded returns the interval of all real values. If nan is true the
// result admits NaN as well and therefore contains every possible value.
func Unbounded(nan bool) Interval {
	return Interval{hasNaN: nan, lo: math.Inf(-1), hi: math.Inf(1)}
}

// Lo returns the lower bound. It is +Inf for the empty interval.
func (i Interval) Lo() float64 { return i.lo }

// Hi returns the upper bound. It is -Inf for the empty interval.
func (i Interval) Hi() float64 { return i.hi }

// HasNaN reports whether NaN is among the possible values.
func (i Interval) HasNaN() bool { return i.hasNaN }

// Empty reports whether the range part contains no values. The interval
// may still admit NaN.
func (i Interval) Empty() bool { return i.lo > i.hi }

// OnlyNaN reports whether NaN is the sole possible value.
func (i Interval) OnlyNaN() bool { return i.hasNaN && i.Empty() }

// Finite reports whether both bounds are finite. The empty interval is
// not finite.
func (i Interval) Finite() bool {
	return !math.IsInf(i.lo, 0) && !math.IsInf(i.hi, 0)
}

// Ordinary reports whether the interval is non-empty, finite and free of
// NaN. Fast paths in function models require ordinary operands.
func (i Interval) Ordinary() bool {
	return !i.hasNaN && !i.Empty() && i.Finite()
}

// Midpoint returns the midpoint of the range part.
func (i Interval) Midpoint() float64 { return 0.5 * (i.hi + i.lo) }

// Length returns the length of the range part.
func (i Interval) Length() float64 { return i.hi - i.lo }

// NaNPart returns the interval retaining only the NaN component of i: the
// range part is empty.
func (i Interval) NaNPart() Interval {
	return Interval{hasNaN: i.hasNaN, lo: math.Inf(1), hi: math.Inf(-1)}
}

// WithNaN returns a copy of i that also admits NaN.
func (i Interval) WithNaN() Interval {
	i.hasNaN = true
	return i
}

// Contains reports whether v is among the possible values of i.
func (i Interval) Contains(v float64) bool {
	if math.IsNaN(v) {
		return i.hasNaN
	}
	return i.lo <= v && v <= i.hi
}

// ContainsInterval reports whether every possible value of other is a
// possible value of i.
func (i Interval) ContainsInterval(other Interval) bool {
	if other.hasNaN && !i.hasNaN {
		return false
	}
	if other.Empty() {
		return true
	}
	return i.lo <= other.lo && other.hi <= i.hi
}

// Intersects reports whether i and other share at least one possible
// value.
func (i Interval) Intersects(other Interval) bool {
	if i.hasNaN && other.hasNaN {
		return true
	}
	if i.Empty() || other.Empty() {
		return false
	}
	return i.lo <= other.hi && other.lo <= i.hi
}

// Union returns the smallest interval containing all possible values of
// both i and other.
func (i Interval) Union(other Interval) Interval {
	return Interval{
		hasNaN: i.hasNaN || other.hasNaN,
		lo:     math.Min(i.lo, other.lo),
		hi:     math.Max(i.hi, other.hi),
	}
}

// Intersection returns the interval of values possible in both i and
// other.
func (i Interval) Intersection(other Interval) Interval {
	return Interval{
		hasNaN: i.hasNaN && other.hasNaN,
		lo:     math.Max(i.lo, other.lo),
		hi:     math.Min(i.hi, other.hi),
	}
}

// Neg returns the negation {-x : x in i}.
func (i Interval) Neg() Interval {
	return Interval{hasNaN: i.hasNaN, lo: -i.hi, hi: -i.lo}
}

// Apply1 returns the union of f evaluated at the endpoints of i. NaN
// results and a NaN flag on i carry into the result's NaN flag. The
// result is a sound image only when f is monotone on i; interior extrema
// are the caller's responsibility.
func (i Interval) Apply1(f func(float64) float64) Interval {
	if i.Empty() {
		return i.NaNPart()
	}
	r := Point(f(i.lo)).Union(Point(f(i.hi)))
	if i.hasNaN {
		r.hasNaN = true
	}
	return r
}

// Apply2 evaluates f at the four corners of i x other and unions the
// results. The same monotonicity caveat as Apply1 applies, per argument.
func (i Interval) Apply2(other Interval, f func(x, y float64) float64) Interval {
	if i.Empty() || other.Empty() {
		return Interval{hasNaN: i.hasNaN || other.hasNaN, lo: math.Inf(1), hi: math.Inf(-1)}
	}
	r := Point(f(i.lo, other.lo)).
		Union(Point(f(i.lo, other.hi))).
		Union(Point(f(i.hi, other.lo))).
		Union(Point(f(i.hi, other.hi)))
	if i.hasNaN || other.hasNaN {
		r.hasNaN = true
	}
	return r
}

// Add returns the float64 interval sum. Corners adding opposite
// infinities contribute NaN.
func (i Interval) Add(other Interval) Interval {
	return i.Apply2(other, func(x, y float64) float64 { return x + y })
}

// Sub returns the float64 interval difference.
func (i Interval) Sub(other Interval) Interval {
	return i.Apply2(other, func(x, y float64) float64 { return x - y })
}

// Mul returns the float64 interval product. The four corner products
// bound the result; corners multiplying zero by an infinity contribute
// NaN.
func (i Interval) Mul(other Interval) Interval {
	return i.Apply2(other, func(x, y float64) float64 { return x * y })
}

// Div returns the float64 interval quotient. A denominator spanning zero
// makes the result unbounded, and NaN as well when the numerator also
// spans zero.
func (i Interval) Div(other Interval) Interval {
	r := i.Apply2(other, func(x, y float64) float64 { return x / y })
	if !i.Empty() && !other.Empty() && other.Contains(0) {
		if i.Contains(0) {
			r.hasNaN = true
		}
		if i.lo < 0 || i.hi > 0 {
			r = r.Union(Unbounded(false))
		}
	}
	return r
}

// String renders the interval: "()" when empty, "{ NaN }" when NaN-only,
// "[lo, hi]" for plain ranges and "{ NaN, lo, hi }" when NaN is admitted
// alongside a range.
func (i Interval) String() string {
	switch {
	case i.OnlyNaN():
		return "{ NaN }"
	case i.Empty():
		return "()"
	case i.hasNaN:
		return fmt.Sprintf("{ NaN, %g, %g }", i.lo, i.hi)
	default:
		return fmt.Sprintf("[%g, %g]", i.lo, i.hi)
	}
}
