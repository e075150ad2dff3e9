package floatfmt

import "fmt"

// Precision is a shading-language precision qualifier.
type Precision uint8

const (
	// Lowp is the lowp qualifier: a fixed-point-like format with at
	// least 8 bits of fractional precision on [-2, 2].
	Lowp Precision = iota
	// Mediump is the mediump qualifier: at least a 10-bit significand
	// and exponent range [-14, 14].
	Mediump
	// Highp is the highp qualifier: single-precision floating point.
	Highp
)

// String returns the qualifier spelling.
func (p Precision) String() string {
	switch p {
	case Lowp:
		return "lowp"
	case Mediump:
		return "mediump"
	case Highp:
		return "highp"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

// ParsePrecision parses a qualifier spelling.
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "lowp":
		return Lowp, nil
	case "mediump":
		return Mediump, nil
	case "highp":
		return Highp, nil
	default:
		return 0, fmt.Errorf("unknown precision %q", s)
	}
}

// FormatFor returns the analysis format for a precision qualifier, as
// the conformance minimums constrain it. Highp is exact binary32 with
// optional subnormals and NaNs; mediump and lowp describe minimum grids
// that implementations are free to exceed.
func FormatFor(p Precision) Format {
	switch p {
	case Highp:
		return Format{
			MinExp:         -126,
			MaxExp:         127,
			FractionBits:   23,
			HasSubnormal:   Maybe,
			HasInf:         Yes,
			HasNaN:         Maybe,
			ExactPrecision: true,
		}
	case Mediump:
		return New(-13, 13, 9, false)
	case Lowp:
		f := New(0, 0, 7, false)
		f.HasSubnormal = Yes
		return f
	default:
		panic(fmt.Sprintf("floatfmt: invalid precision %d", uint8(p)))
	}
}
