package value

import (
	"math"
	"strconv"

	"github.com/ardnew/yapl/yerr"
)

// Number is a JSON number that preserves the integer/float distinction of
// the source document, trying strconv.ParseInt before falling back to
// ParseFloat and remembering which branch succeeded.
type Number struct {
	isInt bool
	i     int64
	f     float64
	// literal holds the original source text when the Number was produced by
	// parsing a document, so re-serialization is lossless even for numbers
	// whose float64 round-trip would otherwise lose precision or trailing
	// zeros. Empty when the Number was produced by arithmetic.
	literal string
}

// NumberFromInt builds an integer Number.
func NumberFromInt(i int64) Number {
	return Number{isInt: true, i: i, f: float64(i)}
}

// NumberFromFloat builds a floating-point Number.
func NumberFromFloat(f float64) Number {
	return Number{isInt: false, f: f}
}

// NumberFromLiteral parses a JSON/YAML numeric literal, preserving whether it
// was written as an integer or a float, and remembering the literal text for
// lossless re-serialization.
func NumberFromLiteral(s string) (Number, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Number{isInt: true, i: i, f: float64(i), literal: s}, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, yerr.InvalidNumber(s)
	}

	return Number{isInt: false, f: f, literal: s}, nil
}

// IsInt reports whether the Number was written (or computed) as an integer.
func (n Number) IsInt() bool { return n.isInt }

// Int64 returns the integer value; valid only when IsInt is true.
func (n Number) Int64() int64 { return n.i }

// Float64 returns n as a finite float64, or InvalidNumber if it is NaN/±Inf
// (which a document number literal can never produce, but host arithmetic
// such as 1/0 as floats could).
func (n Number) Float64() (float64, error) {
	if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
		return 0, yerr.InvalidNumber(n.Literal())
	}

	return n.f, nil
}

// Literal returns the canonical source text for this Number: the original
// literal if parsed from a document, else a freshly formatted one.
func (n Number) Literal() string {
	if n.literal != "" {
		return n.literal
	}

	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}

	return FormatNumberLiteral(n.f)
}

// Equal implements structural equality for Numbers: two Numbers are equal
// only when they agree on int/float origin and on value — an int Number is
// never equal to a float Number even when numerically identical, so 1 and
// 1.0 compare unequal.
func (n Number) Equal(o Number) bool {
	if n.isInt != o.isInt {
		return false
	}

	if n.isInt {
		return n.i == o.i
	}

	return n.f == o.f
}

// Add returns the Number sum of a and b: the result is int if both operands
// are int, float otherwise.
func Add(a, b Number) Number {
	if a.isInt && b.isInt {
		return NumberFromInt(a.i + b.i)
	}

	af, _ := a.Float64()
	bf, _ := b.Float64()

	return NumberFromFloat(af + bf)
}

// Sub returns a - b, int-preserving like Add.
func Sub(a, b Number) Number {
	if a.isInt && b.isInt {
		return NumberFromInt(a.i - b.i)
	}

	af, _ := a.Float64()
	bf, _ := b.Float64()

	return NumberFromFloat(af - bf)
}

// Mul returns a * b, int-preserving like Add.
func Mul(a, b Number) Number {
	if a.isInt && b.isInt {
		return NumberFromInt(a.i * b.i)
	}

	af, _ := a.Float64()
	bf, _ := b.Float64()

	return NumberFromFloat(af * bf)
}

// Div returns a / b as a float Number: division always promotes to float,
// even when both operands are int. Returns DivisionByZero when b is exactly
// zero.
func Div(a, b Number) (Number, error) {
	bf, _ := b.Float64()
	if bf == 0 {
		return Number{}, yerr.ErrDivisionByZero
	}

	af, _ := a.Float64()

	return NumberFromFloat(af / bf), nil
}

// Less reports whether a < b.
func Less(a, b Number) bool {
	af, _ := a.Float64()
	bf, _ := b.Float64()

	return af < bf
}

// Greater reports whether a > b.
func Greater(a, b Number) bool {
	af, _ := a.Float64()
	bf, _ := b.Float64()

	return af > bf
}
