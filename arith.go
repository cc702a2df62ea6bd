package temporal

/*
arith.go contains the exact (arbitrary-precision) arithmetic capability
consumed by Duration scaling. The capability is injected so that any
exact decimal implementation may be used.
*/

/*
ExactDecimal is qualified by any immutable, exact decimal value.
Implementations must never round.
*/
type ExactDecimal interface {
	// MulInt returns the exact product of the receiver and n.
	MulInt(n int64) ExactDecimal

	// ShiftToInteger returns the receiver multiplied by ten (10) to
	// the power of places as an ExactInteger. An error is returned if
	// the shifted value retains a non-zero fractional part.
	ShiftToInteger(places int32) (ExactInteger, error)

	// String returns the plain (non-exponent) decimal form.
	String() string
}

/*
ExactInteger is qualified by any immutable, exact integer value of
unbounded magnitude.
*/
type ExactInteger interface {
	// QuoRem returns the quotient and remainder of the receiver divided
	// by d, truncated toward zero. The remainder bears the sign of the
	// receiver. d must be non-zero.
	QuoRem(d int64) (q ExactInteger, r int64)

	// BitLen returns the number of bits in the minimal two's-complement
	// representation of the receiver, excluding the sign bit. Any value
	// within the int64 range, including its minimum, has a BitLen of
	// 63 or less.
	BitLen() int

	// Int64 returns the receiver as an int64. The result is undefined
	// if BitLen exceeds 63.
	Int64() int64

	// String returns the base-10 form.
	String() string
}

/*
Arithmetic is qualified by any factory of [ExactDecimal] values. See
[DecimalArithmetic] and [RationalArithmetic] for implementations.
*/
type Arithmetic interface {
	// Decimal returns the exact value whole + fraction × 10^-scale.
	Decimal(whole, fraction int64, scale int32) ExactDecimal
}

var defaultArithmetic Arithmetic = DecimalArithmetic{}

/*
DefaultArithmetic returns the [Arithmetic] used when none is supplied
by the caller, which is [DecimalArithmetic].
*/
func DefaultArithmetic() Arithmetic { return defaultArithmetic }

func pickArithmetic(arith []Arithmetic) Arithmetic {
	if len(arith) > 0 && arith[0] != nil {
		return arith[0]
	}
	return defaultArithmetic
}
