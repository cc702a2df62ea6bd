package temporal

/*
arith_rat.go implements a lightweight, exact-rational Arithmetic
backend on math/big.Rat.
*/

import "math/big"

/*
RationalArithmetic implements [Arithmetic] through *[big.Rat]. It is
primarily useful for cross-checking other backends, as every rational
is exact regardless of its denominator.
*/
type RationalArithmetic struct{}

/*
Decimal returns the exact value whole + fraction × 10^-scale.
*/
func (RationalArithmetic) Decimal(whole, fraction int64, scale int32) ExactDecimal {
	r := new(big.Rat).SetInt64(whole)
	f := new(big.Rat).SetFrac(newBigInt(fraction), pow10(scale))
	return exactRat{r.Add(r, f)}
}

type exactRat struct {
	r *big.Rat
}

func (r exactRat) MulInt(n int64) ExactDecimal {
	p := new(big.Rat).SetInt64(n)
	return exactRat{p.Mul(p, r.r)}
}

func (r exactRat) ShiftToInteger(places int32) (ExactInteger, error) {
	s := new(big.Rat).SetInt(pow10(places))
	s.Mul(s, r.r)
	if !s.IsInt() {
		return nil, errorInexactDecimal
	}
	return bigInteger{new(big.Int).Set(s.Num())}, nil
}

func (r exactRat) String() string {
	if r.r.IsInt() {
		return r.r.Num().String()
	}
	// denominators divide a power of ten (10)
	return trimFraction(r.r.FloatString(18))
}

func pow10(n int32) *big.Int {
	if n < 0 {
		n = 0
	}
	return new(big.Int).Exp(newBigInt(10), newBigInt(int64(n)), nil)
}

func trimFraction(s string) string {
	if !cntns(s, ".") {
		return s
	}
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if s[i-1] == '.' {
		i--
	}
	return s[:i]
}
