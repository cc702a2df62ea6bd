package temporal

/*
arith_dec.go implements the default Arithmetic backend through the
shopspring decimal type, with math/big integers for the integral
results.
*/

import (
	"math/big"

	"github.com/shopspring/decimal"
)

/*
DecimalArithmetic implements [Arithmetic] through the arbitrary
precision decimal.Decimal type. It is stateless and safe for
concurrent use.
*/
type DecimalArithmetic struct{}

/*
Decimal returns the exact value whole + fraction × 10^-scale.
*/
func (DecimalArithmetic) Decimal(whole, fraction int64, scale int32) ExactDecimal {
	d := decimal.NewFromInt(whole).Add(decimal.New(fraction, -scale))
	debugArith(newLItem(d.String(), "decimal"))
	return exactDec{d}
}

type exactDec struct {
	d decimal.Decimal
}

func (r exactDec) MulInt(n int64) ExactDecimal {
	return exactDec{r.d.Mul(decimal.NewFromInt(n))}
}

func (r exactDec) ShiftToInteger(places int32) (ExactInteger, error) {
	s := r.d.Shift(places)
	if !s.IsInteger() {
		return nil, errorInexactDecimal
	}
	// BigInt truncates, which is exact for an integral value
	return bigInteger{s.BigInt()}, nil
}

func (r exactDec) String() string { return r.d.String() }

/*
bigInteger implements [ExactInteger] through *[big.Int]. Instances are
never mutated once constructed.
*/
type bigInteger struct {
	i *big.Int
}

func (r bigInteger) QuoRem(d int64) (ExactInteger, int64) {
	q, m := new(big.Int).QuoRem(r.i, newBigInt(d), new(big.Int))
	return bigInteger{q}, m.Int64()
}

/*
BitLen counts two's-complement bits less the sign, so that negative
powers of two (2) need one bit fewer than their absolute value.
*/
func (r bigInteger) BitLen() int {
	if r.i.Sign() < 0 {
		// ^x == |x|-1
		return new(big.Int).Not(r.i).BitLen()
	}
	return r.i.BitLen()
}

func (r bigInteger) Int64() int64   { return r.i.Int64() }
func (r bigInteger) String() string { return r.i.String() }
