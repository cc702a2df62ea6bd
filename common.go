package temporal

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                  = errors.New
	itoa       func(int) string                    = strconv.Itoa
	fmtInt     func(int64, int) string             = strconv.FormatInt
	lc         func(string) string                 = strings.ToLower
	uc         func(string) string                 = strings.ToUpper
	split      func(string, string) []string       = strings.Split
	join       func([]string, string) string       = strings.Join
	trimS      func(string) string                 = strings.TrimSpace
	hasPfx     func(string, string) bool           = strings.HasPrefix
	cntns      func(string, string) bool           = strings.Contains
	lidx       func(string, string) int            = strings.LastIndex
	replaceAll func(string, string, string) string = strings.ReplaceAll
	streqf     func(string, string) bool           = strings.EqualFold
	strrpt     func(string, int) string            = strings.Repeat
	newBigInt  func(int64) *big.Int                = big.NewInt
	atoi       func(string) (int, error)           = strconv.Atoi
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
floorDiv returns the largest integer less than or equal to the
algebraic quotient of x and y. Unlike the native "/" operator,
which truncates toward zero, the result is rounded toward negative
infinity. y must not be zero.
*/
func floorDiv[T constraints.Signed](x, y T) T {
	q := x / y
	// round down when the signs differ and the division is inexact
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

/*
floorMod returns the floor modulus of x and y, which always bears
the sign of y. For a positive y the result is within [0, y).
*/
func floorMod[T constraints.Signed](x, y T) T {
	m := x % y
	if m != 0 && ((m < 0) != (y < 0)) {
		m += y
	}
	return m
}

/*
addExact returns the sum of x and y alongside a Boolean value
indicative of the sum having been computed without wrapping
around the 64-bit signed range.
*/
func addExact(x, y int64) (int64, bool) {
	r := x + y
	// overflow iff both operands share a sign the result lacks
	if ((x ^ r) & (y ^ r)) < 0 {
		return 0, false
	}
	return r, true
}

func subtractExact(x, y int64) (int64, bool) {
	r := x - y
	if ((x ^ y) & (x ^ r)) < 0 {
		return 0, false
	}
	return r, true
}

/*
multiplyExact returns the product of x and y alongside a Boolean
value indicative of the product having been computed without
wrapping around the 64-bit signed range.
*/
func multiplyExact(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	r := x * y
	if (x == -1 && y == math.MinInt64) ||
		(y == -1 && x == math.MinInt64) ||
		r/y != x {
		return 0, false
	}
	return r, true
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

/*
padInt returns the base-10 string form of n, left-padded with
zeroes to at least width digits. The sign, if any, precedes the
padding.
*/
func padInt(n int64, width int) string {
	neg := n < 0
	digits := fmtInt(abs64(n), 10)
	if n == math.MinInt64 {
		digits = digits[1:]
	}
	if len(digits) < width {
		digits = strrpt("0", width-len(digits)) + digits
	}
	if neg {
		digits = "-" + digits
	}
	return digits
}

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}
