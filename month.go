package temporal

/*
month.go contains the Month enumeration and its static lookup table.
*/

import "time"

/*
Month implements a month-of-year within the ISO calendar. Only the
twelve (12) constants [January] through [December] are valid; the
zero value is not a month.
*/
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

/*
monthTable is indexed by ordinal. length is the common-year length;
firstDay is the common-year, one-based day-of-year of the first day
of the month. Leap adjustments are applied by the accessors.
*/
var monthTable = [13]struct {
	name     string
	length   int
	firstDay int
}{
	{"%!Month(0)", 0, 0},
	{"January", 31, 1},
	{"February", 28, 32},
	{"March", 31, 60},
	{"April", 30, 91},
	{"May", 31, 121},
	{"June", 30, 152},
	{"July", 31, 182},
	{"August", 31, 213},
	{"September", 30, 244},
	{"October", 31, 274},
	{"November", 30, 305},
	{"December", 31, 335},
}

/*
NewMonth returns the [Month] whose ordinal is m alongside an error,
which is a *[RangeError] when m falls outside of 1 through 12.
*/
func NewMonth(m int64) (Month, error) {
	v, err := CheckValidValue(FieldMonthOfYear, m)
	return Month(v), err
}

/*
MonthFromStd returns the [Month] equivalent of the [time.Month] m.
*/
func MonthFromStd(m time.Month) (Month, error) { return NewMonth(int64(m)) }

/*
IsValid returns a Boolean value indicative of the receiver instance
being one of the twelve (12) month constants.
*/
func (r Month) IsValid() bool { return January <= r && r <= December }

/*
Value returns the ordinal of the receiver instance, 1 through 12.
*/
func (r Month) Value() int { return int(r) }

/*
Std returns the [time.Month] equivalent of the receiver instance.
*/
func (r Month) Std() time.Month { return time.Month(r) }

/*
String returns the English name of the receiver instance.
*/
func (r Month) String() string {
	if !r.IsValid() {
		return "%!Month(" + itoa(int(r)) + ")"
	}
	return monthTable[r].name
}

/*
Length returns the number of days in the receiver instance, which
depends upon leap only for [February].
*/
func (r Month) Length(leap bool) int {
	if r == February && leap {
		return 29
	}
	return monthTable[r.index()].length
}

/*
MinLength returns the shortest length the receiver instance may take.
*/
func (r Month) MinLength() int { return monthTable[r.index()].length }

/*
MaxLength returns the longest length the receiver instance may take.
*/
func (r Month) MaxLength() int { return r.Length(true) }

/*
FirstDayOfYear returns the one-based day-of-year upon which the receiver
instance begins. Months after [February] are shifted by one (1) day in
leap years.
*/
func (r Month) FirstDayOfYear(leap bool) int {
	fd := monthTable[r.index()].firstDay
	if leap && r > February {
		fd++
	}
	return fd
}

/*
FirstMonthOfQuarter returns the first month of the quarter in which
the receiver instance falls: [January], [April], [July] or [October].
*/
func (r Month) FirstMonthOfQuarter() Month {
	if !r.IsValid() {
		return 0
	}
	return Month(((int(r)-1)/3)*3 + 1)
}

/*
Plus returns the month which is months after the receiver instance,
wrapping around the end of the year. Negative values of months are
permitted. An invalid receiver yields the zero [Month].
*/
func (r Month) Plus(months int64) Month {
	if !r.IsValid() {
		return 0
	}
	amount := int(months % 12)
	return Month((int(r)-1+amount+12)%12 + 1)
}

/*
Minus returns the month which is months before the receiver instance,
wrapping around the start of the year. Negative values of months are
permitted.
*/
func (r Month) Minus(months int64) Month {
	return r.Plus(-(months % 12))
}

/*
index returns the receiver as a table index, mapping invalid months
onto the zero row.
*/
func (r Month) index() Month {
	if !r.IsValid() {
		return 0
	}
	return r
}
