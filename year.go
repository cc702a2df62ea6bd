package temporal

/*
year.go contains the proleptic leap year rule and the Year type.
*/

/*
IsLeap returns a Boolean value indicative of year being a leap year
within the proleptic ISO calendar: divisible by four (4), and either
not divisible by one hundred (100) or divisible by four hundred (400).

The rule is applied uniformly to every year, past and future, without
regard for historical calendar reforms. Year zero (0) is a leap year.
*/
func IsLeap(year int64) bool {
	return (year&3) == 0 && (year%100 != 0 || year%400 == 0)
}

/*
YearLength returns the number of days in year: 366 for a leap year,
365 otherwise.
*/
func YearLength(year int64) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

/*
Year implements a proleptic ISO year within the bounds of [FieldYear].
Instances carry no other state.

The zero value denotes year 0 (1 BCE), which is valid.
*/
type Year int32

const (
	MinYear Year = minYear // -999,999,999
	MaxYear Year = maxYear // +999,999,999
)

/*
NewYear returns an instance of [Year] alongside an error following an
attempt to validate year against the bounds of [FieldYear] and any
optional [Constraint] instances.
*/
func NewYear(year int64, constraints ...Constraint[Year]) (Year, error) {
	y, err := CheckValidValue(FieldYear, year)
	if err == nil && len(constraints) > 0 {
		var group ConstraintGroup[Year] = constraints
		err = group.Constrain(Year(y))
	}
	if err != nil {
		return 0, err
	}
	return Year(y), nil
}

/*
MustNewYear returns an instance of [Year] and panics if [NewYear]
returned an error during processing of year.
*/
func MustNewYear(year int64, constraints ...Constraint[Year]) Year {
	y, err := NewYear(year, constraints...)
	if err != nil {
		panic(err)
	}
	return y
}

/*
Value returns the integer value of the receiver instance.
*/
func (r Year) Value() int64 { return int64(r) }

/*
IsLeap returns a Boolean value indicative of the receiver instance
being a leap year. See [IsLeap] for the rule.
*/
func (r Year) IsLeap() bool { return IsLeap(int64(r)) }

/*
Length returns the number of days in the receiver instance.
*/
func (r Year) Length() int { return YearLength(int64(r)) }

/*
IsValidMonthDay returns a Boolean value indicative of the given month
and day forming a valid date within the receiver instance. February
29th is only valid within leap years.
*/
func (r Year) IsValidMonthDay(month Month, day int) bool {
	return month.IsValid() && 1 <= day && day <= month.Length(r.IsLeap())
}

/*
AtDay returns the [Date] which falls on the specified day-of-year of
the receiver instance. See [NewDateFromYearDay].
*/
func (r Year) AtDay(dayOfYear int64) (Date, error) {
	return NewDateFromYearDay(int64(r), dayOfYear)
}

/*
AtMonthDay returns the [Date] formed from the receiver instance and the
given month and day. See [NewDate].
*/
func (r Year) AtMonthDay(month Month, day int64) (Date, error) {
	return NewDate(int64(r), int64(month), day)
}

/*
Plus returns a copy of the receiver instance with the specified number
of years added. A *[RangeError] is returned if the result falls outside
of the bounds of [FieldYear], or an *[OverflowError] if the sum wraps.
*/
func (r Year) Plus(years int64) (Year, error) {
	if years == 0 {
		return r, nil
	}
	y, ok := addExact(int64(r), years)
	if !ok {
		return 0, errorOverflow("Year.Plus", r, " + ", years)
	}
	return NewYear(y)
}

/*
Minus returns a copy of the receiver instance with the specified number
of years subtracted. A *[RangeError] is returned if the result falls
outside of the bounds of [FieldYear].
*/
func (r Year) Minus(years int64) (Year, error) {
	y, ok := subtractExact(int64(r), years)
	if !ok {
		return 0, errorOverflow("Year.Minus", r, " - ", years)
	}
	return NewYear(y)
}

/*
Compare returns a negative integer, zero or a positive integer as the
receiver instance is less than, equal to or greater than other.
*/
func (r Year) Compare(other Year) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	}
	return 0
}

/*
String returns the base-10 string representation of the receiver
instance.
*/
func (r Year) String() string { return fmtInt(int64(r), 10) }
