package temporal

/*
date.go implements the ISO calendar date and its conversions to and
from the linear epoch-day count.
*/

import "time"

const (
	// days per 400-year cycle
	daysPerCycle = 146097

	// days from 0000-01-01 to 1970-01-01
	days0000To1970 = (daysPerCycle * 5) - (30*365 + 7)
)

/*
Date implements an immutable, proleptic ISO-8601 calendar date with a
year in the range of [FieldYear].

Instances are only obtained through the constructors of this package,
all of which validate their input; the day is always within the true
length of the month for the year in question. The zero value is not
a valid date (see [Date.IsZero]).
*/
type Date struct {
	year  int32
	month Month
	day   int
}

var (
	// MinDate is the earliest supported date, -999999999-01-01.
	MinDate = Date{minYear, January, 1}

	// MaxDate is the latest supported date, +999999999-12-31.
	MaxDate = Date{maxYear, December, 31}

	// EpochDate is 1970-01-01, epoch day zero (0).
	EpochDate = Date{1970, January, 1}
)

/*
NewDate returns an instance of [Date] alongside an error following an
attempt to validate year, month and day.

Each field is first checked against its static bounds (see [FieldYear],
[FieldMonthOfYear] and [FieldDayOfMonth]), returning a *[RangeError] on
failure. The day is then checked against the true length of the month
for the year, returning an *[InvalidDateError] for combinations such
as April 31st or February 29th of a common year.

Optional [Constraint] instances are applied to the validated date.
*/
func NewDate(year, month, day int64, constraints ...Constraint[Date]) (d Date, err error) {
	debugEnter(newLItem(year, "year"), newLItem(month, "month"), newLItem(day, "day"))
	defer func() { debugExit(d, newLItem(err)) }()

	if year, err = CheckValidValue(FieldYear, year); err != nil {
		return
	}
	if month, err = CheckValidValue(FieldMonthOfYear, month); err != nil {
		return
	}
	if day, err = CheckValidValue(FieldDayOfMonth, day); err != nil {
		return
	}

	var _d Date
	if _d, err = create(year, Month(month), day); err == nil {
		err = applyDateConstraints(_d, constraints)
	}
	if err == nil {
		d = _d
	}

	return
}

/*
MustNewDate returns an instance of [Date] and panics if [NewDate]
returned an error during processing.
*/
func MustNewDate(year, month, day int64, constraints ...Constraint[Date]) Date {
	d, err := NewDate(year, month, day, constraints...)
	if err != nil {
		panic(err)
	}
	return d
}

/*
NewDateFromYearDay returns an instance of [Date] alongside an error
following an attempt to resolve the ordinal date formed by year and
dayOfYear.

A *[RangeError] is returned if year or dayOfYear fall outside of their
static bounds, and an *[InvalidDateError] is returned for day 366 of a
common year.
*/
func NewDateFromYearDay(year, dayOfYear int64, constraints ...Constraint[Date]) (d Date, err error) {
	debugEnter(newLItem(year, "year"), newLItem(dayOfYear, "dayOfYear"))
	defer func() { debugExit(d, newLItem(err)) }()

	if year, err = CheckValidValue(FieldYear, year); err != nil {
		return
	}
	if dayOfYear, err = CheckValidValue(FieldDayOfYear, dayOfYear); err != nil {
		return
	}

	leap := IsLeap(year)
	if dayOfYear == 366 && !leap {
		err = errorDayOfYear(year, dayOfYear)
		return
	}

	// A 31-day estimate never overshoots, and undershoots by at
	// most one month.
	moy := Month((dayOfYear-1)/31 + 1)
	monthEnd := int64(moy.FirstDayOfYear(leap) + moy.Length(leap) - 1)
	if dayOfYear > monthEnd {
		moy = moy.Plus(1)
	}
	dom := dayOfYear - int64(moy.FirstDayOfYear(leap)) + 1
	debugDate(newLItem(moy, "month"), newLItem(dom, "day"))

	var _d Date
	if _d, err = create(year, moy, dom); err == nil {
		err = applyDateConstraints(_d, constraints)
	}
	if err == nil {
		d = _d
	}

	return
}

/*
NewDateFromEpochDay returns an instance of [Date] alongside an error
following an attempt to convert epochDay, a count of days relative to
1970-01-01 (day zero), into a calendar date. A *[RangeError] is returned
if epochDay falls outside of the bounds of [FieldEpochDay].
*/
func NewDateFromEpochDay(epochDay int64) (d Date, err error) {
	debugEnter(newLItem(epochDay, "epochDay"))
	defer func() { debugExit(d, newLItem(err)) }()

	if _, err = CheckValidValue(FieldEpochDay, epochDay); err != nil {
		return
	}

	// shift to 0000-03-01 so that the leap day falls at the
	// end of each four year cycle
	zeroDay := epochDay + days0000To1970 - 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPerCycle - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * daysPerCycle
	}

	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust

	marchDoy0 := doyEst
	marchMonth0 := (marchDoy0*5 + 2) / 153
	month := (marchMonth0+2)%12 + 1
	dom := marchDoy0 - (marchMonth0*306+5)/10 + 1
	yearEst += marchMonth0 / 10

	if yearEst, err = CheckValidValue(FieldYear, yearEst); err == nil {
		d = Date{int32(yearEst), Month(month), int(dom)}
	}

	return
}

/*
DateFromStd returns the [Date] denoted by the year, month and day of t
within t's own location.
*/
func DateFromStd(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return NewDate(int64(y), int64(m), int64(d))
}

/*
create returns a [Date] following the final cross-field check of the
day against the true length of month in year. All fields have already
passed their static bounds checks.
*/
func create(year int64, month Month, day int64) (Date, error) {
	if day > 28 && day > int64(month.Length(IsLeap(year))) {
		return Date{}, errorDayOfMonth(year, month, day)
	}
	return Date{int32(year), month, int(day)}, nil
}

func applyDateConstraints(d Date, constraints []Constraint[Date]) (err error) {
	if len(constraints) > 0 {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(d)
	}
	return
}

/*
resolvePreviousValid returns the date formed by year, month and day,
clamping day to the last valid day of the month.
*/
func resolvePreviousValid(year int64, month Month, day int) Date {
	if l := month.Length(IsLeap(year)); day > l {
		day = l
	}
	return Date{int32(year), month, day}
}

/*
IsZero returns a Boolean value indicative of the receiver instance
being the (invalid) zero value rather than a constructed date.
*/
func (r Date) IsZero() bool { return r.month == 0 }

/*
Year returns the year of the receiver instance.
*/
func (r Date) Year() Year { return Year(r.year) }

/*
Month returns the month of the receiver instance.
*/
func (r Date) Month() Month { return r.month }

/*
Day returns the day-of-month of the receiver instance.
*/
func (r Date) Day() int { return r.day }

/*
Fields returns the year, month ordinal and day-of-month of the receiver
instance.
*/
func (r Date) Fields() (year, month, day int64) {
	return int64(r.year), int64(r.month), int64(r.day)
}

/*
IsLeapYear returns a Boolean value indicative of the receiver instance
falling within a leap year.
*/
func (r Date) IsLeapYear() bool { return IsLeap(int64(r.year)) }

/*
LengthOfMonth returns the number of days in the month of the receiver
instance.
*/
func (r Date) LengthOfMonth() int { return r.month.Length(r.IsLeapYear()) }

/*
LengthOfYear returns the number of days in the year of the receiver
instance.
*/
func (r Date) LengthOfYear() int { return YearLength(int64(r.year)) }

/*
DayOfYear returns the one-based day-of-year of the receiver instance.
*/
func (r Date) DayOfYear() int {
	return r.month.FirstDayOfYear(r.IsLeapYear()) + r.day - 1
}

/*
Weekday returns the day of the week upon which the receiver instance
falls.
*/
func (r Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday
	return time.Weekday(floorMod(r.EpochDay()+4, 7))
}

/*
EpochDay returns the number of days between 1970-01-01 and the receiver
instance. Dates prior to 1970 produce negative values.
*/
func (r Date) EpochDay() int64 {
	y := int64(r.year)
	m := int64(r.month)

	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(r.day) - 1
	if m > 2 {
		total--
		if !r.IsLeapYear() {
			total--
		}
	}

	return total - days0000To1970
}

/*
DaysUntil returns the signed number of days from the receiver instance
to other.
*/
func (r Date) DaysUntil(other Date) int64 {
	return other.EpochDay() - r.EpochDay()
}

/*
PlusDays returns a copy of the receiver instance with the specified
number of days added. A negative value moves backwards in time.
*/
func (r Date) PlusDays(days int64) (Date, error) {
	if days == 0 {
		return r, nil
	}
	ed, ok := addExact(r.EpochDay(), days)
	if !ok {
		return Date{}, errorOverflow("Date.PlusDays", r, " + ", days)
	}
	return NewDateFromEpochDay(ed)
}

/*
MinusDays returns a copy of the receiver instance with the specified
number of days subtracted.
*/
func (r Date) MinusDays(days int64) (Date, error) {
	ed, ok := subtractExact(r.EpochDay(), days)
	if !ok {
		return Date{}, errorOverflow("Date.MinusDays", r, " - ", days)
	}
	return NewDateFromEpochDay(ed)
}

/*
PlusMonths returns a copy of the receiver instance with the specified
number of months added. Where the day-of-month would be invalid in the
resulting month, it is clamped to the last valid day, e.g.: adding one
(1) month to 2023-01-31 yields 2023-02-28.
*/
func (r Date) PlusMonths(months int64) (Date, error) {
	if months == 0 {
		return r, nil
	}

	monthCount := int64(r.year)*12 + int64(r.month-1)
	calc, ok := addExact(monthCount, months)
	if !ok {
		return Date{}, errorOverflow("Date.PlusMonths", r, " + ", months)
	}

	year, err := CheckValidValue(FieldYear, floorDiv(calc, 12))
	if err != nil {
		return Date{}, err
	}
	return resolvePreviousValid(year, Month(floorMod(calc, 12)+1), r.day), nil
}

/*
MinusMonths returns a copy of the receiver instance with the specified
number of months subtracted. See [Date.PlusMonths].
*/
func (r Date) MinusMonths(months int64) (Date, error) {
	if months == -months && months != 0 {
		// math.MinInt64 cannot be negated; no valid result exists
		return Date{}, errorOverflow("Date.MinusMonths", r, " - ", months)
	}
	return r.PlusMonths(-months)
}

/*
PlusYears returns a copy of the receiver instance with the specified
number of years added. February 29th is clamped to February 28th when
the resulting year is not a leap year.
*/
func (r Date) PlusYears(years int64) (Date, error) {
	if years == 0 {
		return r, nil
	}

	y, ok := addExact(int64(r.year), years)
	if !ok {
		return Date{}, errorOverflow("Date.PlusYears", r, " + ", years)
	}
	year, err := CheckValidValue(FieldYear, y)
	if err != nil {
		return Date{}, err
	}
	return resolvePreviousValid(year, r.month, r.day), nil
}

/*
MinusYears returns a copy of the receiver instance with the specified
number of years subtracted. See [Date.PlusYears].
*/
func (r Date) MinusYears(years int64) (Date, error) {
	if years == -years && years != 0 {
		return Date{}, errorOverflow("Date.MinusYears", r, " - ", years)
	}
	return r.PlusYears(-years)
}

/*
WithDayOfMonth returns a copy of the receiver instance with the
day-of-month replaced by day.
*/
func (r Date) WithDayOfMonth(day int64) (Date, error) {
	if int64(r.day) == day {
		return r, nil
	}
	return NewDate(int64(r.year), int64(r.month), day)
}

/*
WithDayOfYear returns the date on the specified day-of-year within the
year of the receiver instance.
*/
func (r Date) WithDayOfYear(dayOfYear int64) (Date, error) {
	if int64(r.DayOfYear()) == dayOfYear {
		return r, nil
	}
	return NewDateFromYearDay(int64(r.year), dayOfYear)
}

/*
Std returns the [time.Time] instant of midnight UTC upon the receiver
instance.
*/
func (r Date) Std() time.Time {
	return time.Date(int(r.year), r.month.Std(), r.day, 0, 0, 0, 0, time.UTC)
}

/*
CompareDates returns a negative integer, zero or a positive integer as a
is before, equal to or after b. Fields are compared independently in
(year, month, day) order. The function is suitable for use with
[slices.SortFunc].
*/
func CompareDates(a, b Date) int {
	if c := cmpInt(int64(a.year), int64(b.year)); c != 0 {
		return c
	}
	if c := cmpInt(int64(a.month), int64(b.month)); c != 0 {
		return c
	}
	return cmpInt(int64(a.day), int64(b.day))
}

/*
Compare returns the result of [CompareDates] for the receiver instance
and other.
*/
func (r Date) Compare(other Date) int { return CompareDates(r, other) }

/*
Equal returns a Boolean value indicative of the receiver instance and
other denoting the same date.
*/
func (r Date) Equal(other Date) bool { return r == other }

/*
IsBefore returns true if the receiver instance falls before other.
*/
func (r Date) IsBefore(other Date) bool { return CompareDates(r, other) < 0 }

/*
IsAfter returns true if the receiver instance falls after other.
*/
func (r Date) IsAfter(other Date) bool { return CompareDates(r, other) > 0 }

/*
String returns the ISO-8601 extended representation of the receiver
instance, e.g.: "2024-02-29". Years beyond 9999 carry a leading "+".
*/
func (r Date) String() string {
	if r.IsZero() {
		return "<zero Date>"
	}

	bld := newStrBuilder()
	if r.year > 9999 {
		bld.WriteString("+")
	}
	bld.WriteString(padInt(int64(r.year), 4))
	bld.WriteString("-")
	bld.WriteString(padInt(int64(r.month), 2))
	bld.WriteString("-")
	bld.WriteString(padInt(int64(r.day), 2))

	return bld.String()
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
