package temporal

/*
err.go contains error types, constructors and literals used frequently
throughout this package.
*/

import (
	"fmt"
	"sync"
)

/*
Sentinel errors. Every typed error produced by this package reports a
match against exactly one of these via [errors.Is].
*/
var (
	ErrRange       error = mkerr("value outside of its legal bounds")
	ErrInvalidDate error = mkerr("invalid date")
	ErrOverflow    error = mkerr("arithmetic overflow")
)

/*
general/meta errors
*/
var (
	errorInexactDecimal = generalErr{mkerr("decimal has a non-zero fractional part after scaling")}
)

/*
RangeError describes a field value which falls outside of the
statically declared bounds of its [FieldKind], such as a month
of 13 or a day-of-year of 400.
*/
type RangeError struct {
	Field FieldKind
	Value int64
	Range ValueRange
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *RangeError) Error() string {
	return `RANGE ERROR: ` + mkerrf("Invalid value for ", r.Field,
		" (valid values ", r.Range, "): ", r.Value).Error()
}

/*
Is returns true if target is [ErrRange].
*/
func (r *RangeError) Is(target error) bool { return target == ErrRange }

/*
InvalidDateError describes a combination of individually valid field
values which does not denote a real date, such as April 31st or the
366th day of a common year.

DayOfYear is non-zero only for errors raised while resolving an ordinal
(year, day-of-year) date; otherwise Month and Day are populated.
*/
type InvalidDateError struct {
	Year      int64
	Month     Month
	Day       int64
	DayOfYear int64

	e error
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *InvalidDateError) Error() string { return `INVALID DATE: ` + r.e.Error() }

/*
Is returns true if target is [ErrInvalidDate].
*/
func (r *InvalidDateError) Is(target error) bool { return target == ErrInvalidDate }

/*
OverflowError describes an arithmetic step which would exceed the
range of its result type. Op names the operation that failed and
Value carries the (exact) offending magnitude, when known.
*/
type OverflowError struct {
	Op    string
	Value string
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *OverflowError) Error() string {
	var e error
	if r.Value == "" {
		e = mkerrf(r.Op, ": result exceeds capacity")
	} else {
		e = mkerrf(r.Op, ": result exceeds capacity: ", r.Value)
	}
	return `OVERFLOW ERROR: ` + e.Error()
}

/*
Is returns true if target is [ErrOverflow].
*/
func (r *OverflowError) Is(target error) bool { return target == ErrOverflow }

/*
types which implement the error interface.
*/
type (
	constraintErr struct{ e error }
	generalErr    struct{ e error }
)

func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }
func generalErrorf(m ...any) error        { return generalErr{mkerrf(m...)} }

func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r generalErr) Error() string    { return `GENERAL ERROR: ` + r.e.Error() }

func errorFieldRange(field FieldKind, value int64) error {
	return &RangeError{Field: field, Value: value, Range: field.Range()}
}

func errorDayOfMonth(year int64, month Month, day int64) error {
	e := &InvalidDateError{Year: year, Month: month, Day: day}
	if month == February && day == 29 {
		e.e = mkerrf("Invalid date 'February 29' as '", year,
			"' is not a leap year")
	} else {
		e.e = mkerrf("Invalid date '", uc(month.String()), " ", day, "'")
	}
	return e
}

func errorDayOfYear(year, dayOfYear int64) error {
	return &InvalidDateError{
		Year:      year,
		DayOfYear: dayOfYear,
		e: mkerrf("Invalid date 'DayOfYear ", dayOfYear, "' as '",
			year, "' is not a leap year"),
	}
}

func errorOverflow(op string, value ...any) error {
	e := &OverflowError{Op: op}
	if len(value) > 0 {
		e.Value = mkerrf(value...).Error()
	}
	return e
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			v, _ := errCache.LoadOrStore(s, mkerr(s))
			return v.(error)
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		case fmt.Stringer:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}
	// composed messages embed caller values; only single
	// literals are cached.
	return mkerr(b.String())
}
