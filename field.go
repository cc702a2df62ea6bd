package temporal

/*
field.go contains the field-range registry and the validation gate
through which every constructor in this package passes.
*/

/*
FieldKind identifies a calendrical or time-based field whose legal
values are bounded by a fixed, inclusive [ValueRange].
*/
type FieldKind int

const (
	invalidField      FieldKind = iota
	FieldYear                   // proleptic year
	FieldMonthOfYear            // month of year, 1 through 12
	FieldDayOfMonth             // day of month, 1 through 31
	FieldDayOfYear              // day of year, 1 through 366
	FieldEpochDay               // days relative to 1970-01-01
	FieldNanoOfSecond           // nanosecond within a second
)

/*
ValueRange describes the inclusive bounds of a [FieldKind].
*/
type ValueRange struct {
	Min int64
	Max int64
}

const (
	minYear = -999999999
	maxYear = 999999999
)

var fieldTable = [...]struct {
	name string
	vr   ValueRange
}{
	invalidField:      {"Invalid", ValueRange{}},
	FieldYear:         {"Year", ValueRange{minYear, maxYear}},
	FieldMonthOfYear:  {"MonthOfYear", ValueRange{1, 12}},
	FieldDayOfMonth:   {"DayOfMonth", ValueRange{1, 31}},
	FieldDayOfYear:    {"DayOfYear", ValueRange{1, 366}},
	FieldEpochDay:     {"EpochDay", ValueRange{-365243219162, 365241780471}},
	FieldNanoOfSecond: {"NanoOfSecond", ValueRange{0, 999999999}},
}

/*
fieldConstraints holds a [RangeConstraint] per registered field, built
once from fieldTable.
*/
var fieldConstraints = func() (c [len(fieldTable)]Constraint[int64]) {
	for k := FieldYear; int(k) < len(fieldTable); k++ {
		c[k] = RangeConstraint(fieldTable[k].vr.Min, fieldTable[k].vr.Max)
	}
	return
}()

/*
String returns the string name of the receiver instance.
*/
func (r FieldKind) String() string {
	if !r.valid() {
		return fieldTable[invalidField].name
	}
	return fieldTable[r].name
}

/*
Range returns the [ValueRange] declared for the receiver instance. An
unknown field kind yields the zero [ValueRange].
*/
func (r FieldKind) Range() ValueRange {
	if !r.valid() {
		return ValueRange{}
	}
	return fieldTable[r].vr
}

func (r FieldKind) valid() bool {
	return invalidField < r && int(r) < len(fieldTable)
}

/*
IsValidValue returns a Boolean value indicative of v falling within
the receiver's inclusive bounds.
*/
func (r ValueRange) IsValidValue(v int64) bool {
	return r.Min <= v && v <= r.Max
}

/*
IsIntValue returns true if every value within the receiver instance
fits the native int type on all supported platforms (32 bits).
*/
func (r ValueRange) IsIntValue() bool {
	return r.Min >= -1<<31 && r.Max <= 1<<31-1
}

/*
String returns the string representation of the receiver instance,
e.g.: "1 - 12".
*/
func (r ValueRange) String() string {
	return fmtInt(r.Min, 10) + " - " + fmtInt(r.Max, 10)
}

/*
CheckValidValue returns value alongside a nil error if value falls
within the bounds declared for kind. Otherwise, a *[RangeError] is
returned which carries the field, the offending value and the legal
bounds.
*/
func CheckValidValue(kind FieldKind, value int64) (int64, error) {
	debugEnter(kind, newLItem(value, "value"))
	var err error
	if !kind.valid() {
		err = generalErrorf("unknown field kind ", int(kind))
	} else if fieldConstraints[kind](value) != nil {
		err = errorFieldRange(kind, value)
	}
	debugExit(newLItem(err))

	if err != nil {
		return 0, err
	}
	return value, nil
}

/*
CheckValidIntValue behaves like [CheckValidValue], but additionally
requires that the field's range fits the native int type. Fields such
as [FieldEpochDay] fail this check regardless of value.
*/
func CheckValidIntValue(kind FieldKind, value int64) (int, error) {
	if !kind.Range().IsIntValue() {
		return 0, generalErrorf("field ", kind, " is not int-valued")
	}
	v, err := CheckValidValue(kind, value)
	return int(v), err
}
