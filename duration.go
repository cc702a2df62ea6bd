package temporal

/*
duration.go implements the normalized (seconds, nanos) Duration type.
*/

import (
	"math"
	"time"
)

const (
	nanosPerSecond  = 1_000_000_000
	nanosPerMilli   = 1_000_000
	millisPerSecond = 1_000
	secondsPerDay   = 86_400
)

/*
Duration implements an immutable, signed amount of time with nanosecond
precision, held as a count of seconds and a nanosecond adjustment.

The adjustment is always within [0, 999999999]; the sign is carried
solely by the seconds. Thus -0.5s is held as (-1, 500000000). This
type supports a far wider range than [time.Duration], which is capped
near 292 years.

The zero value is a zero-length Duration.
*/
type Duration struct {
	seconds int64
	nanos   int32
}

/*
ZeroDuration is the zero-length [Duration].
*/
var ZeroDuration = Duration{}

/*
DurationOfSeconds returns a [Duration] of the specified number of
seconds and no nanosecond adjustment.
*/
func DurationOfSeconds(seconds int64) Duration {
	return Duration{seconds: seconds}
}

/*
DurationOfSecondsAdjusted returns an instance of [Duration] alongside an
error following an attempt to normalize seconds and nanoAdjustment.

The adjustment may be of any magnitude and sign; whole seconds within
it are carried into seconds using floored division, such that the
remaining adjustment is never negative:

	DurationOfSecondsAdjusted(3, 1)
	DurationOfSecondsAdjusted(4, -999_999_999)
	DurationOfSecondsAdjusted(2, 1_000_000_001)

... all yield the same [Duration]. An *[OverflowError] is returned if the
carry pushes seconds beyond the int64 range.
*/
func DurationOfSecondsAdjusted(seconds, nanoAdjustment int64) (d Duration, err error) {
	debugEnter(newLItem(seconds, "seconds"), newLItem(nanoAdjustment, "nanoAdjustment"))
	defer func() { debugExit(d, newLItem(err)) }()

	secs, ok := addExact(seconds, floorDiv(nanoAdjustment, nanosPerSecond))
	if !ok {
		err = errorOverflow("Duration.OfSeconds", seconds, " + ", nanoAdjustment, "ns")
		return
	}
	nos := floorMod(nanoAdjustment, nanosPerSecond)
	debugDuration(newLItem(secs, "seconds"), newLItem(nos, "nanos"))

	d = newDuration(secs, int32(nos))
	return
}

/*
MustDurationOfSecondsAdjusted returns an instance of [Duration] and panics
if [DurationOfSecondsAdjusted] returned an error during processing.
*/
func MustDurationOfSecondsAdjusted(seconds, nanoAdjustment int64) Duration {
	d, err := DurationOfSecondsAdjusted(seconds, nanoAdjustment)
	if err != nil {
		panic(err)
	}
	return d
}

/*
DurationOfMillis returns a [Duration] of the specified number of
milliseconds. Every int64 value is representable.
*/
func DurationOfMillis(millis int64) Duration {
	secs := millis / millisPerSecond
	mos := millis % millisPerSecond
	if mos < 0 {
		// borrow one second to make the remainder positive
		mos += millisPerSecond
		secs--
	}
	return newDuration(secs, int32(mos*nanosPerMilli))
}

/*
DurationOfNanos returns a [Duration] of the specified number of
nanoseconds. Every int64 value is representable.
*/
func DurationOfNanos(nanos int64) Duration {
	secs := nanos / nanosPerSecond
	nos := nanos % nanosPerSecond
	if nos < 0 {
		nos += nanosPerSecond
		secs--
	}
	return newDuration(secs, int32(nos))
}

/*
DurationOfMinutes returns a [Duration] of the specified number of minutes
alongside an *[OverflowError] if the equivalent number of seconds cannot
be represented.
*/
func DurationOfMinutes(minutes int64) (Duration, error) {
	return durationOfUnit(minutes, 60, "Duration.OfMinutes")
}

/*
DurationOfHours returns a [Duration] of the specified number of hours
alongside an *[OverflowError] if the equivalent number of seconds cannot
be represented.
*/
func DurationOfHours(hours int64) (Duration, error) {
	return durationOfUnit(hours, 3600, "Duration.OfHours")
}

/*
DurationOfDays returns a [Duration] of the specified number of standard
24-hour days alongside an *[OverflowError] if the equivalent number of
seconds cannot be represented.
*/
func DurationOfDays(days int64) (Duration, error) {
	return durationOfUnit(days, secondsPerDay, "Duration.OfDays")
}

func durationOfUnit(amount, secondsPerUnit int64, op string) (Duration, error) {
	secs, ok := multiplyExact(amount, secondsPerUnit)
	if !ok {
		return ZeroDuration, errorOverflow(op, amount)
	}
	return newDuration(secs, 0), nil
}

/*
DurationFromStd returns the [Duration] equivalent of the [time.Duration]
d. Every [time.Duration] is representable.
*/
func DurationFromStd(d time.Duration) Duration {
	return DurationOfNanos(int64(d))
}

/*
newDuration is the sole point at which Duration values are assembled from
already normalized fields.
*/
func newDuration(seconds int64, nanos int32) Duration {
	return Duration{seconds: seconds, nanos: nanos}
}

/*
Seconds returns the (signed) seconds of the receiver instance. Note
that this does not include the nanosecond adjustment; for a negative
fractional Duration such as -0.5s, the result is -1.
*/
func (r Duration) Seconds() int64 { return r.seconds }

/*
Nanos returns the nanosecond adjustment of the receiver instance, which
is always within [0, 999999999].
*/
func (r Duration) Nanos() int { return int(r.nanos) }

/*
IsZero returns a Boolean value indicative of the receiver instance being
of zero length.
*/
func (r Duration) IsZero() bool { return r.seconds|int64(r.nanos) == 0 }

/*
IsNegative returns a Boolean value indicative of the receiver instance
being strictly less than zero. The sign is determined by the seconds
alone.
*/
func (r Duration) IsNegative() bool { return r.seconds < 0 }

/*
Negated returns a copy of the receiver instance with its sign reversed.
An *[OverflowError] is returned if the receiver cannot be negated, which
is only the case for durations at or near the minimum of the range.
*/
func (r Duration) Negated() (Duration, error) { return r.MultipliedBy(-1) }

/*
Abs returns a copy of the receiver instance with a positive length. See
[Duration.Negated] regarding the error.
*/
func (r Duration) Abs() (Duration, error) {
	if r.IsNegative() {
		return r.Negated()
	}
	return r, nil
}

/*
MultipliedBy returns a copy of the receiver instance scaled exactly by
multiplicand.

The receiver is converted to the exact decimal number of seconds it
denotes, multiplied, and shifted nine (9) places to the exact number
of nanoseconds. That integer is then divided by one billion to recover
the seconds and the adjustment. No intermediate value is bound to 64
bits, so products whose nanosecond count exceeds int64 are still found
if their seconds fit. Otherwise, an *[OverflowError] is returned.

The optional [Arithmetic] instance selects the exact arithmetic backend;
[DefaultArithmetic] is used if none is provided.
*/
func (r Duration) MultipliedBy(multiplicand int64, arith ...Arithmetic) (d Duration, err error) {
	switch multiplicand {
	case 0:
		return ZeroDuration, nil
	case 1:
		return r, nil
	}

	debugEnter(r, newLItem(multiplicand, "multiplicand"))
	defer func() { debugExit(d, newLItem(err)) }()

	product := r.exact(pickArithmetic(arith)).MulInt(multiplicand)
	var nanos ExactInteger
	if nanos, err = product.ShiftToInteger(9); err != nil {
		return
	}
	debugArith(newLItem(nanos, "nanos"))

	secs, nos := nanos.QuoRem(nanosPerSecond)
	if secs.BitLen() > 63 {
		err = errorOverflow("Duration.MultipliedBy", nanos, "ns")
		return
	}

	return DurationOfSecondsAdjusted(secs.Int64(), nos)
}

/*
exact returns the receiver as the exact decimal seconds + nanos × 10^-9.
*/
func (r Duration) exact(a Arithmetic) ExactDecimal {
	return a.Decimal(r.seconds, int64(r.nanos), 9)
}

/*
Plus returns the sum of the receiver instance and other alongside an
*[OverflowError] if the sum cannot be represented.
*/
func (r Duration) Plus(other Duration) (Duration, error) {
	return r.plus(other.seconds, int64(other.nanos))
}

/*
Minus returns the difference of the receiver instance and other
alongside an *[OverflowError] if the difference cannot be represented.
*/
func (r Duration) Minus(other Duration) (Duration, error) {
	if other.seconds == math.MinInt64 {
		d, err := r.plus(math.MaxInt64, -int64(other.nanos))
		if err != nil {
			return ZeroDuration, err
		}
		return d.plus(1, 0)
	}
	return r.plus(-other.seconds, -int64(other.nanos))
}

/*
PlusSeconds returns a copy of the receiver instance with the specified
number of seconds added.
*/
func (r Duration) PlusSeconds(seconds int64) (Duration, error) {
	return r.plus(seconds, 0)
}

/*
PlusMillis returns a copy of the receiver instance with the specified
number of milliseconds added.
*/
func (r Duration) PlusMillis(millis int64) (Duration, error) {
	return r.plus(millis/millisPerSecond, (millis%millisPerSecond)*nanosPerMilli)
}

/*
PlusNanos returns a copy of the receiver instance with the specified
number of nanoseconds added.
*/
func (r Duration) PlusNanos(nanos int64) (Duration, error) {
	return r.plus(0, nanos)
}

func (r Duration) plus(secondsToAdd, nanosToAdd int64) (Duration, error) {
	if secondsToAdd|nanosToAdd == 0 {
		return r, nil
	}

	secs, ok := addExact(r.seconds, secondsToAdd)
	if ok {
		secs, ok = addExact(secs, nanosToAdd/nanosPerSecond)
	}
	if !ok {
		return ZeroDuration, errorOverflow("Duration.Plus", r, " + ",
			secondsToAdd, "s ", nanosToAdd, "ns")
	}

	// |nanos| < 2e9 here, so no wrap
	return DurationOfSecondsAdjusted(secs, int64(r.nanos)+nanosToAdd%nanosPerSecond)
}

/*
ToNanos returns the total length of the receiver instance in nanoseconds
alongside an *[OverflowError] if that total exceeds the int64 range
(roughly 292 years).
*/
func (r Duration) ToNanos() (int64, error) {
	secs, nos := r.seconds, int64(r.nanos)
	if secs < 0 {
		// fold one second into the nanos so that the
		// minimum int64 remains reachable
		secs++
		nos -= nanosPerSecond
	}

	total, ok := multiplyExact(secs, nanosPerSecond)
	if ok {
		total, ok = addExact(total, nos)
	}
	if !ok {
		return 0, errorOverflow("Duration.ToNanos", r)
	}
	return total, nil
}

/*
ToMillis returns the total length of the receiver instance in whole
milliseconds, truncating any excess nanoseconds toward zero,
alongside an *[OverflowError] if that total exceeds the int64 range.
*/
func (r Duration) ToMillis() (int64, error) {
	secs, nos := r.seconds, int64(r.nanos)
	if secs < 0 {
		secs++
		nos -= nanosPerSecond
	}

	total, ok := multiplyExact(secs, millisPerSecond)
	if ok {
		total, ok = addExact(total, nos/nanosPerMilli)
	}
	if !ok {
		return 0, errorOverflow("Duration.ToMillis", r)
	}
	return total, nil
}

/*
ToDays returns the number of whole standard days in the receiver
instance, truncated toward zero on the seconds.
*/
func (r Duration) ToDays() int64 { return r.seconds / secondsPerDay }

/*
ToHours returns the number of whole hours in the receiver instance,
truncated toward zero on the seconds.
*/
func (r Duration) ToHours() int64 { return r.seconds / 3600 }

/*
ToMinutes returns the number of whole minutes in the receiver instance,
truncated toward zero on the seconds.
*/
func (r Duration) ToMinutes() int64 { return r.seconds / 60 }

/*
Std returns the [time.Duration] equivalent of the receiver instance
alongside an *[OverflowError] if the receiver exceeds the range of
[time.Duration].
*/
func (r Duration) Std() (time.Duration, error) {
	n, err := r.ToNanos()
	return time.Duration(n), err
}

/*
CompareDurations returns a negative integer, zero or a positive integer
as a is shorter than, equal to or longer than b. The function is
suitable for use with [slices.SortFunc].
*/
func CompareDurations(a, b Duration) int {
	if c := cmpInt(a.seconds, b.seconds); c != 0 {
		return c
	}
	return cmpInt(int64(a.nanos), int64(b.nanos))
}

/*
Compare returns the result of [CompareDurations] for the receiver instance
and other.
*/
func (r Duration) Compare(other Duration) int { return CompareDurations(r, other) }

/*
Equal returns a Boolean value indicative of the receiver instance and
other being of the same length.
*/
func (r Duration) Equal(other Duration) bool { return r == other }

/*
String returns the exact length of the receiver instance in decimal
seconds, e.g.: "3.000000001s" or "-0.5s".
*/
func (r Duration) String() string {
	if r.IsZero() {
		return "0s"
	}
	return r.exact(defaultArithmetic).String() + "s"
}
