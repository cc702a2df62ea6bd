package temporal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"slices"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func ExampleDurationOfSecondsAdjusted() {
	a, _ := DurationOfSecondsAdjusted(3, 1)
	b, _ := DurationOfSecondsAdjusted(4, -999_999_999)
	c, _ := DurationOfSecondsAdjusted(2, 1_000_000_001)
	fmt.Println(a, a == b && b == c)

	neg, _ := DurationOfSecondsAdjusted(0, -500_000_000)
	fmt.Println(neg, neg.Seconds(), neg.Nanos())
	// Output:
	// 3.000000001s true
	// -0.5s -1 500000000
}

func ExampleDuration_MultipliedBy() {
	d := DurationOfMillis(1500)

	p, _ := d.MultipliedBy(-3)
	fmt.Println(p)

	_, err := DurationOfSeconds(math.MaxInt64).MultipliedBy(2)
	fmt.Println(errors.Is(err, ErrOverflow))
	// Output:
	// -4.5s
	// true
}

func TestDurationOfSecondsAdjusted(t *testing.T) {
	for idx, tc := range []struct {
		secs, adj int64
		wantSecs  int64
		wantNanos int
	}{
		{3, 1, 3, 1},
		{4, -999_999_999, 3, 1},
		{2, 1_000_000_001, 3, 1},
		{0, -1, -1, 999_999_999},
		{0, 0, 0, 0},
		{-1, 1_000_000_000, 0, 0},
		{0, math.MinInt64, -9223372037, 145224192},
		{0, math.MaxInt64, 9223372036, 854775807},
		{math.MaxInt64, 999_999_999, math.MaxInt64, 999_999_999},
		{math.MinInt64, 0, math.MinInt64, 0},
	} {
		d, err := DurationOfSecondsAdjusted(tc.secs, tc.adj)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if d.Seconds() != tc.wantSecs || d.Nanos() != tc.wantNanos {
			t.Errorf("%s[%d] failed:\n\twant: (%d, %d)\n\tgot:  (%d, %d)",
				t.Name(), idx, tc.wantSecs, tc.wantNanos, d.Seconds(), d.Nanos())
		}
	}

	for idx, tc := range [][2]int64{
		{math.MaxInt64, 1_000_000_000},
		{math.MinInt64, -1},
		{math.MaxInt64, math.MaxInt64},
	} {
		_, err := DurationOfSecondsAdjusted(tc[0], tc[1])
		var oe *OverflowError
		if !errors.As(err, &oe) || oe.Op != "Duration.OfSeconds" {
			t.Errorf("%s[overflow %d] failed: got %v", t.Name(), idx, err)
		}
	}
}

func TestDurationOfSecondsAdjusted_normalization(t *testing.T) {
	billion := big.NewInt(nanosPerSecond)
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.Int64Range(-1<<53, 1<<53).Draw(t, "seconds")
		n := rapid.Int64().Draw(t, "nanoAdjustment")

		d, err := DurationOfSecondsAdjusted(s, n)
		if err != nil {
			t.Fatalf("(%d, %d): %v", s, n, err)
		}
		if d.Nanos() < 0 || d.Nanos() >= nanosPerSecond {
			t.Fatalf("(%d, %d): nanos %d out of range", s, n, d.Nanos())
		}

		want := new(big.Int).Mul(big.NewInt(s), billion)
		want.Add(want, big.NewInt(n))
		got := new(big.Int).Mul(big.NewInt(d.Seconds()), billion)
		got.Add(got, big.NewInt(int64(d.Nanos())))
		if want.Cmp(got) != 0 {
			t.Fatalf("(%d, %d): total %s != %s", s, n, got, want)
		}
		if d.IsNegative() != (want.Sign() < 0) {
			t.Fatalf("(%d, %d): sign mismatch", s, n)
		}
	})
}

func TestDurationOf_millisAndNanos(t *testing.T) {
	if d := DurationOfMillis(-1); d.Seconds() != -1 || d.Nanos() != 999_000_000 {
		t.Errorf("%s failed: got (%d, %d)", t.Name(), d.Seconds(), d.Nanos())
	}
	if d := DurationOfNanos(-1); d.Seconds() != -1 || d.Nanos() != 999_999_999 {
		t.Errorf("%s failed: got (%d, %d)", t.Name(), d.Seconds(), d.Nanos())
	}
	if d := DurationOfNanos(1_500_000_000); d.Seconds() != 1 || d.Nanos() != 500_000_000 {
		t.Errorf("%s failed: got (%d, %d)", t.Name(), d.Seconds(), d.Nanos())
	}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64().Draw(t, "n")

		dn := DurationOfNanos(n)
		if got, err := dn.ToNanos(); err != nil || got != n {
			t.Fatalf("nanos %d round tripped to %d (%v)", n, got, err)
		}
		if std, err := dn.Std(); err != nil || std != time.Duration(n) {
			t.Fatalf("nanos %d: std %v (%v)", n, std, err)
		}
		if DurationFromStd(time.Duration(n)) != dn {
			t.Fatalf("nanos %d: DurationFromStd mismatch", n)
		}

		dm := DurationOfMillis(n)
		if got, err := dm.ToMillis(); err != nil || got != n {
			t.Fatalf("millis %d round tripped to %d (%v)", n, got, err)
		}
		if dm.Nanos()%nanosPerMilli != 0 {
			t.Fatalf("millis %d: nanos %d not whole millis", n, dm.Nanos())
		}
	})
}

func TestDurationOf_units(t *testing.T) {
	if d, err := DurationOfMinutes(-2); err != nil || d.Seconds() != -120 {
		t.Errorf("%s failed: got %s, %v", t.Name(), d, err)
	}
	if d, err := DurationOfHours(2); err != nil || d.Seconds() != 7200 || d.ToHours() != 2 || d.ToMinutes() != 120 {
		t.Errorf("%s failed: got %s, %v", t.Name(), d, err)
	}
	if d, err := DurationOfDays(3); err != nil || d.Seconds() != 3*86400 || d.ToDays() != 3 {
		t.Errorf("%s failed: got %s, %v", t.Name(), d, err)
	}
	for idx, op := range []func() (Duration, error){
		func() (Duration, error) { return DurationOfMinutes(math.MaxInt64) },
		func() (Duration, error) { return DurationOfHours(math.MinInt64) },
		func() (Duration, error) { return DurationOfDays(math.MaxInt64 / 86000) },
	} {
		if _, err := op(); !errors.Is(err, ErrOverflow) {
			t.Errorf("%s[%d] failed: expected overflow, got %v", t.Name(), idx, err)
		}
	}
}

func TestDuration_MultipliedBy(t *testing.T) {
	d := MustDurationOfSecondsAdjusted(3, 1)

	if z, err := d.MultipliedBy(0); err != nil || !z.IsZero() {
		t.Errorf("%s failed: multiplying by zero gave %s, %v", t.Name(), z, err)
	}
	if same, err := d.MultipliedBy(1); err != nil || same != d {
		t.Errorf("%s failed: multiplying by one gave %s, %v", t.Name(), same, err)
	}

	for idx, tc := range []struct {
		d         Duration
		n         int64
		wantSecs  int64
		wantNanos int
	}{
		{MustDurationOfSecondsAdjusted(1, 500_000_000), -3, -5, 500_000_000},
		{MustDurationOfSecondsAdjusted(0, 999_999_999), 10_000_000_000, 9_999_999_990, 0},
		{DurationOfSeconds(math.MinInt64 / 2), 2, math.MinInt64, 0},
		{MustDurationOfSecondsAdjusted(math.MaxInt64, 999_999_999), -1, math.MinInt64, 1},
		{DurationOfNanos(-1), math.MinInt64, 9223372036, 854775808},
		{DurationOfSeconds(math.MaxInt64), 1, math.MaxInt64, 0},
	} {
		got, err := tc.d.MultipliedBy(tc.n)
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
			continue
		}
		if got.Seconds() != tc.wantSecs || got.Nanos() != tc.wantNanos {
			t.Errorf("%s[%d] failed:\n\twant: (%d, %d)\n\tgot:  (%d, %d)",
				t.Name(), idx, tc.wantSecs, tc.wantNanos, got.Seconds(), got.Nanos())
		}
	}

	for idx, tc := range []struct {
		d Duration
		n int64
	}{
		{DurationOfSeconds(math.MaxInt64), 2},
		{DurationOfSeconds(math.MinInt64), -1},
		{DurationOfSeconds(math.MinInt64), 2},
		{MustDurationOfSecondsAdjusted(math.MaxInt64/3, 0), 4},
	} {
		_, err := tc.d.MultipliedBy(tc.n)
		var oe *OverflowError
		if !errors.As(err, &oe) || oe.Op != "Duration.MultipliedBy" || oe.Value == "" {
			t.Errorf("%s[overflow %d] failed: got %v", t.Name(), idx, err)
		}
	}
}

func TestDuration_negation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.Int64Range(math.MinInt64+1, math.MaxInt64-1).Draw(t, "seconds")
		n := rapid.Int64Range(0, nanosPerSecond-1).Draw(t, "nanos")
		d := MustDurationOfSecondsAdjusted(s, n)

		neg, err := d.Negated()
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		back, err := neg.Negated()
		if err != nil || back != d {
			t.Fatalf("%s negated twice gave %s (%v)", d, back, err)
		}
		if !d.IsZero() && neg.IsNegative() == d.IsNegative() {
			t.Fatalf("%s and %s share a sign", d, neg)
		}

		abs, err := d.Abs()
		if err != nil || abs.IsNegative() {
			t.Fatalf("%s: abs %s (%v)", d, abs, err)
		}
		if abs != d && abs != neg {
			t.Fatalf("%s: abs %s is neither itself nor its negation", d, abs)
		}
	})

	if _, err := DurationOfSeconds(math.MinInt64).Abs(); !errors.Is(err, ErrOverflow) {
		t.Errorf("%s failed: expected overflow, got %v", t.Name(), err)
	}
}

func TestDuration_plusMinus(t *testing.T) {
	a := MustDurationOfSecondsAdjusted(1, 500_000_000)
	b := MustDurationOfSecondsAdjusted(0, 600_000_000)

	for idx, tc := range []struct {
		op        func() (Duration, error)
		wantSecs  int64
		wantNanos int
	}{
		{func() (Duration, error) { return a.Plus(b) }, 2, 100_000_000},
		{func() (Duration, error) { return a.Minus(b) }, 0, 900_000_000},
		{func() (Duration, error) { return b.Minus(a) }, -1, 100_000_000},
		{func() (Duration, error) { return a.PlusSeconds(-2) }, -1, 500_000_000},
		{func() (Duration, error) { return a.PlusMillis(-1_750) }, -1, 750_000_000},
		{func() (Duration, error) { return a.PlusNanos(500_000_000) }, 2, 0},
		{func() (Duration, error) { return a.PlusNanos(0) }, 1, 500_000_000},
		{func() (Duration, error) { return DurationOfSeconds(-1).Minus(DurationOfSeconds(math.MinInt64)) }, math.MaxInt64, 0},
	} {
		got, err := tc.op()
		if err != nil {
			t.Errorf("%s[%d] failed: %v", t.Name(), idx, err)
		} else if got.Seconds() != tc.wantSecs || got.Nanos() != tc.wantNanos {
			t.Errorf("%s[%d] failed:\n\twant: (%d, %d)\n\tgot:  (%d, %d)",
				t.Name(), idx, tc.wantSecs, tc.wantNanos, got.Seconds(), got.Nanos())
		}
	}

	for idx, op := range []func() (Duration, error){
		func() (Duration, error) { return DurationOfSeconds(math.MaxInt64).PlusSeconds(1) },
		func() (Duration, error) { return MustDurationOfSecondsAdjusted(math.MaxInt64, 999_999_999).PlusNanos(1) },
		func() (Duration, error) { return ZeroDuration.Minus(DurationOfSeconds(math.MinInt64)) },
		func() (Duration, error) { return DurationOfSeconds(math.MinInt64).Minus(DurationOfNanos(1)) },
	} {
		if _, err := op(); !errors.Is(err, ErrOverflow) {
			t.Errorf("%s[overflow %d] failed: got %v", t.Name(), idx, err)
		}
	}
}

func TestDuration_conversionLimits(t *testing.T) {
	long := DurationOfSeconds(1 << 40)
	if _, err := long.ToNanos(); !errors.Is(err, ErrOverflow) {
		t.Errorf("%s failed: expected ToNanos overflow, got %v", t.Name(), err)
	}
	if _, err := long.Std(); !errors.Is(err, ErrOverflow) {
		t.Errorf("%s failed: expected Std overflow, got %v", t.Name(), err)
	}
	if ms, err := long.ToMillis(); err != nil || ms != (1<<40)*1000 {
		t.Errorf("%s failed: got %d, %v", t.Name(), ms, err)
	}
	if _, err := DurationOfSeconds(math.MinInt64).ToMillis(); !errors.Is(err, ErrOverflow) {
		t.Errorf("%s failed: expected ToMillis overflow, got %v", t.Name(), err)
	}
	if ms, _ := DurationOfNanos(-500_000).ToMillis(); ms != 0 {
		t.Errorf("%s failed: -0.5ms truncated to %d", t.Name(), ms)
	}
}

func TestDuration_String(t *testing.T) {
	for idx, tc := range []struct {
		d    Duration
		want string
	}{
		{ZeroDuration, "0s"},
		{DurationOfSeconds(1), "1s"},
		{DurationOfMillis(-500), "-0.5s"},
		{DurationOfNanos(-1), "-0.000000001s"},
		{MustDurationOfSecondsAdjusted(3, 1), "3.000000001s"},
		{DurationOfSeconds(math.MinInt64), "-9223372036854775808s"},
		{MustDurationOfSecondsAdjusted(math.MaxInt64, 999_999_999), "9223372036854775807.999999999s"},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}
}

func TestDuration_compare(t *testing.T) {
	ds := []Duration{
		DurationOfMillis(1),
		DurationOfNanos(-1),
		ZeroDuration,
		DurationOfSeconds(-1),
		DurationOfNanos(1),
	}
	slices.SortFunc(ds, CompareDurations)

	want := []string{"-1s", "-0.000000001s", "0s", "0.000000001s", "0.001s"}
	for i := range ds {
		if ds[i].String() != want[i] {
			t.Errorf("%s failed: index %d want %s, got %s", t.Name(), i, want[i], ds[i])
		}
	}

	if !DurationOfMillis(1000).Equal(DurationOfSeconds(1)) || DurationOfSeconds(1).Compare(ZeroDuration) != 1 {
		t.Errorf("%s failed: equality", t.Name())
	}
	if ZeroDuration.IsNegative() || !DurationOfNanos(-1).IsNegative() || !DurationOfNanos(0).IsZero() {
		t.Errorf("%s failed: sign predicates", t.Name())
	}
}

func TestDurationRangeConstraint(t *testing.T) {
	c := DurationRangeConstraint(ZeroDuration, DurationOfSeconds(60))
	if err := c(DurationOfMillis(59_999)); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
	if err := c(DurationOfNanos(-1)); err == nil {
		t.Errorf("%s failed: expected violation", t.Name())
	}
	if err := c(MustDurationOfSecondsAdjusted(60, 1)); err == nil {
		t.Errorf("%s failed: expected violation", t.Name())
	}
}

func TestMustDurationOfSecondsAdjusted_panic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("%s failed: expected panic", t.Name())
		}
	}()
	_ = MustDurationOfSecondsAdjusted(math.MaxInt64, nanosPerSecond)
}
