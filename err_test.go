package temporal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_sentinels(t *testing.T) {
	_, rangeErr := NewDate(2024, 13, 1)
	_, dateErr := NewDate(2023, 2, 29)
	_, overflowErr := DurationOfSeconds(1<<62).MultipliedBy(4)

	for _, tc := range []struct {
		err  error
		want error
	}{
		{rangeErr, ErrRange},
		{dateErr, ErrInvalidDate},
		{overflowErr, ErrOverflow},
	} {
		require.Error(t, tc.err)
		assert.ErrorIs(t, tc.err, tc.want)
		for _, other := range []error{ErrRange, ErrInvalidDate, ErrOverflow} {
			if other != tc.want {
				assert.NotErrorIs(t, tc.err, other)
			}
		}

		wrapped := fmt.Errorf("while scheduling: %w", tc.err)
		assert.ErrorIs(t, wrapped, tc.want)
	}
}

func TestErrors_as(t *testing.T) {
	_, err := NewDateFromYearDay(2024, 400)
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, FieldDayOfYear, re.Field)
	assert.Equal(t, int64(400), re.Value)
	assert.Equal(t, ValueRange{1, 366}, re.Range)

	_, err = NewDate(2023, 11, 31)
	var ide *InvalidDateError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, November, ide.Month)
	assert.Equal(t, int64(31), ide.Day)
	assert.Zero(t, ide.DayOfYear)
	assert.Equal(t, "INVALID DATE: Invalid date 'NOVEMBER 31'", err.Error())

	_, err = DurationOfSecondsAdjusted(1<<63-1, 1_000_000_000)
	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "Duration.OfSeconds", oe.Op)
	assert.Equal(t,
		"OVERFLOW ERROR: Duration.OfSeconds: result exceeds capacity: 9223372036854775807 + 1000000000ns",
		err.Error())
}

func TestOverflowError_noValue(t *testing.T) {
	err := errorOverflow("Test.Op")
	assert.Equal(t, "OVERFLOW ERROR: Test.Op: result exceeds capacity", err.Error())
}

func TestMkerrf(t *testing.T) {
	assert.Nil(t, mkerrf())
	assert.Nil(t, mkerrf(nil))
	assert.Same(t, mkerrf("cached"), mkerrf("cached"))
	assert.Equal(t, "a 1 2 x February <not supported>",
		mkerrf("a ", 1, " ", int64(2), " ", errors.New("x"), " ", February, " ", struct{}{}).Error())

	assert.Equal(t, "GENERAL ERROR: oops", generalErrorf("oops").Error())
	assert.Equal(t, "CONSTRAINT VIOLATION: no", constraintViolationf("no").Error())
}
