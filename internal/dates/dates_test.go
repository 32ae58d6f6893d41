package dates_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-greeter/internal/config"
	"github.com/tartampluch/go-greeter/internal/dates"
)

func TestDaysFromToday(t *testing.T) {
	// Mid-morning, to make sure the time of day does not leak into the count.
	today := time.Date(2025, 10, 3, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"Same day", "2025-10-03", 0},
		{"Yesterday", "2025-10-02", 1},
		{"Tomorrow", "2025-10-04", -1},
		{"Across a leap day", "2024-02-28", 583},
		{"Far past", "1999-02-12", 9730},
		{"Future", "2030-02-12", -1593},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dates.DaysFromToday(tt.value, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysFromToday_ParseError(t *testing.T) {
	today := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{"1999.02.12", "", "2025-02-30", "yesterday"} {
		t.Run(value, func(t *testing.T) {
			_, err := dates.DaysFromToday(value, today)
			require.Error(t, err)

			var pe *dates.ParseError
			require.True(t, errors.As(err, &pe), "Should be a *ParseError")
			assert.Equal(t, value, pe.Value)
			assert.Equal(t, config.DateFormatISO, pe.Layout)
			assert.Contains(t, err.Error(), config.ErrDateParse)

			var te *time.ParseError
			assert.True(t, errors.As(err, &te), "Underlying time error stays reachable")
		})
	}
}

func TestDaysBetween_IgnoresZoneAndDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// Spans the October DST switch: a 25-hour day.
	from := time.Date(2025, 10, 25, 23, 0, 0, 0, loc)
	to := time.Date(2025, 10, 27, 0, 30, 0, 0, loc)
	assert.Equal(t, 2, dates.DaysBetween(from, to))
	assert.Equal(t, -2, dates.DaysBetween(to, from))
}

func TestIsLeapYear(t *testing.T) {
	tests := map[int]bool{
		2000: true,
		2024: true,
		2025: false,
		1900: false,
		2100: false,
		2400: true,
	}
	for year, want := range tests {
		assert.Equal(t, want, dates.IsLeapYear(year), "year %d", year)
	}
}

func TestShiftOffWeekend(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"Friday unchanged", time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)},
		{"Saturday to Monday", time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)},
		{"Sunday to Monday", time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)},
		{"Monday unchanged", time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)},
		{"Saturday across year end", time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates.ShiftOffWeekend(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, time.Saturday, got.Weekday())
			assert.NotEqual(t, time.Sunday, got.Weekday())
		})
	}
}

func TestParse_ReturnsMidnight(t *testing.T) {
	got, err := dates.Parse("1990.10.07", config.DateFormatDotted)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 10, 7, 0, 0, 0, 0, time.UTC), got)
}
