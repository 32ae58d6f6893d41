// Package dates holds the calendar arithmetic shared by the greeter routines.
// All helpers work on civil dates: the time of day and the zone offset of their
// inputs are ignored, only the wall-clock year, month and day count.
package dates

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-greeter/internal/config"
)

const secondsPerDay = 24 * 60 * 60

// ParseError reports a date string that does not match the expected layout.
type ParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q (layout %s): %v", config.ErrDateParse, e.Value, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads value with the given Go layout. The result is midnight UTC.
func Parse(value, layout string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Layout: layout, Err: err}
	}
	return StartOfDay(t), nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from 'from' to 'to'.
// It is negative when 'to' falls before 'from'.
func DaysBetween(from, to time.Time) int {
	return int((civilUnix(to) - civilUnix(from)) / secondsPerDay)
}

// civilUnix maps the wall date of t onto midnight UTC, so that every day is
// exactly secondsPerDay long regardless of DST transitions in t's zone.
func civilUnix(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

// DaysFromToday parses value as YYYY-MM-DD and returns how many days separate
// it from today. Dates in the future yield a negative count.
func DaysFromToday(value string, today time.Time) (int, error) {
	target, err := Parse(value, config.DateFormatISO)
	if err != nil {
		return 0, err
	}
	return DaysBetween(target, today), nil
}

// IsLeapYear reports whether year has a February 29 in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ShiftOffWeekend moves Saturdays and Sundays forward to the following Monday.
// Weekdays are returned unchanged.
func ShiftOffWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}
