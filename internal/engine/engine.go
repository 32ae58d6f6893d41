package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-greeter/internal/config"
	"github.com/tartampluch/go-greeter/internal/dates"
)

// Planner computes the congratulation list for a lookahead window.
type Planner struct {
	Clock Clock // Source of "today"; nil falls back to RealClock.

	// WindowDays is the inclusive number of days after today that still count.
	// Zero restricts the list to birthdays falling today.
	WindowDays int
}

// NewPlanner returns a Planner with the default one-week window.
func NewPlanner(clock Clock) *Planner {
	return &Planner{
		Clock:      clock,
		WindowDays: config.DefaultWindowDays,
	}
}

// Upcoming returns the reminders due within the window, in input order.
func (p *Planner) Upcoming(users []User) []Reminder {
	clock := p.Clock
	if clock == nil {
		clock = RealClock{}
	}
	return plan(users, clock.Now(), p.WindowDays)
}

// UpcomingBirthdays returns the users to congratulate during the seven days
// starting today, with weekend dates moved to the next Monday.
func UpcomingBirthdays(users []User, today time.Time) []Reminder {
	return plan(users, today, config.DefaultWindowDays)
}

func plan(users []User, now time.Time, windowDays int) []Reminder {
	today := dates.StartOfDay(now)
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	reminders := make([]Reminder, 0, len(users))
	for _, u := range users {
		next := NextBirthday(u.Birthday, today)
		if !InWindow(next, today, windowDays) {
			continue
		}

		congrats := CongratulationDate(next)
		shifted := !congrats.Equal(next)
		if shifted {
			log.Debug(config.MsgShifted,
				config.LogKeyName, u.Name,
				config.LogKeyFrom, next.Format(config.DateFormatISO),
				config.LogKeyTo, congrats.Format(config.DateFormatISO))
		}

		reminders = append(reminders, Reminder{
			Name:               u.Name,
			CongratulationDate: congrats,
			NextBirthday:       next,
			Shifted:            shifted,
		})
	}

	log.Info(config.MsgPlanned,
		config.LogKeyToday, today.Format(config.DateFormatISO),
		config.LogKeyWindow, windowDays,
		config.LogKeyTotal, len(users),
		config.LogKeyFound, len(reminders))

	return reminders
}

// NextBirthday returns the first occurrence of the birthday's month and day
// on or after today, at midnight in today's location.
//
// The month/day pair is compared with today's before any calendar
// normalization, so a February 29 birthday seen on March 1 of a common year
// rolls over to the following year. A February 29 that resolves into a common
// year is celebrated on March 1.
func NextBirthday(birthday, today time.Time) time.Time {
	today = dates.StartOfDay(today)
	_, bMonth, bDay := birthday.Date()

	year := today.Year()
	if bMonth < today.Month() || (bMonth == today.Month() && bDay < today.Day()) {
		year++
	}

	if bMonth == time.February && bDay == 29 && !dates.IsLeapYear(year) {
		return time.Date(year, time.March, 1, 0, 0, 0, 0, today.Location())
	}
	return time.Date(year, bMonth, bDay, 0, 0, 0, 0, today.Location())
}

// InWindow reports whether next falls between today and today+windowDays, both inclusive.
func InWindow(next, today time.Time, windowDays int) bool {
	d := dates.DaysBetween(today, next)
	return d >= 0 && d <= windowDays
}

// CongratulationDate moves a weekend birthday to the following Monday.
func CongratulationDate(next time.Time) time.Time {
	return dates.ShiftOffWeekend(next)
}
