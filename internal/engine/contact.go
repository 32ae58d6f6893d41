package engine

import "time"

// User is an immutable input record: a person and their date of birth.
type User struct {
	Name string

	// Birthday is the date of birth. Only month and day drive the reminders.
	Birthday time.Time

	// YearKnown is false for vCard dates written as --MM-DD; Birthday then
	// carries config.DefaultLeapYear as a placeholder year.
	YearKnown bool
}

// RawUser is a user as written in sample data or a YAML list, before parsing.
type RawUser struct {
	Name     string `yaml:"name" json:"name"`
	Birthday string `yaml:"birthday" json:"birthday"`
}

// Reminder is a derived record: who to congratulate and on which day.
type Reminder struct {
	Name string

	// CongratulationDate is NextBirthday moved to Monday when it falls on a weekend.
	CongratulationDate time.Time

	// NextBirthday is the nearest occurrence of the birthday on or after today.
	NextBirthday time.Time

	// Shifted reports whether CongratulationDate differs from NextBirthday.
	Shifted bool
}
