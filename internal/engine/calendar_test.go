package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-greeter/internal/config"
	"github.com/tartampluch/go-greeter/internal/engine"
)

func sampleReminders() []engine.Reminder {
	return []engine.Reminder{
		{Name: "Jane Smith", NextBirthday: day(2025, 10, 7), CongratulationDate: day(2025, 10, 7)},
		{Name: "Sunday Child", NextBirthday: day(2025, 10, 5), CongratulationDate: day(2025, 10, 6), Shifted: true},
	}
}

func TestBuildCalendar_Events(t *testing.T) {
	ics, err := engine.BuildCalendar(sampleReminders(), engine.CalendarOptions{Stamp: friday})
	require.NoError(t, err)

	icsStr := string(ics)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR", "Should start with VCALENDAR")
	assert.Contains(t, icsStr, "PRODID:"+config.ICalProdid)
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VEVENT"), "One event per reminder")
	assert.Contains(t, icsStr, "SUMMARY:Congratulate Jane Smith")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20251007")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20251006", "Events sit on the shifted congratulation date")
	assert.Contains(t, icsStr, "DTSTAMP:20251003T154500Z")
	assert.NotContains(t, icsStr, "BEGIN:VALARM", "No alarm unless a trigger is requested")
}

func TestBuildCalendar_StableUIDs(t *testing.T) {
	a, err := engine.BuildCalendar(sampleReminders(), engine.CalendarOptions{Stamp: friday})
	require.NoError(t, err)
	b, err := engine.BuildCalendar(sampleReminders(), engine.CalendarOptions{Stamp: friday})
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.Contains(t, string(a), "-2025@"+config.ICalDomain)
}

func TestBuildCalendar_WithAlarmAndSummary(t *testing.T) {
	ics, err := engine.BuildCalendar(sampleReminders(), engine.CalendarOptions{
		Stamp:   friday,
		Trigger: "-P1D",
		Summary: func(name string) string { return "Привітати " + name },
	})
	require.NoError(t, err)

	icsStr := string(ics)
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VALARM"), "ICS should contain an alarm per event")
	assert.Contains(t, icsStr, "TRIGGER:-P1D", "Alarm trigger should match configuration")
	assert.Contains(t, icsStr, "ACTION:DISPLAY", "Alarm action should be DISPLAY")
	assert.Contains(t, icsStr, "SUMMARY:Привітати Jane Smith")
}

func TestBuildCalendar_Empty(t *testing.T) {
	ics, err := engine.BuildCalendar(nil, engine.CalendarOptions{Stamp: friday})
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(ics))
}

func TestReminderTrigger(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		unit      string
		direction string
		want      string
		wantErr   string
	}{
		{"Disabled", 0, config.UnitDays, config.DirBefore, "", ""},
		{"1 Day Before", 1, config.UnitDays, config.DirBefore, "-P1D", ""},
		{"2 Hours After", 2, config.UnitHours, config.DirAfter, "PT2H", ""},
		{"30 Minutes Before", 30, config.UnitMinutes, config.DirBefore, "-PT30M", ""},
		{"Bad unit", 1, "w", config.DirBefore, "", config.ErrReminderUnit},
		{"Bad direction", 1, config.UnitDays, "around", "", config.ErrReminderDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ReminderTrigger(tt.value, tt.unit, tt.direction)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
