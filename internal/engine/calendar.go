package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-greeter/internal/config"
)

// CalendarOptions tunes the iCalendar rendering of reminders.
type CalendarOptions struct {
	// Stamp is written as DTSTAMP on every event (converted to UTC).
	Stamp time.Time

	// Trigger is an ISO8601 duration such as "-P1D"; empty means no alarm.
	Trigger string

	// Summary localizes the event title. Nil uses config.FallbackSummary.
	Summary func(name string) string
}

// BuildCalendar renders one all-day event per reminder on its congratulation date.
// An empty list still yields a valid VCALENDAR so calendar clients accept the file.
func BuildCalendar(reminders []Reminder, opts CalendarOptions) ([]byte, error) {
	if len(reminders) == 0 {
		var buf bytes.Buffer
		buf.WriteString(config.StubVCalendar)
		return buf.Bytes(), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(opts.Stamp.UTC())

	for _, r := range reminders {
		summary := fmt.Sprintf(config.FallbackSummary, r.Name)
		if opts.Summary != nil {
			summary = opts.Summary(r.Name)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, reminderUID(r))
		event.Props.SetText(config.PropSummary, summary)
		event.Props.Set(dtStampProp)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(r.CongratulationDate)
		event.Props.Set(dtStartProp)

		if opts.Trigger != "" {
			addAlarm(event, opts.Trigger, summary)
		}

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyEvents, len(reminders))
	return buf.Bytes(), nil
}

// reminderUID is stable across runs for the same person and birthday year.
func reminderUID(r Reminder) string {
	input := fmt.Sprintf(config.FormatHashInput, r.Name, r.NextBirthday.Format(config.DateFormatISO), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), r.NextBirthday.Year(), config.ICalDomain)
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

// ReminderTrigger builds an RFC 5545 alarm offset such as "-P1D" or "PT2H".
// A non-positive value disables the alarm and returns "".
func ReminderTrigger(value int, unit, direction string) (string, error) {
	if value <= 0 {
		return "", nil
	}

	var sign string
	switch direction {
	case config.DirBefore:
		sign = config.ISONegativePrefix
	case config.DirAfter:
		sign = config.ISOPeriodPrefix
	default:
		return "", fmt.Errorf("%s: %q", config.ErrReminderDir, direction)
	}

	switch unit {
	case config.UnitDays:
		return fmt.Sprintf("%s%d%s", sign, value, config.ISODay), nil
	case config.UnitHours:
		return fmt.Sprintf("%s%s%d%s", sign, config.ISOTimePrefix, value, config.ISOHour), nil
	case config.UnitMinutes:
		return fmt.Sprintf("%s%s%d%s", sign, config.ISOTimePrefix, value, config.ISOMinute), nil
	default:
		return "", fmt.Errorf("%s: %q", config.ErrReminderUnit, unit)
	}
}
