// Package report renders command results as localized text, JSON or iCalendar.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-greeter/internal/config"
	"github.com/tartampluch/go-greeter/internal/engine"
	"github.com/tartampluch/go-greeter/internal/i18n"
)

// DaysResult pairs a date argument with its distance from today, or the
// error that prevented computing it.
type DaysResult struct {
	Input string
	Days  int
	Err   error
}

// ReminderView is the JSON shape of a reminder.
type ReminderView struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
}

// Printer writes results to Out. Styling degrades to plain text when Out is
// not a terminal.
type Printer struct {
	Out        io.Writer
	Tr         *i18n.Translator
	DateLayout string

	title lipgloss.Style
	fail  lipgloss.Style
}

// NewPrinter creates a Printer whose styles are bound to out.
func NewPrinter(out io.Writer, tr *i18n.Translator, dateLayout string) *Printer {
	r := lipgloss.NewRenderer(out)
	if dateLayout == "" {
		dateLayout = config.DateFormatDotted
	}
	return &Printer{
		Out:        out,
		Tr:         tr,
		DateLayout: dateLayout,
		title:      r.NewStyle().Bold(true).Foreground(lipgloss.Color(config.ColorTitle)),
		fail:       r.NewStyle().Foreground(lipgloss.Color(config.ColorError)),
	}
}

// Section prints a "---------- Title ----------" header for a translation key.
func (p *Printer) Section(key string) error {
	rule := strings.Repeat(config.SectionRuleChar, config.SectionRuleWidth)
	line := p.title.Render(rule + " " + p.Tr.Msg(key) + " " + rule)
	return p.write(line + "\n")
}

// Days prints one line per date argument.
func (p *Printer) Days(results []DaysResult) error {
	var b strings.Builder
	for _, r := range results {
		if r.Err != nil {
			b.WriteString(p.errorLine(r.Err))
			continue
		}
		b.WriteString(p.Tr.Format(config.TKeyDaysResult, map[string]any{
			"Date": r.Input,
			"Days": r.Days,
		}))
		b.WriteString("\n")
	}
	return p.write(b.String())
}

// Ticket prints the drawn numbers, or the reason the draw was refused.
func (p *Printer) Ticket(numbers []int, err error) error {
	if err != nil {
		return p.write(p.errorLine(err))
	}
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprint(n)
	}
	return p.write("[" + strings.Join(parts, ", ") + "]\n")
}

// Phones prints the normalized numbers under a localized intro line.
func (p *Printer) Phones(numbers []string) error {
	var b strings.Builder
	b.WriteString(p.Tr.Msg(config.TKeyPhonesIntro))
	b.WriteString("\n")
	for _, n := range numbers {
		b.WriteString(config.ListIndent + n + "\n")
	}
	return p.write(b.String())
}

// Birthdays prints the congratulation list in input order.
func (p *Printer) Birthdays(reminders []engine.Reminder) error {
	var b strings.Builder
	b.WriteString(p.Tr.Msg(config.TKeyBirthdaysIntro))
	b.WriteString("\n")
	if len(reminders) == 0 {
		b.WriteString(config.ListIndent + p.Tr.Msg(config.TKeyBirthdaysNone) + "\n")
	}
	for _, r := range reminders {
		b.WriteString(config.ListIndent)
		b.WriteString(p.Tr.Format(config.TKeyReminderLine, map[string]any{
			"Name": r.Name,
			"Date": r.CongratulationDate.Format(p.DateLayout),
		}))
		b.WriteString("\n")
	}
	return p.write(b.String())
}

// BirthdaysJSON prints the reminders as a JSON array (never null).
func (p *Printer) BirthdaysJSON(reminders []engine.Reminder) error {
	views := make([]ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, ReminderView{
			Name:               r.Name,
			CongratulationDate: r.CongratulationDate.Format(p.DateLayout),
		})
	}

	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", config.JSONIndent)
	if err := enc.Encode(views); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}

// BirthdaysICS prints the reminders as an iCalendar document with localized titles.
func (p *Printer) BirthdaysICS(reminders []engine.Reminder, opts engine.CalendarOptions) error {
	if opts.Summary == nil && p.Tr != nil {
		opts.Summary = p.Tr.EventSummary
	}
	ics, err := engine.BuildCalendar(reminders, opts)
	if err != nil {
		return err
	}
	if _, err := p.Out.Write(ics); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}

func (p *Printer) errorLine(err error) string {
	return p.fail.Render(p.Tr.Format(config.TKeyErrorLine, map[string]any{"Error": err.Error()})) + "\n"
}

func (p *Printer) write(s string) error {
	if _, err := io.WriteString(p.Out, s); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}
