package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-greeter/internal/config"
	"github.com/tartampluch/go-greeter/internal/dates"
	"github.com/tartampluch/go-greeter/internal/engine"
	"github.com/tartampluch/go-greeter/internal/lottery"
	"github.com/tartampluch/go-greeter/internal/phone"
	"github.com/tartampluch/go-greeter/internal/report"
)

// -----------------------------------------------------------------------------
// days
// -----------------------------------------------------------------------------

func newDaysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseDays,
		Short: config.CmdDescDays,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := a.daysFromToday(args)
			if err := a.printer.Days(results); err != nil {
				return err
			}
			for _, r := range results {
				if r.Err != nil {
					return errors.New(config.ErrDaysFailed)
				}
			}
			return nil
		},
	}
}

func (a *app) daysFromToday(values []string) []report.DaysResult {
	today := a.clock.Now()
	results := make([]report.DaysResult, len(values))
	for i, v := range values {
		days, err := dates.DaysFromToday(v, today)
		results[i] = report.DaysResult{Input: v, Days: days, Err: err}
	}
	return results
}

// -----------------------------------------------------------------------------
// ticket
// -----------------------------------------------------------------------------

func newTicketCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseTicket,
		Short: config.CmdDescTicket,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			ticket, err := a.drawer().Draw(nums[0], nums[1], nums[2])
			if err != nil {
				return err
			}
			return a.printer.Ticket(ticket, nil)
		},
	}
}

func (a *app) drawer() *lottery.Drawer {
	d := lottery.NewDrawer(a.rng)
	d.Min = a.settings.Ticket.Min
	d.Max = a.settings.Ticket.Max
	return d
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %q", config.ErrArgNotNumber, arg)
		}
		out[i] = n
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// phone
// -----------------------------------------------------------------------------

func newPhoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUsePhone,
		Short: config.CmdDescPhone,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args
			if len(raw) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				raw = lines
			}
			return a.printer.Phones(a.normalizer().NormalizeAll(raw))
		},
	}
}

func (a *app) normalizer() phone.Normalizer {
	return phone.Normalizer{CountryCode: a.settings.Phone.CountryCode}
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrReadInput, err)
	}
	return lines, nil
}

// -----------------------------------------------------------------------------
// birthdays
// -----------------------------------------------------------------------------

type birthdaysOptions struct {
	usersPath string
	vcardPath string
	format    string
	reminder  int
	unit      string
	direction string
}

func newBirthdaysCmd(a *app) *cobra.Command {
	var o birthdaysOptions

	cmd := &cobra.Command{
		Use:   config.CmdUseBirthdays,
		Short: config.CmdDescBirthdays,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBirthdays(cmd.Context(), o)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.usersPath, config.FlagUsers, "", config.FlagDescUsers)
	flags.StringVar(&o.vcardPath, config.FlagVCard, "", config.FlagDescVCard)
	flags.StringVar(&o.format, config.FlagFormat, config.FormatText, config.FlagDescFormat)
	flags.IntVar(&o.reminder, config.FlagReminder, 0, config.FlagDescReminder)
	flags.StringVar(&o.unit, config.FlagUnit, config.DefaultReminderUnit, config.FlagDescUnit)
	flags.StringVar(&o.direction, config.FlagDirection, config.DefaultReminderDir, config.FlagDescDirection)

	return cmd
}

func (a *app) runBirthdays(ctx context.Context, o birthdaysOptions) error {
	switch o.format {
	case config.FormatText, config.FormatJSON, config.FormatICS:
	default:
		return fmt.Errorf("%s: %q", config.ErrFormat, o.format)
	}

	trigger, err := engine.ReminderTrigger(o.reminder, o.unit, o.direction)
	if err != nil {
		return err
	}

	users, err := a.loadUsers(ctx, o)
	if err != nil {
		return err
	}

	planner := engine.NewPlanner(a.clock)
	planner.WindowDays = a.settings.WindowDays
	reminders := planner.Upcoming(users)

	switch o.format {
	case config.FormatJSON:
		return a.printer.BirthdaysJSON(reminders)
	case config.FormatICS:
		return a.printer.BirthdaysICS(reminders, engine.CalendarOptions{
			Stamp:   a.clock.Now(),
			Trigger: trigger,
		})
	default:
		return a.printer.Birthdays(reminders)
	}
}

// loadUsers reads the user list from --users or --vcard, or falls back to the
// built-in sample list.
func (a *app) loadUsers(ctx context.Context, o birthdaysOptions) ([]engine.User, error) {
	if o.usersPath != "" && o.vcardPath != "" {
		return nil, errors.New(config.ErrSourceConflict)
	}

	switch {
	case o.usersPath != "":
		rc, err := a.source.Open(ctx, o.usersPath)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return engine.LoadUsersYAML(rc, a.settings.Formats.Birthday)

	case o.vcardPath != "":
		rc, err := a.source.Open(ctx, o.vcardPath)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return engine.LoadVCards(rc)

	default:
		return engine.ParseUsers(sampleUsers, config.DateFormatDotted)
	}
}

// -----------------------------------------------------------------------------
// demo
// -----------------------------------------------------------------------------

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseDemo,
		Short: config.CmdDescDemo,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo()
		},
	}
}

// runDemo walks through all four features with the sample data. Failures of
// individual inputs are printed inline and do not stop the run.
func (a *app) runDemo() error {
	p := a.printer

	if err := p.Section(config.TKeySectionDays); err != nil {
		return err
	}
	if err := p.Days(a.daysFromToday(sampleDates)); err != nil {
		return err
	}

	if err := p.Section(config.TKeySectionTicket); err != nil {
		return err
	}
	d := a.drawer()
	for _, req := range sampleTickets {
		if err := p.Ticket(d.Draw(req.min, req.max, req.quantity)); err != nil {
			return err
		}
	}

	if err := p.Section(config.TKeySectionPhones); err != nil {
		return err
	}
	if err := p.Phones(a.normalizer().NormalizeAll(samplePhones)); err != nil {
		return err
	}

	if err := p.Section(config.TKeySectionBirthdays); err != nil {
		return err
	}
	users, err := engine.ParseUsers(sampleUsers, config.DateFormatDotted)
	if err != nil {
		return err
	}
	planner := engine.NewPlanner(a.clock)
	planner.WindowDays = a.settings.WindowDays
	return p.Birthdays(planner.Upcoming(users))
}

// -----------------------------------------------------------------------------
// version
// -----------------------------------------------------------------------------

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdUseVersion,
		Short: config.CmdDescVersion,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printVersion(cmd.OutOrStdout())
		},
	}
}
