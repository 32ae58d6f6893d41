package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-greeter/internal/config"
	"github.com/tartampluch/go-greeter/internal/dates"
	"github.com/tartampluch/go-greeter/internal/engine"
	"github.com/tartampluch/go-greeter/internal/i18n"
	"github.com/tartampluch/go-greeter/internal/report"
)

// app holds the flag values and the dependencies shared by every command.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Persistent flags
	configPath string
	logFile    string
	lang       string
	today      string
	country    string
	window     int
	debug      bool

	settings config.Settings
	clock    engine.Clock
	source   engine.SourceOpener
	printer  *report.Printer
	rng      *rand.Rand // nil draws from a runtime-seeded source

	logCloser io.Closer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		settings: config.Defaults(),
		clock:    engine.RealClock{},
		source:   engine.NewFileSource(),
	}
}

// close releases the log file, if any. Safe to call more than once.
func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close() // Best effort close
		a.logCloser = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               config.CmdUseRoot,
		Short:             config.CmdDescRoot,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, config.FlagConfig, "", config.FlagDescConfig)
	flags.BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)
	flags.StringVar(&a.logFile, config.FlagLogFile, "", config.FlagDescLogFile)
	flags.StringVar(&a.lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flags.StringVar(&a.today, config.FlagToday, "", config.FlagDescToday)
	flags.IntVar(&a.window, config.FlagWindow, config.DefaultWindowDays, config.FlagDescWindow)
	flags.StringVar(&a.country, config.FlagCountry, config.DefaultCountryCode, config.FlagDescCountry)

	root.AddCommand(
		newDaysCmd(a),
		newTicketCmd(a),
		newPhoneCmd(a),
		newBirthdaysCmd(a),
		newDemoCmd(a),
		newVersionCmd(a),
	)
	return root
}

// prepare runs before every command: logging first, then settings, then
// flag overrides on top of the settings file.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	closer, err := setupLogging(a.stderr, a.debug, a.logFile)
	if err != nil {
		return err
	}
	a.logCloser = closer
	logStartupInfo(cmd.Name())

	s, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(config.FlagLang) {
		s.Language = a.lang
	}
	if flags.Changed(config.FlagWindow) {
		s.WindowDays = a.window
	}
	if flags.Changed(config.FlagCountry) {
		s.Phone.CountryCode = a.country
	}
	if err := s.Validate(); err != nil {
		return err
	}
	a.settings = s

	if a.today != "" {
		t, err := dates.Parse(a.today, config.DateFormatISO)
		if err != nil {
			return fmt.Errorf("--%s: %w", config.FlagToday, err)
		}
		a.clock = engine.FixedClock{Time: t}
	}

	a.printer = report.NewPrinter(a.stdout, i18n.New(s.Language), s.Formats.Output)

	slog.Debug(config.MsgSettingsLoad,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyLang, s.Language,
		config.LogKeyWindow, s.WindowDays,
		config.LogKeyToday, a.clock.Now().Format(config.DateFormatISO),
	)
	return nil
}
