package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds the runtime options that can be changed without rebuilding.
// Every field has a usable default (see Defaults).
type Settings struct {
	Language   string         `yaml:"language"`
	WindowDays int            `yaml:"window_days"`
	Phone      PhoneSettings  `yaml:"phone"`
	Ticket     TicketSettings `yaml:"ticket"`
	Formats    FormatSettings `yaml:"formats"`
}

// PhoneSettings configures phone normalization.
type PhoneSettings struct {
	CountryCode string `yaml:"country_code"`
}

// TicketSettings bounds the lottery draw.
type TicketSettings struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FormatSettings lists the date layouts (Go reference-time syntax).
type FormatSettings struct {
	Birthday string `yaml:"birthday"`
	Output   string `yaml:"output"`
}

// Defaults returns the settings used when no file is given.
func Defaults() Settings {
	return Settings{
		Language:   DefaultLanguage,
		WindowDays: DefaultWindowDays,
		Phone:      PhoneSettings{CountryCode: DefaultCountryCode},
		Ticket:     TicketSettings{Min: DefaultTicketMin, Max: DefaultTicketMax},
		Formats:    FormatSettings{Birthday: DateFormatDotted, Output: DateFormatDotted},
	}
}

// LoadSettings reads a YAML settings file on top of Defaults.
// An empty path or a missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	log := slog.With(LogKeyComponent, CompConfig)

	if path == "" {
		log.Debug(MsgSettingsNone)
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug(MsgSettingsNone, LogKeyFile, path)
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	s, err := DecodeSettings(bytes.NewReader(data))
	if err != nil {
		return Settings{}, err
	}

	log.Info(MsgSettingsLoad, LogKeyFile, path, LogKeyLang, s.Language, LogKeyWindow, s.WindowDays)
	return s, nil
}

// DecodeSettings parses YAML settings from r. Unknown keys are rejected.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := Defaults()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsDecode, err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first inconsistent value.
func (s Settings) Validate() error {
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %s: %q", ErrSettingsInvalid, ErrLanguage, s.Language)
	}
	if s.WindowDays < 0 {
		return fmt.Errorf("%s: %s", ErrSettingsInvalid, ErrWindowNegative)
	}
	if s.Phone.CountryCode == "" || strings.Trim(s.Phone.CountryCode, "0123456789") != "" {
		return fmt.Errorf("%s: %s", ErrSettingsInvalid, ErrCountryCode)
	}
	if s.Ticket.Min < 1 || s.Ticket.Min >= s.Ticket.Max {
		return fmt.Errorf("%s: %s", ErrSettingsInvalid, ErrTicketBounds)
	}
	if s.Formats.Birthday == "" || s.Formats.Output == "" {
		return fmt.Errorf("%s: %s", ErrSettingsInvalid, ErrLayoutEmpty)
	}
	return nil
}
