package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-greeter/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DateFormatISO", config.DateFormatISO},
		{"DateFormatDotted", config.DateFormatDotted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 7, config.DefaultWindowDays, "Reminder window is one week")
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Less(t, config.DefaultTicketMin, config.DefaultTicketMax)
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	assert.True(t, strings.HasPrefix(config.StubVCalendar, "BEGIN:VCALENDAR"))

	require.NoError(t, config.Defaults().Validate())
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)

	s, err = config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)
}

func TestLoadSettings_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `language: uk
window_days: 14
phone:
  country_code: "48"
ticket:
  max: 49
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "uk", s.Language)
	assert.Equal(t, 14, s.WindowDays)
	assert.Equal(t, "48", s.Phone.CountryCode)
	assert.Equal(t, 1, s.Ticket.Min, "Unset keys keep their default")
	assert.Equal(t, 49, s.Ticket.Max)
	assert.Equal(t, config.DateFormatDotted, s.Formats.Birthday)
}

func TestDecodeSettings_EmptyDocument(t *testing.T) {
	s, err := config.DecodeSettings(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)
}

func TestDecodeSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"Unknown key", "colour: blue\n", config.ErrSettingsDecode},
		{"Bad type", "window_days: soon\n", config.ErrSettingsDecode},
		{"Unsupported language", "language: fr\n", config.ErrLanguage},
		{"Negative window", "window_days: -1\n", config.ErrWindowNegative},
		{"Country code with plus", "phone:\n  country_code: \"+38\"\n", config.ErrCountryCode},
		{"Inverted ticket", "ticket:\n  min: 10\n  max: 5\n", config.ErrTicketBounds},
		{"Empty layout", "formats:\n  output: \"\"\n", config.ErrLayoutEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.DecodeSettings(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
