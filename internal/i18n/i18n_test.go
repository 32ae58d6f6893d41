package i18n_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-greeter/internal/config"
	"github.com/tartampluch/go-greeter/internal/i18n"
)

var translationKeys = []string{
	config.TKeySectionDays,
	config.TKeySectionTicket,
	config.TKeySectionPhones,
	config.TKeySectionBirthdays,
	config.TKeyPhonesIntro,
	config.TKeyBirthdaysIntro,
	config.TKeyBirthdaysNone,
	config.TKeyDaysResult,
	config.TKeyErrorLine,
	config.TKeyReminderLine,
	config.TKeyEvtSummary,
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every locale file, and flags orphans.
func TestI18nIntegrity(t *testing.T) {
	defined := make(map[string]bool, len(translationKeys))
	for _, k := range translationKeys {
		defined[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
			require.NoError(t, err, "Must load locale file")

			var jsonMap map[string]any
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range defined {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				assert.Truef(t, defined[jsonKey], "Key '%s' in active.%s.json has no constant", jsonKey, lang)
			}
		})
	}
}

func TestNew_LoadsSupportedLanguages(t *testing.T) {
	tr := i18n.New(config.DefaultLanguage)
	assert.ElementsMatch(t, config.SupportedLanguages, tr.Languages)
}

func TestTranslator_SwitchLanguage(t *testing.T) {
	tr := i18n.New("en")
	assert.Equal(t, "Congratulations list for this week:", tr.Msg(config.TKeyBirthdaysIntro))

	tr.SetLanguage("uk")
	assert.Equal(t, "Список привітань на цьому тижні:", tr.Msg(config.TKeyBirthdaysIntro))
	assert.Equal(t, "Привітати Jane Smith", tr.EventSummary("Jane Smith"))
}

func TestTranslator_Format(t *testing.T) {
	tr := i18n.New("en")

	got := tr.Format(config.TKeyDaysResult, map[string]any{"Date": "2024-02-28", "Days": 583})
	assert.Equal(t, "2024-02-28: 583 days", got)
	assert.Equal(t, "Congratulate Jane Smith", tr.EventSummary("Jane Smith"))
}

func TestTranslator_Fallbacks(t *testing.T) {
	tr := i18n.New("fr")
	assert.Equal(t, "Congratulations list for this week:", tr.Msg(config.TKeyBirthdaysIntro), "Unknown language resolves to English")
	assert.Equal(t, "no_such_key", tr.Msg("no_such_key"), "Missing keys come back verbatim")

	var nilTr *i18n.Translator
	assert.Equal(t, config.TKeyPhonesIntro, nilTr.Msg(config.TKeyPhonesIntro))
}
