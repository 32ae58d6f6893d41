// Package phone normalizes free-form phone numbers for SMS delivery.
package phone

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/tartampluch/go-greeter/internal/config"
)

// noise matches everything that is neither a digit nor a plus sign.
var noise = regexp.MustCompile(`[^+0-9]`)

// Normalizer rewrites numbers into international "+<country><number>" form.
type Normalizer struct {
	// CountryCode is prepended to numbers written without one (digits only, no "+").
	CountryCode string
}

// NewNormalizer returns a Normalizer using the default country code.
func NewNormalizer() Normalizer {
	return Normalizer{CountryCode: config.DefaultCountryCode}
}

// Normalize uses the default country code.
func Normalize(raw string) string {
	return NewNormalizer().Normalize(raw)
}

// Normalize strips formatting characters and ensures a leading "+<country code>".
// Numbers that already carry a "+" are trusted as is.
func (n Normalizer) Normalize(raw string) string {
	cleaned := noise.ReplaceAllString(raw, "")

	var out string
	switch {
	case strings.HasPrefix(cleaned, config.PhonePlus):
		out = cleaned
	case strings.HasPrefix(cleaned, n.CountryCode):
		out = config.PhonePlus + cleaned
	default:
		out = config.PhonePlus + n.CountryCode + cleaned
	}

	slog.Debug(config.MsgPhoneNorm,
		config.LogKeyComponent, config.CompPhone,
		config.LogKeyFrom, raw,
		config.LogKeyTo, out)
	return out
}

// NormalizeAll normalizes every number, preserving order.
func (n Normalizer) NormalizeAll(raw []string) []string {
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = n.Normalize(r)
	}
	return out
}
