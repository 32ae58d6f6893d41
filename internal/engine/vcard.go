package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-greeter/internal/config"
)

// LoadVCards extracts users from a vCard stream.
// Cards that fail to decode, lack a BDAY or carry an unreadable date are
// skipped with a log entry so one bad card does not hide the rest. Only a
// stream that keeps failing to decode is reported as an error.
func LoadVCards(r io.Reader) ([]User, error) {
	log := slog.With(config.LogKeyComponent, config.CompVCard)

	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, withBday int }{}
	failures := 0
	var users []User

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A broken reader fails on every call; give up instead of spinning.
			if failures++; failures >= config.MaxConsecutiveCardErrors {
				return nil, fmt.Errorf("%s: %w", config.ErrVCardDecode, err)
			}
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}
		failures = 0

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseVCardDate(bday.Value)
		if err != nil {
			log.Debug(config.MsgSkippedDate, config.LogKeyValue, bday.Value)
			continue
		}
		stats.withBday++

		users = append(users, User{
			Name:      cardName(card),
			Birthday:  birthDate,
			YearKnown: yearKnown,
		})
	}

	log.Info(config.MsgUsersLoaded,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
		),
	)
	return users, nil
}

// cardName prefers FN (formatted) over N (structured).
func cardName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && strings.TrimSpace(fn.Value) != "" {
		return strings.TrimSpace(fn.Value)
	}
	if n := card.Name(); n != nil {
		if full := strings.TrimSpace(n.GivenName + " " + n.FamilyName); full != "" {
			return full
		}
	}
	return config.FallbackName
}

// parseVCardDate handles the BDAY forms found in real address books.
func parseVCardDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatISO,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true, nil
		}
	}

	// Truncated dates (year unknown) get a leap placeholder year so --02-29 survives.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
