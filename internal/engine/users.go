package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-greeter/internal/config"
	"github.com/tartampluch/go-greeter/internal/dates"
	"gopkg.in/yaml.v3"
)

// ParseUsers converts raw records using the given birthday layout.
// The first malformed date aborts the whole list; the returned error wraps a
// *dates.ParseError.
func ParseUsers(raw []RawUser, layout string) ([]User, error) {
	users := make([]User, 0, len(raw))
	for i, r := range raw {
		birthday, err := dates.Parse(r.Birthday, layout)
		if err != nil {
			return nil, fmt.Errorf("%s #%d (%s): %w", config.ErrUserRecord, i+1, r.Name, err)
		}
		users = append(users, User{Name: r.Name, Birthday: birthday, YearKnown: true})
	}
	return users, nil
}

// LoadUsersYAML reads a YAML sequence of {name, birthday} records.
func LoadUsersYAML(r io.Reader, layout string) ([]User, error) {
	var raw []RawUser

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", config.ErrUsersDecode, err)
	}

	users, err := ParseUsers(raw, layout)
	if err != nil {
		return nil, err
	}

	slog.Debug(config.MsgUsersLoaded,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, len(users))
	return users, nil
}
