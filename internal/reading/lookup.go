package reading

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// ErrNotFound is returned by a Lookup that has no entry for a character.
var ErrNotFound = errors.New("no description")

// Lookup supplies per-locale character descriptions.
// Implementations must be free of side effects visible to the engine.
type Lookup interface {
	// ShortDescription returns the concise symbol reading of char.
	ShortDescription(locale, char string) (string, error)
	// LongDescription returns the explanatory readings of char.
	LongDescription(locale, char string) ([]string, error)
	// CharacterReading returns the canonical reading of a lower-cased char.
	CharacterReading(locale, char string) (string, error)
}

// LocaleProvider reports the active user interface language.
type LocaleProvider interface {
	CurrentLocale() string
}

// StaticLocale is a LocaleProvider that always reports the same locale.
type StaticLocale string

// CurrentLocale implements LocaleProvider.
func (s StaticLocale) CurrentLocale() string { return string(s) }

// LocaleFunc adapts a function to LocaleProvider.
type LocaleFunc func() string

// CurrentLocale implements LocaleProvider.
func (f LocaleFunc) CurrentLocale() string { return f() }

// NormalizeLocale reduces a locale tag such as "ja_JP" or "en-US" to its
// lower-case base language code.
func NormalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err == nil {
		if base, conf := tag.Base(); conf != language.No {
			return base.String()
		}
	}
	s = strings.ToLower(s)
	if len(s) > 2 {
		s = s[:2]
	}
	return s
}

// IsJa reports whether locale selects Japanese.
func IsJa(locale string) bool {
	return NormalizeLocale(locale) == "ja"
}
