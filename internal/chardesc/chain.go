package chardesc

import (
	"errors"

	"github.com/f3rmion/kanaspell/internal/reading"
	"golang.org/x/text/unicode/runenames"
)

// Chain consults each lookup in order and returns the first answer.
// A lookup error other than reading.ErrNotFound stops the search.
type Chain []reading.Lookup

// ShortDescription implements reading.Lookup.
func (c Chain) ShortDescription(locale, char string) (string, error) {
	for _, l := range c {
		d, err := l.ShortDescription(locale, char)
		if errors.Is(err, reading.ErrNotFound) {
			continue
		}
		return d, err
	}
	return "", reading.ErrNotFound
}

// LongDescription implements reading.Lookup.
func (c Chain) LongDescription(locale, char string) ([]string, error) {
	for _, l := range c {
		d, err := l.LongDescription(locale, char)
		if errors.Is(err, reading.ErrNotFound) {
			continue
		}
		return d, err
	}
	return nil, reading.ErrNotFound
}

// CharacterReading implements reading.Lookup.
func (c Chain) CharacterReading(locale, char string) (string, error) {
	for _, l := range c {
		d, err := l.CharacterReading(locale, char)
		if errors.Is(err, reading.ErrNotFound) {
			continue
		}
		return d, err
	}
	return "", reading.ErrNotFound
}

// UnicodeNames describes characters in English by their Unicode name.
// It only answers long description queries for the "en" locale.
type UnicodeNames struct{}

// ShortDescription implements reading.Lookup.
func (UnicodeNames) ShortDescription(locale, char string) (string, error) {
	return "", reading.ErrNotFound
}

// LongDescription implements reading.Lookup.
func (UnicodeNames) LongDescription(locale, char string) ([]string, error) {
	r := []rune(char)
	if reading.NormalizeLocale(locale) != "en" || len(r) != 1 {
		return nil, reading.ErrNotFound
	}
	name := runenames.Name(r[0])
	if name == "" || name[0] == '<' {
		return nil, reading.ErrNotFound
	}
	return []string{name}, nil
}

// CharacterReading implements reading.Lookup.
func (UnicodeNames) CharacterReading(locale, char string) (string, error) {
	return "", reading.ErrNotFound
}
