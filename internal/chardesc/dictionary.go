// Package chardesc provides per-locale character description dictionaries.
//
// Dictionaries answer the three questions the reading engine asks about a
// character: its short symbol reading, its long explanatory description,
// and its canonical reading.
package chardesc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/f3rmion/kanaspell/internal/reading"
)

// Entry is one character's descriptions in one locale.
type Entry struct {
	Locale    string   `json:"locale"`
	Character string   `json:"character"`
	Short     string   `json:"short,omitempty"`   // symbol reading, e.g. "チイサイ ツ"
	Long      []string `json:"long,omitempty"`    // explanatory readings, e.g. "カンジノ カン"
	Reading   string   `json:"reading,omitempty"` // canonical reading, e.g. "エー" for a
}

// merge overwrites fields of e with the non-empty fields of other.
func (e *Entry) merge(other Entry) {
	if other.Short != "" {
		e.Short = other.Short
	}
	if len(other.Long) > 0 {
		e.Long = append([]string(nil), other.Long...)
	}
	if other.Reading != "" {
		e.Reading = other.Reading
	}
}

// Dictionary holds character descriptions keyed by locale and character.
type Dictionary struct {
	entries map[string]map[string]*Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: make(map[string]map[string]*Entry),
	}
}

// LoadFromFile loads JSON Lines entries from path.
func (d *Dictionary) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	if err := d.LoadFromReader(file); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadFromReader loads JSON Lines entries from r. Malformed lines and
// entries without a locale or character are skipped.
func (d *Dictionary) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		d.Add(entry)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}
	return nil
}

// Add inserts entry. Non-empty fields replace those of an existing entry
// for the same locale and character.
func (d *Dictionary) Add(entry Entry) {
	entry.Locale = reading.NormalizeLocale(entry.Locale)
	if entry.Locale == "" || entry.Character == "" {
		return
	}

	byChar, ok := d.entries[entry.Locale]
	if !ok {
		byChar = make(map[string]*Entry)
		d.entries[entry.Locale] = byChar
	}
	if existing, ok := byChar[entry.Character]; ok {
		existing.merge(entry)
		return
	}
	e := Entry{Locale: entry.Locale, Character: entry.Character}
	e.merge(entry)
	byChar[entry.Character] = &e
}

// Lookup returns the entry for char in locale, or nil.
func (d *Dictionary) Lookup(locale, char string) *Entry {
	return d.entries[reading.NormalizeLocale(locale)][char]
}

// Size returns the number of entries across all locales.
func (d *Dictionary) Size() int {
	n := 0
	for _, byChar := range d.entries {
		n += len(byChar)
	}
	return n
}

// Locales returns the locales present, sorted.
func (d *Dictionary) Locales() []string {
	locales := make([]string, 0, len(d.entries))
	for loc := range d.entries {
		locales = append(locales, loc)
	}
	sort.Strings(locales)
	return locales
}

// Entries returns copies of all entries ordered by locale and character.
func (d *Dictionary) Entries() []Entry {
	var out []Entry
	for _, loc := range d.Locales() {
		chars := make([]string, 0, len(d.entries[loc]))
		for c := range d.entries[loc] {
			chars = append(chars, c)
		}
		sort.Strings(chars)
		for _, c := range chars {
			out = append(out, *d.entries[loc][c])
		}
	}
	return out
}

// ShortDescription implements reading.Lookup.
func (d *Dictionary) ShortDescription(locale, char string) (string, error) {
	if e := d.Lookup(locale, char); e != nil && e.Short != "" {
		return e.Short, nil
	}
	return "", reading.ErrNotFound
}

// LongDescription implements reading.Lookup.
func (d *Dictionary) LongDescription(locale, char string) ([]string, error) {
	if e := d.Lookup(locale, char); e != nil && len(e.Long) > 0 {
		return e.Long, nil
	}
	return nil, reading.ErrNotFound
}

// CharacterReading implements reading.Lookup.
func (d *Dictionary) CharacterReading(locale, char string) (string, error) {
	if e := d.Lookup(locale, char); e != nil && e.Reading != "" {
		return e.Reading, nil
	}
	return "", reading.ErrNotFound
}
