package chardesc

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/kanaspell/internal/reading"
	_ "modernc.org/sqlite"
)

// longSeparator joins long descriptions in one column (ASCII unit separator).
const longSeparator = "\x1f"

const schema = `
CREATE TABLE IF NOT EXISTS descriptions (
	locale    TEXT NOT NULL,
	glyph     TEXT NOT NULL,
	short     TEXT NOT NULL DEFAULT '',
	long      TEXT NOT NULL DEFAULT '',
	reading   TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (locale, glyph)
)`

const upsert = `
INSERT INTO descriptions (locale, glyph, short, long, reading)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (locale, glyph) DO UPDATE SET
	short   = CASE WHEN excluded.short   != '' THEN excluded.short   ELSE short   END,
	long    = CASE WHEN excluded.long    != '' THEN excluded.long    ELSE long    END,
	reading = CASE WHEN excluded.reading != '' THEN excluded.reading ELSE reading END`

// Store is a character description dictionary kept in a SQLite database.
type Store struct {
	path string
	db   *sql.DB
}

// OpenStore opens (creating if needed) the SQLite dictionary at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put inserts or updates one entry. Empty fields keep their stored value.
func (s *Store) Put(e Entry) error {
	return putEntry(s.db, e)
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func putEntry(x execer, e Entry) error {
	loc := reading.NormalizeLocale(e.Locale)
	if loc == "" || e.Character == "" {
		return fmt.Errorf("entry needs a locale and a character: %+v", e)
	}
	_, err := x.Exec(upsert, loc, e.Character, e.Short, strings.Join(e.Long, longSeparator), e.Reading)
	if err != nil {
		return fmt.Errorf("storing %s/%s: %w", loc, e.Character, err)
	}
	return nil
}

// Import writes every entry of d in a single transaction and returns the
// number of entries written.
func (s *Store) Import(d *Dictionary) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	n := 0
	for _, e := range d.Entries() {
		if err := putEntry(tx, e); err != nil {
			tx.Rollback()
			return 0, err
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return n, nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM descriptions").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// Get returns the stored entry for char in locale.
func (s *Store) Get(locale, char string) (*Entry, error) {
	e := Entry{Locale: reading.NormalizeLocale(locale), Character: char}
	var long string
	row := s.db.QueryRow(
		"SELECT short, long, reading FROM descriptions WHERE locale = ? AND glyph = ?",
		e.Locale, char,
	)
	if err := row.Scan(&e.Short, &long, &e.Reading); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reading.ErrNotFound
		}
		return nil, fmt.Errorf("querying %s/%s: %w", e.Locale, char, err)
	}
	if long != "" {
		e.Long = strings.Split(long, longSeparator)
	}
	return &e, nil
}

// ShortDescription implements reading.Lookup.
func (s *Store) ShortDescription(locale, char string) (string, error) {
	e, err := s.Get(locale, char)
	if err != nil {
		return "", err
	}
	if e.Short == "" {
		return "", reading.ErrNotFound
	}
	return e.Short, nil
}

// LongDescription implements reading.Lookup.
func (s *Store) LongDescription(locale, char string) ([]string, error) {
	e, err := s.Get(locale, char)
	if err != nil {
		return nil, err
	}
	if len(e.Long) == 0 {
		return nil, reading.ErrNotFound
	}
	return e.Long, nil
}

// CharacterReading implements reading.Lookup.
func (s *Store) CharacterReading(locale, char string) (string, error) {
	e, err := s.Get(locale, char)
	if err != nil {
		return "", err
	}
	if e.Reading == "" {
		return "", reading.ErrNotFound
	}
	return e.Reading, nil
}
