package chardesc

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"golang.org/x/text/width"
)

//go:embed data/*.jsonl
var builtinData embed.FS

// Japanese readings of the ASCII letters and digits.
var (
	letterReadings = []string{
		"エー", "ビー", "シー", "ディー", "イー", "エフ", "ジー", "エイチ", "アイ",
		"ジェー", "ケー", "エル", "エム", "エヌ", "オー", "ピー", "キュー", "アール",
		"エス", "ティー", "ユー", "ブイ", "ダブリュー", "エックス", "ワイ", "ゼット",
	}
	digitReadings = []string{
		"ゼロ", "イチ", "ニ", "サン", "ヨン", "ゴ", "ロク", "ナナ", "ハチ", "キュー",
	}
)

// Builtin returns a dictionary with the embedded Japanese and English
// tables plus generated readings for Latin letters, digits, their
// full-width forms, and half-width katakana.
func Builtin() (*Dictionary, error) {
	d := NewDictionary()

	files, err := fs.Glob(builtinData, "data/*.jsonl")
	if err != nil {
		return nil, fmt.Errorf("listing builtin dictionaries: %w", err)
	}
	for _, name := range files {
		data, err := builtinData.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := d.LoadFromReader(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
	}

	addGeneratedReadings(d)
	return d, nil
}

func addGeneratedReadings(d *Dictionary) {
	for i, rd := range letterReadings {
		c := string(rune('a' + i))
		d.Add(Entry{Locale: "ja", Character: c, Reading: rd})
		d.Add(Entry{Locale: "ja", Character: width.Widen.String(c), Reading: rd})
	}
	for i, rd := range digitReadings {
		c := string(rune('0' + i))
		d.Add(Entry{Locale: "ja", Character: c, Reading: rd})
		d.Add(Entry{Locale: "ja", Character: width.Widen.String(c), Reading: rd})
	}

	// Half-width katakana read as their full-width counterparts.
	for r := rune(0xff66); r <= 0xff9d; r++ {
		c := string(r)
		d.Add(Entry{Locale: "ja", Character: c, Reading: width.Widen.String(c)})
	}
}
