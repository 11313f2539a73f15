// Package reading generates disambiguated spoken readings of Japanese and
// mixed-script text, one character at a time.
//
// The Engine is immutable after construction. All of its operations are
// synchronous, never fail, and may be called from multiple goroutines.
package reading

import (
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Labels holds the spoken words announced for each attribute.
type Labels struct {
	Hiragana  string `yaml:"hiragana" json:"hiragana"`
	Katakana  string `yaml:"katakana" json:"katakana"`
	HalfWidth string `yaml:"half_width" json:"half_width"`
	FullWidth string `yaml:"full_width" json:"full_width"`
	Latin     string `yaml:"latin" json:"latin"`
	Upper     string `yaml:"upper" json:"upper"`
}

// DefaultLabels are used for any locale without its own labels.
var DefaultLabels = Labels{
	Hiragana:  "hiragana",
	Katakana:  "katakana",
	HalfWidth: "half shaped",
	FullWidth: "full shaped",
	Latin:     "latin",
	Upper:     "cap",
}

// JapaneseLabels are the built-in labels for the "ja" locale.
var JapaneseLabels = Labels{
	Hiragana:  "ヒラガナ",
	Katakana:  "カタカナ",
	HalfWidth: "ハンカク",
	FullWidth: "ゼンカク",
	Latin:     "ラテン",
	Upper:     "オオモジ",
}

// merge fills empty fields of l from def.
func (l Labels) merge(def Labels) Labels {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	return Labels{
		Hiragana:  pick(l.Hiragana, def.Hiragana),
		Katakana:  pick(l.Katakana, def.Katakana),
		HalfWidth: pick(l.HalfWidth, def.HalfWidth),
		FullWidth: pick(l.FullWidth, def.FullWidth),
		Latin:     pick(l.Latin, def.Latin),
		Upper:     pick(l.Upper, def.Upper),
	}
}

// Options configures an Engine.
type Options struct {
	// Labels overrides attribute labels per locale code.
	Labels map[string]Labels
	// Logger receives debug traces of each resolution step.
	Logger *slog.Logger
}

// Engine resolves character descriptions and discriminant readings.
type Engine struct {
	lookup Lookup
	locale LocaleProvider
	labels map[string]Labels
	logger *slog.Logger
}

// NewEngine creates an engine backed by lookup. The active locale is read
// from locale once per top-level call.
func NewEngine(lookup Lookup, locale LocaleProvider, opts Options) *Engine {
	if locale == nil {
		locale = StaticLocale("ja")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	labels := map[string]Labels{"ja": JapaneseLabels}
	for loc, l := range opts.Labels {
		loc = NormalizeLocale(loc)
		base, ok := labels[loc]
		if !ok {
			base = DefaultLabels
		}
		labels[loc] = l.merge(base)
	}

	return &Engine{
		lookup: lookup,
		locale: locale,
		labels: labels,
		logger: logger,
	}
}

// Locale returns the normalised active locale.
func (e *Engine) Locale() string {
	return NormalizeLocale(e.locale.CurrentLocale())
}

// LabelsFor returns the attribute labels used for locale.
func (e *Engine) LabelsFor(locale string) Labels {
	if l, ok := e.labels[NormalizeLocale(locale)]; ok {
		return l
	}
	return DefaultLabels
}

// symbol queries the short description service, returning c when the
// service has nothing to say.
func (e *Engine) symbol(loc, c string) string {
	if e.lookup == nil {
		return c
	}
	d, err := e.lookup.ShortDescription(loc, c)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			e.logger.Debug("short description lookup failed", "locale", loc, "char", c, "error", err)
		}
		return c
	}
	if d == "" {
		return c
	}
	return d
}

// shortDesc returns the concise reading of r in loc.
func (e *Engine) shortDesc(loc string, r rune) string {
	c := string(r)
	if r < utf8.RuneSelf && loc != "ja" {
		return e.symbol(loc, c)
	}
	if d := e.symbol("ja", c); d != c {
		return d
	}
	if e.lookup == nil {
		return c
	}
	d, err := e.lookup.CharacterReading("ja", strings.ToLower(c))
	if err != nil || d == "" {
		if err != nil && !errors.Is(err, ErrNotFound) {
			e.logger.Debug("character reading lookup failed", "char", c, "error", err)
		}
		return c
	}
	return d
}

// longDesc returns the explanatory reading of r in loc, or the character
// itself when none is available.
func (e *Engine) longDesc(loc string, r rune) string {
	c := string(r)
	if e.lookup == nil {
		return c
	}
	lang := "ja"
	if r < utf8.RuneSelf && loc != "ja" {
		lang = loc
	}
	descs, err := e.lookup.LongDescription(lang, c)
	if err != nil || len(descs) == 0 {
		if err != nil && !errors.Is(err, ErrNotFound) {
			e.logger.Debug("long description lookup failed", "locale", lang, "char", c, "error", err)
		}
		return c
	}
	return strings.Join(descs, "  ")
}
