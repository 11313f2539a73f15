package reading

import (
	"strings"

	"github.com/f3rmion/kanaspell/internal/charclass"
)

// ReadingOptions controls DiscriminantReading.
type ReadingOptions struct {
	AttrOnly     bool // emit only the attribute labels
	CapAnnounced bool // capitals are already announced by the caller
	ForBraille   bool // render for a braille display instead of speech
}

// charInfo pairs a character with its attribute vector.
type charInfo struct {
	r    rune
	attr charclass.CharAttr
}

// AttrDesc returns the attribute label text of a in the active locale.
func (e *Engine) AttrDesc(a charclass.CharAttr) string {
	return attrDesc(e.LabelsFor(e.Locale()), a)
}

func attrDesc(l Labels, a charclass.CharAttr) string {
	var d []string
	if a.Hiragana {
		d = append(d, l.Hiragana)
	}
	if a.Katakana {
		d = append(d, l.Katakana)
	}
	if a.HalfWidth {
		d = append(d, l.HalfWidth)
	}
	if a.FullWidth {
		d = append(d, l.FullWidth)
	}
	if a.Latin {
		d = append(d, l.Latin)
	}
	if a.Upper {
		d = append(d, l.Upper)
	}
	return strings.Join(d, " ")
}

// useAttrDesc reports whether entering a new attribute group at cur should
// be announced. Groups next to the long vowel mark are never announced.
func useAttrDesc(prev, cur rune, attr charclass.CharAttr) bool {
	if prev == charclass.LongVowelMark || cur == charclass.LongVowelMark {
		return false
	}
	return !attr.IsNeutral()
}

// DiscriminantReading spells text one character at a time, announcing an
// attribute label whenever the kind of character changes.
func (e *Engine) DiscriminantReading(text string, opts ReadingOptions) string {
	if text == "" {
		return ""
	}
	loc := e.Locale()
	labels := e.LabelsFor(loc)

	chars := make([]charInfo, 0, len(text))
	for _, r := range text {
		a := charclass.BuildAttr(r, opts.CapAnnounced, opts.ForBraille)
		e.logger.Debug("attr", "char", string(r), "attr", attrDesc(labels, a))
		chars = append(chars, charInfo{r: r, attr: a})
	}

	if opts.AttrOnly {
		descs := make([]string, len(chars))
		for i, c := range chars {
			descs[i] = attrDesc(labels, c.attr)
		}
		return strings.Join(descs, " ")
	}

	var b strings.Builder
	var prevAttr *charclass.CharAttr
	var prev rune
	for i := range chars {
		c := chars[i]
		if prevAttr != nil && *prevAttr == c.attr {
			b.WriteString(e.describe(loc, c.r, c.attr, opts.ForBraille))
		} else {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			if useAttrDesc(prev, c.r, c.attr) {
				b.WriteString(attrDesc(labels, c.attr))
				b.WriteByte(' ')
			}
			b.WriteString(e.describe(loc, c.r, c.attr, opts.ForBraille))
		}
		prevAttr = &chars[i].attr
		prev = c.r
	}

	return collapseSpaces(b.String())
}

// collapseSpaces squeezes runs of spaces to one and trims the ends.
func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.Trim(s, " ")
}

// Spell returns the discriminant reading of text with default options.
func (e *Engine) Spell(text string) string {
	return e.DiscriminantReading(text, ReadingOptions{})
}
