package reading

import (
	"unicode/utf8"

	"github.com/f3rmion/kanaspell/internal/charclass"
)

// DescribeCandidate returns the spoken description of r given its
// attributes. The result is never empty. Descriptions longer than one
// character are padded with a space on each side.
func (e *Engine) DescribeCandidate(r rune, attr charclass.CharAttr, forBraille bool) string {
	return e.describe(e.Locale(), r, attr, forBraille)
}

func (e *Engine) describe(loc string, r rune, attr charclass.CharAttr, forBraille bool) string {
	c := string(r)
	var d string

	switch {
	case forBraille && rendersAsGlyph(r):
		d = c
		e.logger.Debug("braille", "char", c)
	case attr.HalfWidth || charclass.IsFullShapeAlphabet(r) || charclass.IsFullShapeNumber(r) || charclass.IsFullShapeSymbol(r):
		d = e.shortDesc(loc, r)
		e.logger.Debug("shortdesc", "char", c, "desc", d)
	case attr.Hiragana || attr.Katakana:
		d = c
		if charclass.IsSpecialKana(r) {
			d = e.shortDesc(loc, r)
		}
		e.logger.Debug("kana", "char", c, "desc", d)
	default:
		d = e.longDesc(loc, r)
		if d != c {
			e.logger.Debug("longdesc", "char", c, "desc", d)
			break
		}
		if sym := e.symbol("ja", c); sym != c {
			d = sym
			e.logger.Debug("sym", "char", c, "desc", d)
			break
		}
		d = CodeToHex(r)
		e.logger.Debug("code", "char", c, "desc", d)
	}

	if d == "" {
		d = c
	}
	if utf8.RuneCountInString(d) > 1 {
		return " " + d + " "
	}
	return d
}

// rendersAsGlyph reports whether braille output shows r unchanged.
func rendersAsGlyph(r rune) bool {
	return charclass.IsLatinCharacter(r) ||
		charclass.IsZenkakuHiragana(r) ||
		charclass.IsZenkakuKatakana(r) ||
		charclass.IsFullShapeNumber(r) ||
		charclass.IsHalfShapeNumber(r) ||
		r == '．'
}
