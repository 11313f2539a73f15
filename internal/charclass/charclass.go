// Package charclass classifies single characters of Japanese and mixed-script text.
//
// Every predicate is a pure function of one rune. Ranges are explicit
// inclusive tables tested with unicode.Is, so the result never depends on
// the process locale.
package charclass

import (
	"strings"
	"unicode"
)

// LongVowelMark is the katakana prolonged sound mark (chōon).
const LongVowelMark = 'ー'

var (
	zenkakuHiragana = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x3041, Hi: 0x309e, Stride: 1}, // ぁ-ゞ
		},
	}

	zenkakuKatakana = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x30a1, Hi: 0x30fe, Stride: 1}, // ァ-ヾ
		},
	}

	hankakuKatakana = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0xff61, Hi: 0xff64, Stride: 1}, // ｡｢｣､
			{Lo: 0xff66, Hi: 0xff9d, Stride: 1}, // ｦ-ﾝ, includes ｰ
		},
	}

	fullShapeAlphabet = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0xff21, Hi: 0xff3a, Stride: 1}, // Ａ-Ｚ
			{Lo: 0xff41, Hi: 0xff5a, Stride: 1}, // ａ-ｚ
		},
	}

	halfShapeAlphabet = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 'A', Hi: 'Z', Stride: 1},
			{Lo: 'a', Hi: 'z', Stride: 1},
		},
		LatinOffset: 2,
	}

	fullShapeNumber = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0xff10, Hi: 0xff19, Stride: 1}, // ０-９
		},
	}

	halfShapeNumber = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: '0', Hi: '9', Stride: 1},
		},
		LatinOffset: 1,
	}

	upperCase = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 'A', Hi: 'Z', Stride: 1},
			{Lo: 0xff21, Hi: 0xff3a, Stride: 1}, // Ａ-Ｚ
		},
		LatinOffset: 1,
	}
)

// fullShapeSymbols lists the full-width punctuation and symbols that are
// announced as "full shaped". The long vowel mark is deliberately a member.
const fullShapeSymbols = "　、。，．・：；？！´｀¨＾￣＿ー―／＼～∥｜‘’“”（）〔〕［］「」｛｝〈〉＋－＝＜＞￥＄％＃＆＊＠＇＂゙゚゛゜"

// IsZenkakuHiragana reports whether r is in the full-width hiragana block.
func IsZenkakuHiragana(r rune) bool {
	return unicode.Is(zenkakuHiragana, r)
}

// IsZenkakuKatakana reports whether r is a full-width katakana letter.
// The long vowel mark is excluded: it behaves like punctuation.
func IsZenkakuKatakana(r rune) bool {
	if r == LongVowelMark {
		return false
	}
	return unicode.Is(zenkakuKatakana, r)
}

// IsHankakuKatakana reports whether r is half-width katakana or one of the
// half-width marks used with it.
func IsHankakuKatakana(r rune) bool {
	return unicode.Is(hankakuKatakana, r)
}

// IsHalfShape reports whether r is printable ASCII other than space.
func IsHalfShape(r rune) bool {
	return 32 < r && r < 128
}

// IsFullShapeAlphabet reports whether r is a full-width Latin letter.
func IsFullShapeAlphabet(r rune) bool {
	return unicode.Is(fullShapeAlphabet, r)
}

// IsHalfShapeAlphabet reports whether r is an ASCII letter.
func IsHalfShapeAlphabet(r rune) bool {
	return unicode.Is(halfShapeAlphabet, r)
}

// IsFullShapeNumber reports whether r is a full-width digit.
func IsFullShapeNumber(r rune) bool {
	return unicode.Is(fullShapeNumber, r)
}

// IsHalfShapeNumber reports whether r is an ASCII digit.
func IsHalfShapeNumber(r rune) bool {
	return unicode.Is(halfShapeNumber, r)
}

// IsFullShapeSymbol reports whether r is one of the fixed full-width symbols.
func IsFullShapeSymbol(r rune) bool {
	return strings.ContainsRune(fullShapeSymbols, r)
}

// IsUpper reports whether r is an upper case Latin letter of either width.
func IsUpper(r rune) bool {
	return unicode.Is(upperCase, r)
}

// IsKanaCharacter reports whether r is hiragana, katakana or half-width katakana.
func IsKanaCharacter(r rune) bool {
	return IsZenkakuHiragana(r) || IsZenkakuKatakana(r) || IsHankakuKatakana(r)
}

// IsLatinCharacter reports whether r is a Latin letter of either width.
func IsLatinCharacter(r rune) bool {
	return IsFullShapeAlphabet(r) || IsHalfShapeAlphabet(r)
}
