package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(rune) bool
		yes  string
		no   string
	}{
		{"hiragana", IsZenkakuHiragana, "ぁあんゞ゛", "アaー漢"},
		{"katakana", IsZenkakuKatakana, "ァアンヶヾ", "ーあｱ漢"},
		{"hankaku katakana", IsHankakuKatakana, "ｦｱﾝｰ｡｢｣､", "･アa"},
		{"half shape", IsHalfShape, "!Az~0\x7f", " \tＡあ"},
		{"full alphabet", IsFullShapeAlphabet, "ＡＺａｚ", "Aa０"},
		{"half alphabet", IsHalfShapeAlphabet, "AZaz", "Ａ0@["},
		{"full number", IsFullShapeNumber, "０９", "0Ａ"},
		{"half number", IsHalfShapeNumber, "09", "０a"},
		{"full symbol", IsFullShapeSymbol, "　、。ー！＠゛", "!あ漢"},
		{"upper", IsUpper, "AZＡＺ", "azａｚ0"},
		{"kana", IsKanaCharacter, "あアｱ", "ー漢a"},
		{"latin", IsLatinCharacter, "aＡ", "0あ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.yes {
				assert.True(t, tt.fn(r), "%q (U+%04X)", r, r)
			}
			for _, r := range tt.no {
				assert.False(t, tt.fn(r), "%q (U+%04X)", r, r)
			}
		})
	}
}

func TestUnknownCharacterMatchesNothing(t *testing.T) {
	preds := []func(rune) bool{
		IsZenkakuHiragana, IsZenkakuKatakana, IsHankakuKatakana, IsHalfShape,
		IsFullShapeAlphabet, IsHalfShapeAlphabet, IsFullShapeNumber,
		IsHalfShapeNumber, IsFullShapeSymbol, IsUpper,
	}
	for _, r := range "漢😀" {
		for i, p := range preds {
			assert.False(t, p(r), "predicate %d matched %q", i, r)
		}
	}
}

func TestLongVowelMarkIsNotKatakana(t *testing.T) {
	assert.False(t, IsZenkakuKatakana(LongVowelMark))
	assert.True(t, IsFullShapeSymbol(LongVowelMark))
}

func TestBuildAttr(t *testing.T) {
	tests := []struct {
		name         string
		r            rune
		capAnnounced bool
		forBraille   bool
		want         CharAttr
	}{
		{"half upper", 'A', false, false, CharAttr{Upper: true, HalfWidth: true, Latin: true}},
		{"half lower", 'a', false, false, CharAttr{HalfWidth: true, Latin: true}},
		{"cap announced", 'A', true, false, CharAttr{HalfWidth: true, Latin: true}},
		{"braille", 'A', false, true, CharAttr{HalfWidth: true}},
		{"full upper", 'Ａ', false, false, CharAttr{Upper: true, FullWidth: true, Latin: true}},
		{"full digit", '１', false, false, CharAttr{FullWidth: true}},
		{"hiragana", 'あ', false, false, CharAttr{Hiragana: true}},
		{"katakana", 'ア', false, false, CharAttr{Katakana: true}},
		{"hankaku", 'ｱ', false, false, CharAttr{HalfWidth: true}},
		{"long vowel", 'ー', false, false, CharAttr{FullWidth: true}},
		{"kanji", '漢', false, false, CharAttr{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildAttr(tt.r, tt.capAnnounced, tt.forBraille))
		})
	}
}

func TestIsNeutral(t *testing.T) {
	assert.True(t, CharAttr{}.IsNeutral())
	assert.True(t, CharAttr{Latin: true}.IsNeutral())
	assert.False(t, CharAttr{Upper: true}.IsNeutral())
	assert.False(t, BuildAttr('あ', false, false).IsNeutral())
}

func TestSpecialSets(t *testing.T) {
	for _, r := range "っッｯゎヵ" {
		assert.True(t, IsSmallKana(r), "%q", r)
	}
	assert.False(t, IsSmallKana('つ'))
	assert.False(t, IsSmallKana('ー'))

	for _, r := range "をヲｦはへーっ" {
		assert.True(t, IsSpecialKana(r), "%q", r)
	}
	assert.False(t, IsSpecialKana('ほ'))
	assert.NotContains(t, FixNewTextChars, "っ")
	assert.Contains(t, FixNewTextChars, "ー")
}
