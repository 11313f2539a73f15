package charclass

import "strings"

// Characters whose spelling reading comes from the symbol dictionary rather
// than from the glyph itself.
const (
	SmallZenKatakana = "ァィゥェォッャュョヮヵヶ"
	SmallKana        = SmallZenKatakana + "ぁぃぅぇぉっゃゅょゎｧｨｩｪｫｬｭｮｯ"
	SpecialKana      = SmallKana + "をヲｦはへー"
	FixNewTextChars  = SmallZenKatakana + "ー"
)

// IsSmallKana reports whether r is a small kana of either width.
func IsSmallKana(r rune) bool {
	return strings.ContainsRune(SmallKana, r)
}

// IsSpecialKana reports whether r needs a dictionary reading when spelled.
func IsSpecialKana(r rune) bool {
	return strings.ContainsRune(SpecialKana, r)
}
