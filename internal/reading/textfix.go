package reading

import (
	"strings"

	"github.com/f3rmion/kanaspell/internal/charclass"
)

// hiraganaToKatakana is the distance between the two kana blocks.
const hiraganaToKatakana = 0x60

// HiraganaRunToKatakana converts text to katakana when every character is
// full-width hiragana. Any other text is returned unchanged.
func HiraganaRunToKatakana(text string) string {
	if text == "" {
		return text
	}
	for _, r := range text {
		if !charclass.IsZenkakuHiragana(r) {
			return text
		}
	}
	runes := []rune(text)
	for i, r := range runes {
		runes[i] = r + hiraganaToKatakana
	}
	return string(runes)
}

// ExpandSpecialCharacters replaces every small katakana and long vowel mark
// in text with its space padded short description. Candidate (IME preview)
// text is returned unchanged.
func (e *Engine) ExpandSpecialCharacters(text string, isCandidate bool) string {
	if isCandidate {
		return text
	}
	return e.expandSpecial(e.Locale(), text)
}

func (e *Engine) expandSpecial(loc, text string) string {
	for _, c := range charclass.FixNewTextChars {
		if !strings.ContainsRune(text, c) {
			continue
		}
		text = strings.ReplaceAll(text, string(c), " "+e.shortDesc(loc, c)+" ")
	}
	return text
}

// FixNewText prepares newly entered text for speech: an all-hiragana run is
// read as katakana, then special characters are expanded unless the text is
// an input candidate.
func (e *Engine) FixNewText(text string, isCandidate bool) string {
	e.logger.Debug("fix new text", "text", text)
	if k := HiraganaRunToKatakana(text); k != text {
		e.logger.Debug("convert hiragana to katakana", "text", k)
		text = k
	}
	if isCandidate {
		return text
	}
	return e.expandSpecial(e.Locale(), text)
}
