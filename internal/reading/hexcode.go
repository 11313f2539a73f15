package reading

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexTokenRe = regexp.MustCompile(`u\+([0-9a-f]{4})`)

// hexDigits returns the lowest four hex digits of code, zero padded.
// Code points above U+FFFF lose their high digits.
func hexDigits(code rune) string {
	s := fmt.Sprintf("%04x", code)
	return s[len(s)-4:]
}

// CodeToHex renders code as a "u+XXXX" token, e.g. 0x123a -> "u+123a".
func CodeToHex(code rune) string {
	return "u+" + hexDigits(code)
}

// CodeToSpokenDigits reads the hex digits of code one by one,
// e.g. 0x123a -> "イチニーサンエー". 2 and 5 use two-mora readings so they
// are not mistaken for similar sounding digits.
func (e *Engine) CodeToSpokenDigits(code rune) string {
	return e.spokenDigits(e.Locale(), code)
}

func (e *Engine) spokenDigits(loc string, code rune) string {
	var b strings.Builder
	for _, c := range hexDigits(code) {
		switch c {
		case '2':
			b.WriteString("ニー")
		case '5':
			b.WriteString("ゴー")
		default:
			b.WriteString(e.shortDesc(loc, c))
		}
	}
	return b.String()
}

// ExpandHexTokens replaces the payload of every "u+XXXX" token in msg with
// its spoken digits when locale is Japanese. An empty locale means the
// active one. On any failure msg is returned unchanged.
func (e *Engine) ExpandHexTokens(locale, msg string) string {
	if locale == "" {
		locale = e.Locale()
	}
	if !IsJa(locale) {
		return msg
	}

	var failed error
	out := hexTokenRe.ReplaceAllStringFunc(msg, func(tok string) string {
		if failed != nil {
			return tok
		}
		code, err := strconv.ParseUint(strings.TrimPrefix(tok, "u+"), 16, 32)
		if err != nil {
			failed = fmt.Errorf("parsing hex token %q: %w", tok, err)
			return tok
		}
		return "u+" + e.spokenDigits("ja", rune(code))
	})
	if failed != nil {
		e.logger.Debug("hex token expansion failed", "error", failed)
		return msg
	}
	return out
}
