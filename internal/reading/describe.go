package reading

import (
	"strings"

	"github.com/f3rmion/kanaspell/internal/charclass"
)

// CharDescription is the breakdown of one character of a text.
type CharDescription struct {
	Char        string             `json:"char"`
	Code        rune               `json:"code"`
	Hex         string             `json:"hex"`
	Attr        charclass.CharAttr `json:"attr"`
	Labels      string             `json:"labels"`
	Description string             `json:"description"`
}

// Describe breaks text into per-character descriptions in the active locale.
func (e *Engine) Describe(text string, opts ReadingOptions) []CharDescription {
	loc := e.Locale()
	labels := e.LabelsFor(loc)

	var out []CharDescription
	for _, r := range text {
		a := charclass.BuildAttr(r, opts.CapAnnounced, opts.ForBraille)
		out = append(out, CharDescription{
			Char:        string(r),
			Code:        r,
			Hex:         CodeToHex(r),
			Attr:        a,
			Labels:      attrDesc(labels, a),
			Description: strings.TrimSpace(e.describe(loc, r, a, opts.ForBraille)),
		})
	}
	return out
}
