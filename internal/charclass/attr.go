package charclass

// CharAttr is the attribute vector of one character. It is comparable and
// is used as the grouping key when building a discriminant reading.
// Fields are not mutually exclusive: Ａ sets FullWidth, Latin and Upper.
type CharAttr struct {
	Upper     bool `json:"upper" yaml:"upper"`
	Hiragana  bool `json:"hiragana" yaml:"hiragana"`
	Katakana  bool `json:"katakana" yaml:"katakana"`
	HalfWidth bool `json:"half_width" yaml:"half_width"`
	FullWidth bool `json:"full_width" yaml:"full_width"`
	Latin     bool `json:"latin" yaml:"latin"`
}

// BuildAttr computes the attribute vector of r.
//
// Upper is suppressed when the caller already announces capitals or the
// output is braille; Latin is suppressed for braille.
func BuildAttr(r rune, capAnnounced, forBraille bool) CharAttr {
	return CharAttr{
		Upper:     IsUpper(r) && !capAnnounced && !forBraille,
		Hiragana:  IsZenkakuHiragana(r),
		Katakana:  IsZenkakuKatakana(r),
		HalfWidth: IsHalfShape(r) || IsHankakuKatakana(r),
		FullWidth: IsFullShapeAlphabet(r) || IsFullShapeNumber(r) || IsFullShapeSymbol(r),
		Latin:     IsLatinCharacter(r) && !forBraille,
	}
}

// IsNeutral reports whether the attributes never warrant a spoken label.
// Latin alone does not count.
func (a CharAttr) IsNeutral() bool {
	return !(a.HalfWidth || a.Upper || a.Hiragana || a.Katakana || a.FullWidth)
}
