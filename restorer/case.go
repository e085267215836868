package restorer

import "unicode"

// CaseMask records, per rune of a text, whether the rune was uppercase.
type CaseMask []bool

// NewCaseMask records the case of every rune of text.
func NewCaseMask(text string) CaseMask {
	var mask CaseMask
	for _, r := range text {
		mask = append(mask, unicode.IsUpper(r))
	}
	return mask
}

// Apply uppercases rune k of text when rune k of the recorded text was uppercase.
// Runes of text past the end of the mask are left unchanged.
func (m CaseMask) Apply(text string) string {
	var rs = []rune(text)
	for k := range rs {
		if k >= len(m) {
			break
		}
		if m[k] {
			rs[k] = unicode.ToUpper(rs[k])
		}
	}
	return string(rs)
}
