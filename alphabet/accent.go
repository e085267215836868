package alphabet

import "sort"
import "strings"

// AccentMap maps an accented rune to its unaccented base rune.
type AccentMap map[rune]rune

// Vietnamese maps lowercase Vietnamese letters carrying a diacritic or a tone mark to
// their plain latin base letter.
var Vietnamese = func() AccentMap {
	var m = make(AccentMap)
	for base, accented := range map[rune]string{
		'a': "àáảãạăằắẳẵặâầấẩẫậ",
		'd': "đ",
		'e': "èéẻẽẹêềếểễệ",
		'i': "ìíỉĩị",
		'o': "òóỏõọôồốổỗộơờớởỡợ",
		'u': "ùúủũụưừứửữự",
		'y': "ỳýỷỹỵ",
	} {
		for _, r := range accented {
			m[r] = base
		}
	}
	return m
}()

// Base returns the unaccented base of r, or r itself when r carries no known accent.
func (m AccentMap) Base(r rune) rune {
	if b, ok := m[r]; ok {
		return b
	}
	return r
}

// RemoveAccent replaces every accented rune of s by its base rune. The rune count of
// s is preserved.
func (m AccentMap) RemoveAccent(s string) string {
	return strings.Map(m.Base, s)
}

// Runes returns all accented runes of the map in code point order.
func (m AccentMap) Runes() string {
	var rs = make([]rune, 0, len(m))
	for r := range m {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}
