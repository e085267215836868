package alphabet

import "sort"
import "strings"

import "github.com/pkg/errors"

// Pad is the padding sentinel marking unused trailing capacity of a fixed-length string.
const Pad = '\x00'

// ErrNoPad is returned when an alphabet lacks the padding sentinel.
var ErrNoPad = errors.New("alphabet has no padding sentinel")

// Alphabet is a closed set of runes with a stable rune to index mapping.
// It is immutable once constructed.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// New builds an alphabet from the runes of chars. Indices follow code point order,
// so the same set always yields the same mapping regardless of input order.
func New(chars string) (*Alphabet, error) {
	var a = &Alphabet{index: make(map[rune]int)}
	for _, r := range chars {
		if _, ok := a.index[r]; ok {
			return nil, errors.Errorf("alphabet: duplicate character %q", r)
		}
		a.index[r] = -1
		a.runes = append(a.runes, r)
	}
	if _, ok := a.index[Pad]; !ok {
		return nil, ErrNoPad
	}
	sort.Slice(a.runes, func(i, j int) bool { return a.runes[i] < a.runes[j] })
	for i, r := range a.runes {
		a.index[r] = i
	}
	return a, nil
}

// Must is like New but panics on error.
func Must(chars string) *Alphabet {
	a, err := New(chars)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// DefaultChars returns the default character set: the sentinel, space, underscore,
// lowercase ascii letters, digits and every accented key of accents.
func DefaultChars(accents AccentMap) string {
	var b strings.Builder
	b.WriteRune(Pad)
	b.WriteString(" _abcdefghijklmnopqrstuvwxyz0123456789")
	b.WriteString(accents.Runes())
	return b.String()
}

// Default returns the alphabet over DefaultChars(Vietnamese).
func Default() *Alphabet {
	return Must(DefaultChars(Vietnamese))
}

// Len is the alphabet size.
func (a *Alphabet) Len() int {
	return len(a.runes)
}

// Index returns the index of r, reporting false if r is not in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Rune returns the rune at index i.
func (a *Alphabet) Rune(i int) rune {
	return a.runes[i]
}

// Contains reports whether r belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ContainsAll reports whether every rune of s belongs to the alphabet.
func (a *Alphabet) ContainsAll(s string) bool {
	for _, r := range s {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}

// String returns the runes of the alphabet in index order.
func (a *Alphabet) String() string {
	return string(a.runes)
}
