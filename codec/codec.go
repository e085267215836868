// Package codec encodes fixed-length strings into one-hot matrices over an alphabet
// and decodes alphabet indices back into strings.
package codec

import "fmt"
import "strings"
import "unicode/utf8"

import "github.com/pkg/errors"

import "github.com/neurlang/accent/alphabet"

// ErrUnsupportedCharacter is the cause of every *UnsupportedCharacterError.
var ErrUnsupportedCharacter = errors.New("unsupported character")

// ErrLength is returned when a string to encode is not exactly MaxLen runes long.
var ErrLength = errors.New("string length differs from codec length")

// UnsupportedCharacterError reports a rune outside the alphabet.
type UnsupportedCharacterError struct {
	Rune     rune
	Position int
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrUnsupportedCharacter, e.Rune, e.Position)
}

// Cause makes errors.Cause return ErrUnsupportedCharacter.
func (e *UnsupportedCharacterError) Cause() error {
	return ErrUnsupportedCharacter
}

// Matrix holds one row per character position, each row a distribution over the alphabet.
type Matrix [][]float32

// Codec converts between strings of MaxLen runes and matrices over an alphabet.
type Codec struct {
	alphabet *alphabet.Alphabet
	maxlen   int
}

// New creates a codec for strings of maxlen runes.
func New(a *alphabet.Alphabet, maxlen int) (*Codec, error) {
	if a == nil {
		return nil, errors.New("codec: nil alphabet")
	}
	if maxlen <= 0 {
		return nil, errors.Errorf("codec: invalid length %d", maxlen)
	}
	return &Codec{alphabet: a, maxlen: maxlen}, nil
}

// Alphabet returns the alphabet of the codec.
func (c *Codec) Alphabet() *alphabet.Alphabet {
	return c.alphabet
}

// MaxLen returns the fixed string length in runes.
func (c *Codec) MaxLen() int {
	return c.maxlen
}

// Fit right pads s with the padding sentinel or truncates it to MaxLen runes, then
// reverses it if invert is set.
func (c *Codec) Fit(s string, invert bool) string {
	var rs = make([]rune, 0, c.maxlen)
	for _, r := range s {
		if len(rs) == c.maxlen {
			break
		}
		rs = append(rs, r)
	}
	for len(rs) < c.maxlen {
		rs = append(rs, alphabet.Pad)
	}
	if invert {
		reverse(rs)
	}
	return string(rs)
}

// Encode returns one one-hot row per rune of s. The caller fits s to MaxLen beforehand.
func (c *Codec) Encode(s string) (Matrix, error) {
	if n := utf8.RuneCountInString(s); n != c.maxlen {
		return nil, errors.Wrapf(ErrLength, "encode: got %d runes, want %d", n, c.maxlen)
	}
	var m = make(Matrix, 0, c.maxlen)
	var pos int
	for _, r := range s {
		i, ok := c.alphabet.Index(r)
		if !ok {
			return nil, &UnsupportedCharacterError{Rune: r, Position: pos}
		}
		var row = make([]float32, c.alphabet.Len())
		row[i] = 1
		m = append(m, row)
		pos++
	}
	return m, nil
}

// Decode maps each alphabet index back to its rune.
func (c *Codec) Decode(indices []int) (string, error) {
	var b strings.Builder
	for pos, i := range indices {
		if i < 0 || i >= c.alphabet.Len() {
			return "", errors.Errorf("decode: index %d at position %d outside alphabet of %d", i, pos, c.alphabet.Len())
		}
		b.WriteRune(c.alphabet.Rune(i))
	}
	return b.String(), nil
}

// DecodeDistribution reduces every row of m to its most probable index and decodes
// the result.
func (c *Codec) DecodeDistribution(m Matrix) (string, error) {
	for pos, row := range m {
		if len(row) != c.alphabet.Len() {
			return "", errors.Errorf("decode: row %d has %d columns, want %d", pos, len(row), c.alphabet.Len())
		}
	}
	return c.Decode(Argmax(m))
}

// Argmax returns the index of the highest value of each row. Ties go to the lowest index.
func Argmax(m Matrix) []int {
	var out = make([]int, len(m))
	for pos, row := range m {
		var best int
		for i := range row {
			if row[i] > row[best] {
				best = i
			}
		}
		out[pos] = best
	}
	return out
}

func reverse(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
