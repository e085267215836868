// Package tokenizer splits text into an ordered sequence of word-like and symbol runs.
package tokenizer

import "strings"
import "unicode"

// Run is a maximal substring of the input of a single kind.
type Run struct {
	Text string
	Word bool
}

// IsWordRune reports whether r starts or continues a word-like run. Combining
// marks are not word runes, text is expected in composed form.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Split partitions text into runs. A word-like run starts at a word rune and
// extends over word runes and spaces; anything else forms a symbol run. Joining
// the Text of all runs reproduces text.
func Split(text string) (runs []Run) {
	var start int
	var word bool
	for i, r := range text {
		switch {
		case IsWordRune(r):
			if !word {
				if i > start {
					runs = append(runs, Run{Text: text[start:i]})
				}
				start, word = i, true
			}
		case r == ' ' && word:
		default:
			if word {
				runs = append(runs, Run{Text: text[start:i], Word: true})
				start, word = i, false
			}
		}
	}
	if len(text) > start {
		runs = append(runs, Run{Text: text[start:], Word: word})
	}
	return
}

// Join concatenates the text of runs.
func Join(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
