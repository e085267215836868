// Package ngram generates overlapping fixed-size word windows over a phrase.
package ngram

import "strings"

// Windows is the restartable, left to right sequence of n-word windows of a phrase.
// Window i starts at word Offset(i), which is negative for the padded windows at
// the start of the phrase.
type Windows struct {
	words []string
	n     int
	first int
	count int
}

// New lowercases phrase, splits it on whitespace and prepares its windows of n words.
// With pad set, windows start at words -(n-1) through len(words)-1, so each word
// appears in exactly n windows. Without pad, windows start at 0 through len(words)-n;
// a phrase shorter than n then still gets a single window starting at word 0.
func New(phrase string, n int, pad bool) Windows {
	var w = Windows{words: strings.Fields(strings.ToLower(phrase)), n: n}
	if n <= 0 || len(w.words) == 0 {
		return w
	}
	if pad {
		w.first = -(n - 1)
		w.count = len(w.words) + n - 1
	} else if len(w.words) < n {
		w.count = 1
	} else {
		w.count = len(w.words) - n + 1
	}
	return w
}

// Len is the number of windows.
func (w Windows) Len() int {
	return w.count
}

// N is the number of words per window.
func (w Windows) N() int {
	return w.n
}

// Words returns the words of the phrase.
func (w Windows) Words() []string {
	return w.words
}

// Offset returns the index of the first word of window i within the phrase.
func (w Windows) Offset(i int) int {
	return w.first + i
}

// Slice returns the n words of window i, empty strings standing for positions
// outside the phrase.
func (w Windows) Slice(i int) []string {
	var out = make([]string, w.n)
	for j := range out {
		if k := w.Offset(i) + j; k >= 0 && k < len(w.words) {
			out[j] = w.words[k]
		}
	}
	return out
}

// Get returns window i with its words joined by single spaces.
func (w Windows) Get(i int) string {
	return strings.Join(w.Slice(i), " ")
}

// ForEach calls yield with every window in order.
func (w Windows) ForEach(yield func(i int, window string)) {
	for i := 0; i < w.Len(); i++ {
		yield(i, w.Get(i))
	}
}
