package lexicon

import "bufio"
import "io"
import "os"
import "strings"

import "github.com/klauspost/compress/zstd"
import "github.com/neurlang/quaternary"
import "github.com/pkg/errors"
import "golang.org/x/text/unicode/norm"

import "github.com/neurlang/accent/alphabet"
import "github.com/neurlang/accent/codec"
import "github.com/neurlang/accent/hash"
import "github.com/neurlang/accent/tokenizer"

// context weights of the candidate score
const (
	leftWeight  = 4
	rightWeight = 2
)

// salts of the context hashes
const (
	leftSalt  = 0
	rightSalt = 1
)

// Lexicon is a predictor.Model backed by word statistics. It is read-only after
// loading and safe for concurrent use.
type Lexicon struct {
	codec   *codec.Codec
	accents alphabet.AccentMap
	invert  bool

	// candidates lists the accented forms of each base word in first seen order
	candidates map[string][]string
	// unigram counts each accented form
	unigram map[string]uint32
	// left counts (previous accented word, form) pairs
	left map[uint32]uint32
	// right counts (form, next base word) pairs
	right map[uint32]uint32

	// contextual is a quaternary filter telling if the context of an ambiguous base
	// word can ever overturn its most frequent form
	contextual quaternary.Filter
	// prevs and nexts collect the contexts of each form until the filter is built
	prevs, nexts map[string]map[string]struct{}

	lines, skipped int
}

// Load reads a corpus file. Files ending in .zst are zstd compressed.
func Load(filename string, c *codec.Codec, accents alphabet.AccentMap, invert bool) (*Lexicon, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "lexicon")
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(filename, ".zst") {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, errors.Wrapf(err, "lexicon %s", filename)
		}
		defer dec.Close()
		r = dec
	}
	l, err := Read(r, c, accents, invert)
	return l, errors.Wrapf(err, "lexicon %s", filename)
}

// Read reads a corpus. Each line holds either accented text, or unaccented text, a
// tab and the same text accented. Lines whose two columns disagree are skipped, as
// are phrases with characters the codec cannot encode.
func Read(r io.Reader, c *codec.Codec, accents alphabet.AccentMap, invert bool) (*Lexicon, error) {
	var l = &Lexicon{
		codec:      c,
		accents:    accents,
		invert:     invert,
		candidates: make(map[string][]string),
		unigram:    make(map[string]uint32),
		left:       make(map[uint32]uint32),
		right:      make(map[uint32]uint32),
		prevs:      make(map[string]map[string]struct{}),
		nexts:      make(map[string]map[string]struct{}),
	}
	err := loop(r, func(columns []string) {
		l.lines++
		var accented string
		switch len(columns) {
		case 1:
			accented = columns[0]
		case 2:
			accented = columns[1]
			if l.normalize(columns[0]) != accents.RemoveAccent(l.normalize(accented)) {
				l.skipped++
				return
			}
		default:
			l.skipped++
			return
		}
		for _, run := range tokenizer.Split(l.normalize(accented)) {
			if run.Word {
				l.learn(strings.Fields(run.Text))
			}
		}
	})
	if err != nil {
		return nil, err
	}
	l.build()
	return l, nil
}

func loop(r io.Reader, do func(columns []string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		do(strings.Split(line, "\t"))
	}
	return scanner.Err()
}

func (l *Lexicon) normalize(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

func (l *Lexicon) learn(words []string) {
	for _, word := range words {
		if !l.codec.Alphabet().ContainsAll(word) {
			l.skipped++
			return
		}
	}
	for i, word := range words {
		base := l.accents.RemoveAccent(word)
		if l.unigram[word] == 0 {
			l.candidates[base] = append(l.candidates[base], word)
		}
		l.unigram[word]++

		var prev, next string
		if i > 0 {
			prev = words[i-1]
		}
		if i+1 < len(words) {
			next = l.accents.RemoveAccent(words[i+1])
		}
		l.left[leftKey(prev, word)]++
		l.right[rightKey(word, next)]++
		see(l.prevs, word, prev)
		see(l.nexts, word, next)
	}
}

func see(contexts map[string]map[string]struct{}, form, context string) {
	if contexts[form] == nil {
		contexts[form] = make(map[string]struct{})
	}
	contexts[form][context] = struct{}{}
}

func leftKey(prev, form string) uint32 {
	return hash.StringsHash(leftSalt, []string{prev, form})
}

func rightKey(form, next string) uint32 {
	return hash.StringsHash(rightSalt, []string{form, next})
}

func (l *Lexicon) build() {
	var dataset = make(map[string]bool)
	for base, forms := range l.candidates {
		if len(forms) > 1 {
			dataset[base] = l.overturnable(forms)
		}
	}
	l.contextual = quaternary.MakeString(dataset)
	l.prevs, l.nexts = nil, nil
}

// frequent returns the most frequent form, the first seen one on ties.
func (l *Lexicon) frequent(forms []string) string {
	var best = forms[0]
	for _, form := range forms[1:] {
		if l.unigram[form] > l.unigram[best] {
			best = form
		}
	}
	return best
}

// overturnable reports whether some previous and next word let another form score
// at least as high as the most frequent one. Left and right scores are independent,
// so each is maximized on its own; a context never seen with a form adds nothing.
func (l *Lexicon) overturnable(forms []string) bool {
	var top = l.frequent(forms)
	for _, form := range forms {
		if form == top {
			continue
		}
		var gain = int64(l.unigram[form]) - int64(l.unigram[top])
		var left, right int64
		for prev := range l.prevs[form] {
			if d := int64(l.left[leftKey(prev, form)]) - int64(l.left[leftKey(prev, top)]); d > left {
				left = d
			}
		}
		for next := range l.nexts[form] {
			if d := int64(l.right[rightKey(form, next)]) - int64(l.right[rightKey(top, next)]); d > right {
				right = d
			}
		}
		if gain+leftWeight*left+rightWeight*right >= 0 {
			return true
		}
	}
	return false
}

// Len is the number of known base words.
func (l *Lexicon) Len() int {
	return len(l.candidates)
}

// Lines reports the number of corpus lines read and how many lines or phrases were skipped.
func (l *Lexicon) Lines() (read, skipped int) {
	return l.lines, l.skipped
}

// Forms returns the known accented forms of base in first seen order.
func (l *Lexicon) Forms(base string) []string {
	return l.candidates[base]
}

// Resolve returns the best accented form of base given the accented word before it
// and the base word after it. Unknown words are returned unchanged.
func (l *Lexicon) Resolve(prev, base, next string) string {
	forms := l.candidates[base]
	switch {
	case len(forms) == 0:
		return base
	case len(forms) == 1:
		return forms[0]
	case !l.contextual.GetString(base):
		return l.frequent(forms)
	}
	return l.score(prev, forms, next)
}

// score picks the form with the highest weighted context and unigram count.
func (l *Lexicon) score(prev string, forms []string, next string) string {
	var best string
	var bestScore uint64
	for i, form := range forms {
		score := leftWeight*uint64(l.left[leftKey(prev, form)]) +
			rightWeight*uint64(l.right[rightKey(form, next)]) +
			uint64(l.unigram[form])
		if i == 0 || score > bestScore {
			best, bestScore = form, score
		}
	}
	return best
}

// Restore accents the words of a window. Empty words stand for padding and stay empty.
func (l *Lexicon) Restore(window string) string {
	var words = strings.Split(window, " ")
	var out = make([]string, len(words))
	for i, word := range words {
		if word == "" {
			continue
		}
		var prev, next string
		if i > 0 {
			prev = out[i-1]
		}
		if i+1 < len(words) {
			next = words[i+1]
		}
		out[i] = l.Resolve(prev, word, next)
	}
	return strings.Join(out, " ")
}

// Predict answers each encoded window with the one-hot encoding of its restoration.
func (l *Lexicon) Predict(batch []codec.Matrix) ([]codec.Matrix, error) {
	var out = make([]codec.Matrix, len(batch))
	for i, m := range batch {
		text, err := l.codec.DecodeDistribution(m)
		if err != nil {
			return nil, errors.Wrap(err, "lexicon")
		}
		if l.invert {
			text = l.codec.Fit(text, true)
		}
		window := strings.TrimRight(text, string(alphabet.Pad))
		out[i], err = l.codec.Encode(l.codec.Fit(l.Restore(window), false))
		if err != nil {
			return nil, errors.Wrap(err, "lexicon")
		}
	}
	return out, nil
}
