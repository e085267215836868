// Package predictor adapts a fixed-length sequence model to guessing the accented
// form of a word window.
package predictor

import "strings"

import "github.com/pkg/errors"

import "github.com/neurlang/accent/alphabet"
import "github.com/neurlang/accent/codec"
import "github.com/neurlang/accent/ngram"
import "github.com/neurlang/accent/parallel"

// ErrMalformedPrediction is returned when the model output does not have the
// batch size or the MaxLen x alphabet size shape of its input.
var ErrMalformedPrediction = errors.New("malformed prediction")

// Model is the sequence model. For each one-hot encoded input of the batch it
// returns, per position, a probability distribution over the alphabet.
type Model interface {
	Predict(batch []codec.Matrix) ([]codec.Matrix, error)
}

// ModelFunc adapts a function to the Model interface.
type ModelFunc func(batch []codec.Matrix) ([]codec.Matrix, error)

// Predict calls f.
func (f ModelFunc) Predict(batch []codec.Matrix) ([]codec.Matrix, error) {
	return f(batch)
}

// Predictor guesses accented windows. It is safe for concurrent use if the Model is.
type Predictor struct {
	codec  *codec.Codec
	model  Model
	invert bool
}

// New creates a predictor. invert must match the convention the model was trained with.
func New(c *codec.Codec, m Model, invert bool) *Predictor {
	return &Predictor{codec: c, model: m, invert: invert}
}

// Codec returns the codec of the predictor.
func (p *Predictor) Codec() *codec.Codec {
	return p.codec
}

// Guess predicts the accented form of window.
func (p *Predictor) Guess(window string) (string, error) {
	input, err := p.codec.Encode(p.codec.Fit(window, p.invert))
	if err != nil {
		return "", errors.Wrapf(err, "guess %q", window)
	}
	preds, err := p.model.Predict([]codec.Matrix{input})
	if err != nil {
		return "", errors.Wrapf(err, "guess %q: model", window)
	}
	if err := p.check(preds, 1); err != nil {
		return "", errors.Wrapf(err, "guess %q", window)
	}
	text, err := p.codec.Decode(codec.Argmax(preds[0]))
	if err != nil {
		return "", errors.Wrapf(err, "guess %q", window)
	}
	return Clean(text), nil
}

// GuessAll guesses every window using up to threads goroutines. The guesses are
// returned in window order.
func (p *Predictor) GuessAll(w ngram.Windows, threads int) ([]string, error) {
	var guesses = make([]string, w.Len())
	err := parallel.ForEachErr(w.Len(), threads, func(i int) (err error) {
		guesses[i], err = p.Guess(w.Get(i))
		return
	})
	if err != nil {
		return nil, err
	}
	return guesses, nil
}

func (p *Predictor) check(preds []codec.Matrix, batch int) error {
	if len(preds) != batch {
		return errors.Wrapf(ErrMalformedPrediction, "batch of %d, want %d", len(preds), batch)
	}
	for _, m := range preds {
		if len(m) != p.codec.MaxLen() {
			return errors.Wrapf(ErrMalformedPrediction, "%d positions, want %d", len(m), p.codec.MaxLen())
		}
		for pos, row := range m {
			if len(row) != p.codec.Alphabet().Len() {
				return errors.Wrapf(ErrMalformedPrediction, "position %d has %d classes, want %d",
					pos, len(row), p.codec.Alphabet().Len())
			}
		}
	}
	return nil
}

// Clean trims padding sentinels from both ends of a decoded prediction and cuts it
// at the first sentinel left inside, where the model ended the content early.
func Clean(text string) string {
	text = strings.Trim(text, string(alphabet.Pad))
	if i := strings.IndexRune(text, alphabet.Pad); i >= 0 {
		text = text[:i]
	}
	return text
}
