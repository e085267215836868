package predictor

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/neurlang/accent/alphabet"
	"github.com/neurlang/accent/codec"
	"github.com/neurlang/accent/ngram"
)

func newCodec(t testing.TB) *codec.Codec {
	c, err := codec.New(alphabet.Default(), 16)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// dictModel answers every window from a fixed table, echoing unknown windows.
func dictModel(t testing.TB, c *codec.Codec, invert bool, table map[string]string, calls *int32) Model {
	return ModelFunc(func(batch []codec.Matrix) ([]codec.Matrix, error) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		var out []codec.Matrix
		for _, m := range batch {
			in, err := c.Decode(codec.Argmax(m))
			if err != nil {
				return nil, err
			}
			if invert {
				in = c.Fit(in, true)
			}
			key := strings.TrimRight(in, "\x00")
			ans, ok := table[key]
			if !ok {
				ans = key
			}
			enc, err := c.Encode(c.Fit(ans, false))
			if err != nil {
				return nil, err
			}
			out = append(out, enc)
		}
		return out, nil
	})
}

func TestGuess(t *testing.T) {
	c := newCodec(t)
	p := New(c, dictModel(t, c, false, map[string]string{"toi yeu": "tôi yêu"}, nil), false)
	got, err := p.Guess("toi yeu")
	if err != nil || got != "tôi yêu" {
		t.Errorf("Guess = %q, %v", got, err)
	}
}

func TestGuessInvert(t *testing.T) {
	c := newCodec(t)
	p := New(c, dictModel(t, c, true, map[string]string{"yeu ban": "yêu bạn"}, nil), true)
	got, err := p.Guess("yeu ban")
	if err != nil || got != "yêu bạn" {
		t.Errorf("Guess = %q, %v", got, err)
	}
}

func TestGuessTruncatesAtSentinel(t *testing.T) {
	c := newCodec(t)
	p := New(c, dictModel(t, c, false, map[string]string{"xin chao": "\x00xin\x00chào\x00"}, nil), false)
	got, err := p.Guess("xin chao")
	if err != nil || got != "xin" {
		t.Errorf("Guess = %q, %v", got, err)
	}
	p = New(c, dictModel(t, c, false, map[string]string{"a": ""}, nil), false)
	if got, err := p.Guess("a"); err != nil || got != "" {
		t.Errorf("Guess = %q, %v", got, err)
	}
}

func TestGuessUnsupported(t *testing.T) {
	c := newCodec(t)
	var calls int32
	p := New(c, dictModel(t, c, false, nil, &calls), false)
	_, err := p.Guess("xin 中")
	if errors.Cause(err) != codec.ErrUnsupportedCharacter {
		t.Errorf("got %v", err)
	}
	if calls != 0 {
		t.Errorf("model called %d times", calls)
	}
}

func TestGuessMalformed(t *testing.T) {
	c := newCodec(t)
	var models = map[string]Model{
		"empty batch": ModelFunc(func([]codec.Matrix) ([]codec.Matrix, error) { return nil, nil }),
		"short": ModelFunc(func([]codec.Matrix) ([]codec.Matrix, error) {
			return []codec.Matrix{make(codec.Matrix, 3)}, nil
		}),
		"narrow": ModelFunc(func(b []codec.Matrix) ([]codec.Matrix, error) {
			var m = make(codec.Matrix, c.MaxLen())
			for i := range m {
				m[i] = make([]float32, 2)
			}
			return []codec.Matrix{m}, nil
		}),
	}
	for name, m := range models {
		_, err := New(c, m, false).Guess("abc")
		if errors.Cause(err) != ErrMalformedPrediction {
			t.Errorf("%s: got %v", name, err)
		}
	}
}

func TestGuessModelError(t *testing.T) {
	c := newCodec(t)
	var boom = errors.New("model unavailable")
	p := New(c, ModelFunc(func([]codec.Matrix) ([]codec.Matrix, error) { return nil, boom }), false)
	if _, err := p.Guess("abc"); errors.Cause(err) != boom {
		t.Errorf("got %v", err)
	}
}

func TestGuessAllKeepsOrder(t *testing.T) {
	c := newCodec(t)
	table := map[string]string{
		" toi":    " tôi",
		"toi yeu": "tôi yêu",
		"yeu ban": "yêu bạn",
		"ban ":    "bạn ",
	}
	var calls int32
	p := New(c, dictModel(t, c, false, table, &calls), false)
	got, err := p.GuessAll(ngram.New("toi yeu ban", 2, true), 8)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{" tôi", "tôi yêu", "yêu bạn", "bạn "}, got); diff != "" {
		t.Errorf("GuessAll (-want +got):\n%s", diff)
	}
	if calls != 4 {
		t.Errorf("model called %d times", calls)
	}
}

func TestGuessAllEmpty(t *testing.T) {
	c := newCodec(t)
	var calls int32
	p := New(c, dictModel(t, c, false, nil, &calls), false)
	got, err := p.GuessAll(ngram.New("", 3, true), 4)
	if err != nil || len(got) != 0 || calls != 0 {
		t.Errorf("GuessAll = %v, %v with %d calls", got, err, calls)
	}
}

func TestClean(t *testing.T) {
	var cases = map[string]string{
		"tôi\x00\x00":     "tôi",
		"\x00\x00tôi yêu": "tôi yêu",
		"tôi\x00yêu\x00":  "tôi",
		"\x00\x00\x00":    "",
		" tôi \x00":       " tôi ",
	}
	for in, want := range cases {
		if got := Clean(in); got != want {
			t.Errorf("Clean(%q) = %q, want %q", in, got, want)
		}
	}
}
