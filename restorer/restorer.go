// Package restorer restores diacritical accents to text. It splits the text into
// word and symbol runs, predicts every word run over sliding windows, merges the
// window predictions by majority vote and finally reapplies the original case.
package restorer

import "log"
import "os"
import "strings"
import "unicode/utf8"

import "github.com/google/uuid"
import "github.com/pkg/errors"
import "golang.org/x/text/unicode/norm"

import "github.com/neurlang/accent/alphabet"
import "github.com/neurlang/accent/config"
import "github.com/neurlang/accent/consensus"
import "github.com/neurlang/accent/ngram"
import "github.com/neurlang/accent/predictor"
import "github.com/neurlang/accent/tokenizer"

// Restorer is the accent restoration pipeline. It holds no per request state and is
// safe for concurrent use.
type Restorer struct {
	cfg       config.Config
	predictor *predictor.Predictor
	accents   alphabet.AccentMap

	l *log.Logger
}

// New creates a restorer. The predictor codec must match cfg.MaxLen.
func New(cfg config.Config, p *predictor.Predictor, accents alphabet.AccentMap) (*Restorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("restorer: nil predictor")
	}
	if p.Codec().MaxLen() != cfg.MaxLen {
		return nil, errors.Errorf("restorer: codec length %d differs from maxlen %d", p.Codec().MaxLen(), cfg.MaxLen)
	}
	return &Restorer{cfg: cfg, predictor: p, accents: accents}, nil
}

// SetLogger appends the request log to filename.
func (r *Restorer) SetLogger(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrap(err, "restorer")
	}
	r.l = log.New(outfile, "", log.LstdFlags)
	return nil
}

// SetLog sets the request logger, nil disables logging.
func (r *Restorer) SetLog(l *log.Logger) {
	r.l = l
}

func (r *Restorer) logf(format string, v ...interface{}) {
	if r.l != nil {
		r.l.Printf(format, v...)
	}
}

// AddAccent restores accents in text. Symbol runs are kept verbatim and the case of
// each rune is restored by position. It fails if a word holds a character outside
// the alphabet or if the model fails.
func (r *Restorer) AddAccent(text string) (string, error) {
	var id = uuid.New()
	text = compose(text)
	if text == "" {
		return "", nil
	}
	mask := NewCaseMask(text)

	var outputs []string
	var windows int
	for _, run := range tokenizer.Split(text) {
		if !run.Word {
			outputs = append(outputs, run.Text)
			continue
		}
		phrase := r.accents.RemoveAccent(strings.ToLower(run.Text))
		restored, n, err := r.addAccent(phrase)
		if err != nil {
			r.logf("request %s: %v", id, err)
			return "", errors.Wrapf(err, "add accent %q", phrase)
		}
		windows += n
		outputs = append(outputs, restored)
	}
	output := strings.Join(outputs, "")
	if utf8.RuneCountInString(output) != len(mask) {
		r.logf("request %s: restored %d runes from %d", id, utf8.RuneCountInString(output), len(mask))
	}
	r.logf("request %s: %d runes, %d windows", id, len(mask), windows)
	return mask.Apply(output), nil
}

// compose puts the word characters of text in NFC. Segments that do not compose to
// a word character are kept as written.
func compose(text string) string {
	var b strings.Builder
	for len(text) > 0 {
		n := norm.NFC.NextBoundaryInString(text, true)
		if n <= 0 {
			n = len(text)
		}
		segment := norm.NFC.String(text[:n])
		if r, _ := utf8.DecodeRuneInString(segment); tokenizer.IsWordRune(r) {
			b.WriteString(segment)
		} else {
			b.WriteString(text[:n])
		}
		text = text[n:]
	}
	return b.String()
}

// addAccent restores a single word run
func (r *Restorer) addAccent(phrase string) (string, int, error) {
	windows := ngram.New(phrase, r.cfg.NGram, r.cfg.PadWordsInput)
	guesses, err := r.predictor.GuessAll(windows, r.cfg.Threads)
	if err != nil {
		return "", windows.Len(), err
	}
	return respace(phrase, consensus.Vote(guesses, r.cfg.NGram)), windows.Len(), nil
}

// respace puts the restored words between the original spaces of phrase. When the
// word counts disagree it only keeps the trailing spaces of phrase.
func respace(phrase, restored string) string {
	var words = strings.Fields(restored)
	var b strings.Builder
	var k int
	for i := 0; i < len(phrase); {
		if phrase[i] == ' ' {
			b.WriteByte(' ')
			i++
			continue
		}
		for i < len(phrase) && phrase[i] != ' ' {
			i++
		}
		if k == len(words) {
			k++
			break
		}
		b.WriteString(words[k])
		k++
	}
	if k != len(words) {
		return restored + phrase[len(strings.TrimRight(phrase, " ")):]
	}
	return b.String()
}

// AddAccentOrFallback restores accents in text, returning text unchanged if that fails.
func (r *Restorer) AddAccentOrFallback(text string) string {
	out, err := r.AddAccent(text)
	if err != nil {
		r.logf("fallback to input: %v", err)
		return text
	}
	return out
}
