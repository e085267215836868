// Package config holds the options of the accent restoration pipeline.
package config

import "os"
import "strings"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

import "github.com/neurlang/accent/alphabet"
import "github.com/neurlang/accent/parallel"

// Config is the pipeline configuration. MaxLen, NGram, Invert and Alphabet must match
// the model in use.
type Config struct {
	MaxLen        int    `yaml:"maxlen"`          // fixed window capacity in characters
	NGram         int    `yaml:"ngram"`           // words per window
	PadWordsInput bool   `yaml:"pad_words_input"` // pad windows at the phrase boundaries
	Invert        bool   `yaml:"invert"`          // reverse windows before encoding
	Alphabet      string `yaml:"alphabet"`        // characters understood by the model
	Threads       int    `yaml:"threads"`         // windows predicted concurrently
}

// Default returns the default configuration for the Vietnamese alphabet.
func Default() Config {
	return Config{
		MaxLen:        32,
		NGram:         5,
		PadWordsInput: true,
		Alphabet:      alphabet.DefaultChars(alphabet.Vietnamese),
		Threads:       parallel.DefaultLimit(),
	}
}

// Load reads a yaml file on top of the defaults and validates the result.
func Load(filename string) (Config, error) {
	var c = Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return c, errors.Wrap(err, "config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "config %s", filename)
	}
	return c, c.Validate()
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.MaxLen <= 0 {
		return errors.Errorf("config: maxlen %d must be positive", c.MaxLen)
	}
	if c.NGram <= 0 {
		return errors.Errorf("config: ngram %d must be positive", c.NGram)
	}
	// n single character words and their separators must fit a window
	if 2*c.NGram-1 > c.MaxLen {
		return errors.Errorf("config: %d words cannot fit %d characters", c.NGram, c.MaxLen)
	}
	if c.Threads < 0 {
		return errors.Errorf("config: threads %d must not be negative", c.Threads)
	}
	if !strings.ContainsRune(c.Alphabet, alphabet.Pad) {
		return errors.Wrap(alphabet.ErrNoPad, "config")
	}
	if !strings.ContainsRune(c.Alphabet, ' ') {
		return errors.New("config: alphabet has no space")
	}
	return nil
}

// NewAlphabet builds the alphabet of the configuration.
func (c Config) NewAlphabet() (*alphabet.Alphabet, error) {
	a, err := alphabet.New(c.Alphabet)
	return a, errors.Wrap(err, "config")
}
