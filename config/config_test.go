package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/neurlang/accent/alphabet"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	a, err := c.NewAlphabet()
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != alphabet.Default().String() {
		t.Error("default config alphabet differs from alphabet.Default")
	}
	if c.Threads < 1 {
		t.Errorf("threads %d", c.Threads)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "accent.yaml")
	err := os.WriteFile(name, []byte("maxlen: 40\nngram: 3\npad_words_input: false\ninvert: true\nthreads: 2\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.MaxLen, want.NGram, want.PadWordsInput, want.Invert, want.Threads = 40, 3, false, true, 2
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("maxlen: [1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed yaml accepted")
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ngram: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("ngram 0 accepted")
	}
}

func TestValidate(t *testing.T) {
	var cases = map[string]func(*Config){
		"maxlen":   func(c *Config) { c.MaxLen = 0 },
		"ngram":    func(c *Config) { c.NGram = -1 },
		"fit":      func(c *Config) { c.MaxLen, c.NGram = 8, 5 },
		"threads":  func(c *Config) { c.Threads = -2 },
		"no pad":   func(c *Config) { c.Alphabet = " abc" },
		"no space": func(c *Config) { c.Alphabet = "\x00abc" },
	}
	for name, mutate := range cases {
		c := Default()
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: accepted %+v", name, c)
		}
	}
	c := Default()
	c.Alphabet = "abc"
	if err := c.Validate(); errors.Cause(err) != alphabet.ErrNoPad {
		t.Errorf("got %v", err)
	}
}
