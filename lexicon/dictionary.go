// Package lexicon provides the word-membership oracle used to validate
// plays. The dictionary is loaded once at process start and never mutated,
// so it is safe to share without locking.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexicon answers word-membership queries.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// caser performs locale-independent upper-casing, so that lookups are
// case-insensitive by normalization on both sides.
var caser = cases.Upper(language.Und)

// Dictionary is an immutable set of upper-cased words.
type Dictionary struct {
	name  string
	words map[string]struct{}
}

// Load reads a newline-delimited word list from a file.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return FromReader(path, f)
}

// FromReader reads a newline-delimited word list. Each entry is upper-cased
// at load time; blank lines are skipped.
func FromReader(name string, r io.Reader) (*Dictionary, error) {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		words[caser.String(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	log.Info().Str("name", name).Int("words", len(words)).Msg("loaded dictionary")
	return &Dictionary{name: name, words: words}, nil
}

func (d *Dictionary) Name() string {
	return d.name
}

// HasWord reports whether the word is in the dictionary, ignoring case.
func (d *Dictionary) HasWord(word string) bool {
	_, ok := d.words[caser.String(word)]
	return ok
}

// Len returns the number of words loaded.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// AcceptAll is a lexicon that accepts every word. Useful in tests.
type AcceptAll struct{}

func (AcceptAll) Name() string        { return "AcceptAll" }
func (AcceptAll) HasWord(string) bool { return true }
