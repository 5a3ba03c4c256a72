// Package word holds the dictionary representation shared by the filter
// language and the front ends: an immutable lower-cased Word and the ordered
// Corpus loaded once at startup.
package word

import (
	"iter"
	"strings"
)

// Word is an immutable, already lower-cased dictionary entry. It keeps both
// the rune sequence used by filters and the string form used for output.
type Word struct {
	text  string
	runes []rune
}

// New creates a Word from s, lower-casing it.
func New(s string) Word {
	text := strings.ToLower(s)
	return Word{text: text, runes: []rune(text)}
}

// Len returns the number of runes in the word.
func (w Word) Len() int {
	return len(w.runes)
}

// At returns the rune at index i.
func (w Word) At(i int) rune {
	return w.runes[i]
}

// Runes returns an iterator over the word's runes in order.
func (w Word) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range w.runes {
			if !yield(r) {
				return
			}
		}
	}
}

// String returns the word as text.
func (w Word) String() string {
	return w.text
}

// Corpus is the ordered, immutable list of dictionary words. Order is the
// order of the dictionary file.
type Corpus struct {
	words []Word
}

// NewCorpus builds a Corpus from raw strings, lower-casing each entry.
func NewCorpus(entries ...string) Corpus {
	words := make([]Word, 0, len(entries))
	for _, e := range entries {
		words = append(words, New(e))
	}
	return Corpus{words: words}
}

// Len returns the number of words in the corpus.
func (c Corpus) Len() int {
	return len(c.words)
}

// All returns an iterator over the corpus in dictionary order.
func (c Corpus) All() iter.Seq[Word] {
	return func(yield func(Word) bool) {
		for _, w := range c.words {
			if !yield(w) {
				return
			}
		}
	}
}
