package filter

import (
	"fmt"

	"github.com/nelsbrock/wordfind/internal/word"
)

// Kind identifies which variant a Filter holds.
type Kind int

const (
	// KindMatch is a letter-multiset filter with wildcards.
	KindMatch Kind = iota
	// KindLength is a length comparison filter.
	KindLength
	// KindSequence is a positional subsequence filter.
	KindSequence
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindLength:
		return "length"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Filter is a predicate over a word. Exactly one of the variant fields is
// meaningful, as selected by kind. Use the Parse* functions or Classify to
// build one; the zero value is a match filter that only accepts the empty
// word.
type Filter struct {
	kind     Kind
	match    matchSpec
	length   lengthSpec
	sequence sequenceSpec
}

// Kind returns the filter variant.
func (f *Filter) Kind() Kind {
	return f.kind
}

// Check reports whether w satisfies the filter.
func (f *Filter) Check(w word.Word) bool {
	switch f.kind {
	case KindMatch:
		return f.match.check(w)
	case KindLength:
		return f.length.check(w)
	case KindSequence:
		return f.sequence.check(w)
	default:
		panic(fmt.Sprintf("filter: unknown kind %d", int(f.kind)))
	}
}

// String renders the filter back in grammar form. Match filters list their
// letters in sorted order, so the output is canonical rather than verbatim.
func (f *Filter) String() string {
	switch f.kind {
	case KindMatch:
		return f.match.String()
	case KindLength:
		return f.length.String()
	case KindSequence:
		return f.sequence.String()
	default:
		return f.kind.String()
	}
}
