package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/word"
)

type sequenceSpec struct {
	start int
	seq   []rune
}

// ParseSequence parses a sequence filter "[start]:letters". The text is
// split at the first ':'; an empty start means offset 0. The letters are
// taken literally and may be empty, in which case the filter only requires
// the word to reach the offset.
func ParseSequence(text string) (*Filter, error) {
	f, ferr := parseSequence(text)
	if ferr != nil {
		return nil, ferr
	}
	return f, nil
}

func parseSequence(text string) (*Filter, *errors.FilterError) {
	startText, seqText, ok := strings.Cut(text, ":")
	if !ok {
		return nil, sequenceError(text, "missing ':' between offset and letters")
	}

	start := 0
	if startText != "" {
		n, err := parseCount(startText)
		if err != nil {
			return nil, sequenceError(text, fmt.Sprintf("invalid start offset %q: %v", startText, err))
		}
		start = n
	}

	return &Filter{
		kind:     KindSequence,
		sequence: sequenceSpec{start: start, seq: []rune(seqText)},
	}, nil
}

// Start returns the zero-based offset of a sequence filter.
func (f *Filter) Start() int {
	return f.sequence.start
}

// Sequence returns the literal letters of a sequence filter.
func (f *Filter) Sequence() string {
	return string(f.sequence.seq)
}

// MinWordLen returns the shortest word a sequence filter can accept. It
// saturates at math.MaxInt for offsets too large to reach.
func (f *Filter) MinWordLen() int {
	return f.sequence.minWordLen()
}

func (s sequenceSpec) minWordLen() int {
	if s.start > math.MaxInt-len(s.seq) {
		return math.MaxInt
	}
	return s.start + len(s.seq)
}

// check compares by subtraction so that offsets near math.MaxInt cannot wrap.
func (s sequenceSpec) check(w word.Word) bool {
	if s.start > w.Len() || w.Len()-s.start < len(s.seq) {
		return false
	}
	for i, r := range s.seq {
		if w.At(s.start+i) != r {
			return false
		}
	}
	return true
}

func (s sequenceSpec) String() string {
	return strconv.Itoa(s.start) + ":" + string(s.seq)
}

func sequenceError(text, reason string) *errors.FilterError {
	return errors.NewFilterError(KindSequence.String(), text, reason, errors.ErrInvalidSequence)
}
