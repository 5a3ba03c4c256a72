// Package command parses wordfind input lines into commands and evaluates
// them against a corpus.
//
// A Command is an ordered conjunction of filters. Each whitespace-separated
// token of a line is either a filter literal (see package filter) or a
// history back-reference that reuses a filter of the previous command:
//
//	%N   the filter at index N of the previous command
//	%%   the filter at this token's own position in the previous command
//
// Back-references share the previous command's *filter.Filter rather than
// copying it, so a filter carried forward through several commands is still
// the instance that was originally parsed.
package command

import (
	"iter"
	"strings"

	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/filter"
	"github.com/nelsbrock/wordfind/internal/word"
)

// BackrefPrefix starts a history back-reference token.
const BackrefPrefix = '%'

// Command is an immutable, ordered list of filters parsed from one line.
type Command struct {
	source  string
	filters []*filter.Filter
	reused  int
}

// Parse parses line into a Command. prev is the last successfully parsed
// command, or nil if there is none; it is only read. Tokens are separated by
// ASCII whitespace. Any failing token aborts the whole line and the error is
// an *errors.ParseError naming the token's position.
func Parse(line string, prev *Command) (*Command, error) {
	tokens := strings.Fields(line)
	cmd := &Command{
		source:  strings.Join(tokens, " "),
		filters: make([]*filter.Filter, 0, len(tokens)),
	}

	for pos, token := range tokens {
		var (
			f   *filter.Filter
			err error
		)
		if token[0] == BackrefPrefix {
			f, err = resolveBackref(token, pos, prev)
			if err == nil {
				cmd.reused++
			}
		} else {
			f, err = filter.Classify(token)
		}
		if err != nil {
			return nil, errors.NewParseError(line, pos, token, err)
		}
		cmd.filters = append(cmd.filters, f)
	}

	return cmd, nil
}

// New builds a Command directly from filters. It is mainly useful to callers
// that construct filters programmatically.
func New(filters ...*filter.Filter) *Command {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, f.String())
	}
	return &Command{
		source:  strings.Join(parts, " "),
		filters: append([]*filter.Filter(nil), filters...),
	}
}

// Len returns the number of filters in the command.
func (c *Command) Len() int {
	return len(c.filters)
}

// Filter returns the filter at index i.
func (c *Command) Filter(i int) *filter.Filter {
	return c.filters[i]
}

// Filters returns a copy of the command's filter list. The filters
// themselves are shared, not copied.
func (c *Command) Filters() []*filter.Filter {
	return append([]*filter.Filter(nil), c.filters...)
}

// Reused returns how many filters were taken from the previous command.
func (c *Command) Reused() int {
	return c.reused
}

// String returns the tokens the command was parsed from, single-spaced.
func (c *Command) String() string {
	return c.source
}

// Matches reports whether w satisfies every filter. Filters are checked in
// order and evaluation stops at the first failure. A command without filters
// matches every word.
func (c *Command) Matches(w word.Word) bool {
	for _, f := range c.filters {
		if !f.Check(w) {
			return false
		}
	}
	return true
}

// Evaluate returns the words of corpus that satisfy the command, in corpus
// order. The sequence is lazy: each range over it scans the corpus afresh,
// holds one candidate at a time, and stops scanning as soon as the consumer
// stops iterating.
func (c *Command) Evaluate(corpus word.Corpus) iter.Seq[word.Word] {
	return func(yield func(word.Word) bool) {
		for w := range corpus.All() {
			if c.Matches(w) && !yield(w) {
				return
			}
		}
	}
}

// Count returns the number of words in corpus that satisfy the command.
func (c *Command) Count(corpus word.Corpus) int {
	n := 0
	for range c.Evaluate(corpus) {
		n++
	}
	return n
}
