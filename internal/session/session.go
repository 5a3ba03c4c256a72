// Package session holds the state an interactive wordfind loop carries from
// one input line to the next: the loaded corpus and the most recent
// successfully parsed command, which back-references resolve against.
package session

import (
	"iter"
	"sync"
	"time"

	"github.com/nelsbrock/wordfind/internal/command"
	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/logging"
	"github.com/nelsbrock/wordfind/internal/word"
)

// Session is safe for concurrent use, although the front ends drive it from
// a single goroutine.
type Session struct {
	corpus word.Corpus
	logger *logging.Logger

	mu   sync.Mutex
	prev *command.Command
}

// New creates a Session over corpus with an empty history. A nil logger
// disables logging.
func New(corpus word.Corpus, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Session{corpus: corpus, logger: logger}
}

// Corpus returns the corpus queries run against.
func (s *Session) Corpus() word.Corpus {
	return s.corpus
}

// Previous returns the last successfully parsed command, or nil.
func (s *Session) Previous() *command.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prev
}

// Reset forgets the previous command.
func (s *Session) Reset() {
	s.mu.Lock()
	s.prev = nil
	s.mu.Unlock()
}

// Submit parses line against the previous command. On success the new
// command replaces the previous one and a Query over the corpus is
// returned. On failure the previous command is left untouched.
func (s *Session) Submit(line string) (*Query, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err := command.Parse(line, s.prev)
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			s.logger.Warn("parse rejected",
				"position", parseErr.Position,
				"token", parseErr.Token,
				"severity", errors.GetSeverity(err).String(),
				"error", err.Error(),
			)
		} else {
			s.logger.Warn("parse rejected",
				"severity", errors.GetSeverity(err).String(),
				"error", err.Error(),
			)
		}
		return nil, err
	}

	s.prev = cmd
	s.logger.Debug("command parsed",
		"source", cmd.String(),
		"filters", cmd.Len(),
		"reused", cmd.Reused(),
	)

	return &Query{cmd: cmd, corpus: s.corpus, logger: s.logger}, nil
}

// Query is one evaluation of a parsed command.
type Query struct {
	cmd    *command.Command
	corpus word.Corpus
	logger *logging.Logger
}

// Command returns the parsed command.
func (q *Query) Command() *command.Command {
	return q.cmd
}

// Words returns the lazily evaluated matches. When a range over it ends,
// whether exhausted or abandoned, the number of words yielded is logged.
func (q *Query) Words() iter.Seq[word.Word] {
	return func(yield func(word.Word) bool) {
		start := time.Now()
		matches := 0
		stopped := false
		defer func() {
			q.logger.Timed("query finished", start,
				"source", q.cmd.String(),
				"matches", matches,
				"stopped_early", stopped,
			)
		}()

		for w := range q.cmd.Evaluate(q.corpus) {
			matches++
			if !yield(w) {
				stopped = true
				return
			}
		}
	}
}
