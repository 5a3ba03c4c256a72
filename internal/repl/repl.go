// Package repl implements the line-oriented wordfind shell used when input
// is not an interactive terminal, or when the terminal UI is turned off.
//
// Each non-blank input line is submitted to a session. Matches are printed
// one per line and followed by a blank line; a rejected line prints
// "Error: <reason>" and a blank line to the error stream and leaves the
// session's previous command unchanged.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/history"
	"github.com/nelsbrock/wordfind/internal/logging"
	"github.com/nelsbrock/wordfind/internal/session"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 64 * 1024

// Options configures a REPL. Zero values are usable: no prompt, no
// history and no logging.
type Options struct {
	// Prompt is written to Out before each line when non-empty.
	Prompt string
	// History records submitted lines when non-nil.
	History *history.History
	// Logger receives REPL lifecycle events.
	Logger *logging.Logger
}

// REPL reads commands from In and writes results to Out and errors to Err.
type REPL struct {
	sess   *session.Session
	in     io.Reader
	out    *bufio.Writer
	errOut io.Writer

	prompt  string
	history *history.History
	logger  *logging.Logger
}

// New creates a REPL over sess.
func New(sess *session.Session, in io.Reader, out, errOut io.Writer, opts Options) *REPL {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &REPL{
		sess:    sess,
		in:      in,
		out:     bufio.NewWriter(out),
		errOut:  errOut,
		prompt:  opts.Prompt,
		history: opts.History,
		logger:  logger.WithComponent("repl"),
	}
}

// Run processes lines until In is exhausted or ctx is cancelled. It returns
// nil at end of input; recoverable command errors are printed, not
// returned.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.writePrompt(); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}
		lines++
		if err := r.Execute(scanner.Text()); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	r.logger.Debug("input exhausted", "lines", lines)
	return nil
}

// Execute handles one input line. Only write failures and unexpected
// errors are returned.
func (r *REPL) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if r.history != nil {
		r.history.Add(line)
	}

	q, err := r.sess.Submit(line)
	if err != nil {
		if !errors.IsUserFacing(err) {
			return err
		}
		_, werr := fmt.Fprintf(r.errOut, "Error: %v\n\n", err)
		return werr
	}

	for w := range q.Words() {
		if _, err := r.out.WriteString(w.String()); err != nil {
			return err
		}
		if err := r.out.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := r.out.WriteByte('\n'); err != nil {
		return err
	}
	return r.out.Flush()
}

func (r *REPL) writePrompt() error {
	if r.prompt == "" {
		return nil
	}
	if _, err := r.out.WriteString(r.prompt); err != nil {
		return err
	}
	return r.out.Flush()
}
