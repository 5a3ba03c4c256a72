package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/session"
)

// App wraps the Bubbletea program
type App struct {
	model Model
	in    io.Reader
	out   io.Writer
}

// New creates a new TUI application reading keys from in and drawing to
// out. Nil streams default to the process's terminal.
func New(sess *session.Session, opts Options, in io.Reader, out io.Writer) *App {
	return &App{
		model: NewModel(sess, opts),
		in:    in,
		out:   out,
	}
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	}
	if a.in != nil {
		programOpts = append(programOpts, tea.WithInput(a.in))
	}
	if a.out != nil {
		programOpts = append(programOpts, tea.WithOutput(a.out))
	}

	a.model.logger.Info("tui started", "words", a.model.sess.Corpus().Len())
	_, err := tea.NewProgram(a.model, programOpts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
