// Package tui implements the interactive terminal front end of wordfind: a
// prompt with history navigation above which query results accumulate in a
// scrollable, bounded buffer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nelsbrock/wordfind/internal/errors"
	"github.com/nelsbrock/wordfind/internal/history"
	"github.com/nelsbrock/wordfind/internal/logging"
	"github.com/nelsbrock/wordfind/internal/session"
	"github.com/nelsbrock/wordfind/internal/tui/styles"
)

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// chromeLines is the number of rows taken by the header, separator, prompt
// and help line.
const chromeLines = 4

// Options configures the TUI model.
type Options struct {
	// Prompt precedes the input line (default "> ")
	Prompt string
	// History backs up/down navigation; a fresh in-memory history is used
	// when nil.
	History *history.History
	// MaxOutputLines bounds the scrollback; 0 keeps everything.
	MaxOutputLines int
	// Theme names a built-in style theme.
	Theme string
	// Logger receives UI events.
	Logger *logging.Logger
}

// Model is the Bubbletea model for the wordfind prompt.
type Model struct {
	sess     *session.Session
	hist     *history.History
	input    textinput.Model
	styles   *styles.Styles
	out      *scrollback
	logger   *logging.Logger
	prompt   string
	offset   int // lines scrolled up from the bottom
	width    int
	height   int
	quitting bool
}

// NewModel creates the model over sess.
func NewModel(sess *session.Session, opts Options) Model {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "> "
	}
	hist := opts.History
	if hist == nil {
		hist = history.New(history.DefaultSize)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	st := styles.ForTheme(opts.Theme)

	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = st.Prompt
	ti.Placeholder = "c*t =3 0:ca"
	ti.Focus()

	return Model{
		sess:   sess,
		hist:   hist,
		input:  ti,
		styles: st,
		out:    newScrollback(opts.MaxOutputLines),
		logger: logger.WithComponent("tui"),
		prompt: prompt,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.prompt)-1, 1)
		m.offset = m.clampOffset(m.offset)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()
		m.submit(line)
		return m, nil

	case tea.KeyUp:
		if line, ok := m.hist.Prev(m.input.Value()); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if line, ok := m.hist.Next(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.offset = m.clampOffset(m.offset + m.pageSize())
		return m, nil

	case tea.KeyPgDown:
		m.offset = m.clampOffset(m.offset - m.pageSize())
		return m, nil

	case tea.KeyCtrlL:
		m.out.clear()
		m.offset = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one line through the session and appends its output to the
// scrollback.
func (m *Model) submit(line string) {
	m.offset = 0
	m.out.add(entryEcho, m.prompt+line)

	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.hist.Add(line)

	q, err := m.sess.Submit(line)
	if err != nil {
		if !errors.IsUserFacing(err) {
			m.logger.Error("unexpected submit error", "error", err.Error())
		}
		m.out.add(entryError, fmt.Sprintf("Error: %v", err))
		m.out.add(entryBlank, "")
		m.out.trim()
		return
	}

	n := 0
	for w := range q.Words() {
		m.out.add(entryResult, w.String())
		n++
	}
	m.out.add(entryCount, matchCount(n))
	m.out.add(entryBlank, "")
	m.out.trim()
}

func matchCount(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

// bodyHeight is the number of scrollback rows that fit on screen.
func (m Model) bodyHeight() int {
	return max(m.height-chromeLines, 1)
}

func (m Model) pageSize() int {
	return max(m.bodyHeight()-1, 1)
}

func (m Model) clampOffset(offset int) int {
	maxOffset := max(m.out.len()-m.bodyHeight(), 0)
	return min(max(offset, 0), maxOffset)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
