package tui

import (
	"fmt"
	"strings"

	"github.com/nelsbrock/wordfind/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	body := m.out.window(m.bodyHeight(), m.offset)
	for range m.bodyHeight() - len(body) {
		b.WriteByte('\n')
	}
	for _, e := range body {
		b.WriteString(util.TruncateANSI(m.renderEntry(e), m.width))
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.Separator.Render(util.Rule(m.width)))
	b.WriteByte('\n')
	b.WriteString(util.TruncateANSI(m.input.View(), m.width))
	b.WriteByte('\n')
	b.WriteString(util.TruncateANSI(m.renderHelp(), m.width))

	return b.String()
}

func (m Model) renderHeader() string {
	header := m.styles.Header.Render("wordfind") +
		m.styles.Help.Render(fmt.Sprintf("  %d words", m.sess.Corpus().Len()))
	if m.offset > 0 {
		header += m.styles.Warning.Render(fmt.Sprintf("  [scrolled %d]", m.offset))
	}
	if m.out.dropped > 0 {
		header += m.styles.Warning.Render(fmt.Sprintf("  (%d older lines dropped)", m.out.dropped))
	}
	return util.TruncateANSI(header, m.width)
}

func (m Model) renderEntry(e entry) string {
	switch e.kind {
	case entryEcho:
		return m.styles.Echo.Render(e.text)
	case entryResult:
		return m.styles.Result.Render(e.text)
	case entryCount:
		return m.styles.Count.Render(e.text)
	case entryError:
		return m.styles.Error.Render(e.text)
	default:
		return e.text
	}
}

func (m Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"enter", "run"},
		{"↑/↓", "history"},
		{"pgup/pgdn", "scroll"},
		{"ctrl+l", "clear"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.Help.Render(k.desc))
	}
	return strings.Join(parts, m.styles.Help.Render(" • "))
}
