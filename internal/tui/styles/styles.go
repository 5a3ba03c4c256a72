// Package styles holds the lipgloss styles of the wordfind terminal UI.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains all the lipgloss styles built from a color palette.
type Styles struct {
	// Header line at the top of the screen
	Header lipgloss.Style
	// Prompt in front of the input
	Prompt lipgloss.Style
	// Echo of a submitted line in the scrollback
	Echo lipgloss.Style
	// A matched word
	Result lipgloss.Style
	// "Error: ..." lines
	Error lipgloss.Style
	// Match count after a query
	Count lipgloss.Style
	// Notices such as dropped scrollback
	Warning lipgloss.Style
	// Key hints in the footer
	Help    lipgloss.Style
	HelpKey lipgloss.Style
	// Rule between scrollback and prompt
	Separator lipgloss.Style
}

// New builds Styles from the given color palette.
func New(p *ColorPalette) *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Echo: lipgloss.NewStyle().
			Foreground(p.Muted),
		Result: lipgloss.NewStyle().
			Foreground(p.Text),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),
		Count: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Italic(true),
		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		Separator: lipgloss.NewStyle().
			Foreground(p.Border),
	}
}

// ForTheme builds Styles for a named theme.
func ForTheme(name string) *Styles {
	return New(PaletteFor(name))
}
