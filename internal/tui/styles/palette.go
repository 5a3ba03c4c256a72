package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMono    ThemeName = "mono"    // No colors, emphasis only
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{string(ThemeDefault), string(ThemeMono)}
}

// IsValidTheme checks if a theme name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (prompt, header)
	Primary lipgloss.TerminalColor
	// Secondary accent color (match counts)
	Secondary lipgloss.TerminalColor
	// Warning color (truncation notices)
	Warning lipgloss.TerminalColor
	// Error color (rejected commands)
	Error lipgloss.TerminalColor
	// Muted color (echoed input, help text)
	Muted lipgloss.TerminalColor
	// Text color (matched words)
	Text lipgloss.TerminalColor
	// Border color (separator above the prompt)
	Border lipgloss.TerminalColor
}

// DefaultPalette returns the default purple/green dark theme palette.
// All colors meet WCAG AA contrast on dark backgrounds.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500
	}
}

// MonoPalette returns a palette that leaves every color to the terminal.
func MonoPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.NoColor{},
		Secondary: lipgloss.NoColor{},
		Warning:   lipgloss.NoColor{},
		Error:     lipgloss.NoColor{},
		Muted:     lipgloss.NoColor{},
		Text:      lipgloss.NoColor{},
		Border:    lipgloss.NoColor{},
	}
}

// PaletteFor returns the palette for a theme name, falling back to the
// default palette for unknown names.
func PaletteFor(name string) *ColorPalette {
	switch ThemeName(name) {
	case ThemeMono:
		return MonoPalette()
	default:
		return DefaultPalette()
	}
}
