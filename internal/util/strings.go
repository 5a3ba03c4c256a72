// Package util provides shared helpers for rendering text in the terminal.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to text cut by TruncateANSI.
const Ellipsis = "…"

// TruncateANSI truncates s to maxWidth visual columns, ending it with an
// ellipsis if anything was cut. ANSI escape codes and wide characters are
// accounted for, so styled text stays well-formed. A non-positive width
// yields the empty string.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Rule returns a horizontal line of the given width.
func Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}
