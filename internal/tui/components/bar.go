package components

import (
	"strings"

	"multidrop/internal/color"
	"multidrop/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding is one key hint in the help bar.
type KeyBinding struct {
	Key  string
	Desc string
}

// Status is a one-line message shown above the key hints.
type Status struct {
	Message string
	Err     bool
}

// HelpBar renders the bottom of the screen: an optional status line and
// the key hints, with keys drawn in accent.
func HelpBar(width int, accent string, status Status, bindings ...KeyBinding) string {
	if width < 10 {
		return ""
	}

	keyStyle := styles.KeyStyle
	if color.ValidateHex(accent) {
		keyStyle = keyStyle.Foreground(lipgloss.Color(accent))
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = keyStyle.Render(b.Key) + " " + styles.KeyDescStyle.Render(b.Desc)
	}

	hints := lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(strings.Join(parts, styles.KeySepStyle.Render("  ")))

	if status.Message == "" {
		return hints
	}
	msgStyle := styles.SuccessText
	if status.Err {
		msgStyle = styles.ErrorText
	}
	line := lipgloss.NewStyle().Width(width).Padding(0, 2).Render(msgStyle.Render(status.Message))
	return lipgloss.JoinVertical(lipgloss.Left, line, hints)
}
