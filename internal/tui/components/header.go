// Package components provides reusable Bubbletea UI building blocks for
// the multidrop TUI. These are render-only helpers (not tea.Model) that
// paint the chrome in the user's own theme.
package components

import (
	"strings"

	"multidrop/internal/theme"
	"multidrop/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar: the breadcrumb on the left,
// the active mode and primary color on the right, and an underline in the
// header gradient.
//
//	  multidrop > config        ▇▇▇▇ #1e8e3e  ☾ dark
//	  ▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁
func Header(width int, breadcrumb string, s theme.State, p theme.Projection) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(lipgloss.Color(s.Primary)).Render("multidrop")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}
	right := styles.Swatch(s.Primary) + "  " + styles.ModeBadge(string(s.Mode))

	innerWidth := width - 4
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	content := left + strings.Repeat(" ", gap) + right

	row := lipgloss.NewStyle().Width(width).Padding(0, 2).Render(content)
	underline := styles.Gradient(p.Gradient.From, p.Gradient.To, width)
	if underline == "" {
		underline = styles.KeySepStyle.Render(strings.Repeat("─", width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, underline)
}
