package styles

import (
	"strings"

	"multidrop/internal/color"

	"github.com/charmbracelet/lipgloss"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// Label is used for field names in detail views.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in detail views.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for highlighted interactive elements.
	AccentText = lipgloss.NewStyle().
			Foreground(Accent)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// --- Color swatches ---

// Swatch renders a small block filled with hex followed by the hex code.
// Invalid colors render as the bare text.
func Swatch(hex string) string {
	if !color.ValidateHex(hex) {
		return hex
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("    ")
	return block + " " + hex
}

// Chip renders label on a hex background with a contrasting foreground,
// the way a button in that color would look.
func Chip(label, hex string) string {
	return ChipOn(label, hex, color.ContrastingColor(hex))
}

// ChipOn renders label in fg on a bg background.
func ChipOn(label, bg, fg string) string {
	if !color.ValidateHex(bg) || !color.ValidateHex(fg) {
		return label
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(label)
}

// Gradient renders width cells blending from one color to another.
func Gradient(from, to string, width int) string {
	if width < 1 || !color.ValidateHex(from) || !color.ValidateHex(to) {
		return ""
	}
	var b strings.Builder
	for i := range width {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(color.Blend(from, to, t))).
			Render(" "))
	}
	return b.String()
}

// ModeBadge renders the theme mode name.
func ModeBadge(mode string) string {
	if mode == "light" {
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true).Render("☀ " + mode)
	}
	return lipgloss.NewStyle().Foreground(DimBlue).Bold(true).Render("☾ " + mode)
}

// --- Layout components ---

var (
	// Border is the default subtle border style.
	Border = lipgloss.RoundedBorder()

	// Card is a rounded-border panel for content sections.
	Card = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(DimGray).
		Padding(1, 2)
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer (e.g. "quit").
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)
