package tui

import (
	"fmt"
	"strconv"
	"strings"

	"multidrop/internal/color"
	"multidrop/internal/config"
	"multidrop/internal/theme"
	"multidrop/internal/tui/components"
	"multidrop/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsSavedMsg struct{ key string }

type settingsSaveFailedMsg struct{ err error }

// settingsModel edits the config file next to a preview of the user's
// theme as the edited settings would derive it.
type settingsModel struct {
	cfg   *config.Config
	theme theme.State

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status components.Status
}

// RunConfigView starts the interactive settings editor, previewing current.
func RunConfigView(current theme.State) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newSettingsModel(cfg, current), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newSettingsModel(cfg *config.Config, current theme.State) settingsModel {
	return settingsModel{cfg: cfg, theme: current}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) selected() *config.KeySpec {
	return &config.Keys[m.cursor]
}

func (m settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateList(msg)

	case settingsSavedMsg:
		m.editing = false
		m.status = components.Status{Message: msg.key + " saved"}
		return m, nil

	case settingsSaveFailedMsg:
		m.status = components.Status{Message: "Error: " + msg.err.Error(), Err: true}
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m settingsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, len(config.Keys)-1)
	case " ":
		spec := m.selected()
		if !spec.Toggle {
			return m, nil
		}
		return m.apply(spec, strconv.FormatBool(spec.Get(m.cfg) != "true"))
	case "enter", "e":
		ti := textinput.New()
		ti.SetValue(m.selected().Get(m.cfg))
		ti.Placeholder = "enter value"
		ti.Width = 40
		ti.Focus()
		m.editor = ti
		m.editing = true
		m.status = components.Status{}
		return m, textinput.Blink
	}
	return m, nil
}

func (m settingsModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		return m.apply(m.selected(), m.editor.Value())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// apply validates value into the config and schedules a save. An invalid
// value leaves the config untouched.
func (m settingsModel) apply(spec *config.KeySpec, value string) (tea.Model, tea.Cmd) {
	if _, err := spec.Apply(m.cfg, value); err != nil {
		m.status = components.Status{Message: "Error: " + err.Error(), Err: true}
		return m, nil
	}
	cfg, key := m.cfg, spec.Name
	return m, func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return settingsSaveFailedMsg{err: err}
		}
		return settingsSavedMsg{key: key}
	}
}

// legacyContrast is the contrast mode the preview uses. While the
// legacy-contrast value is being typed, a valid draft takes effect.
func (m settingsModel) legacyContrast() bool {
	spec := m.selected()
	if m.editing && spec.Toggle && spec.Normalize != nil {
		if v, err := spec.Normalize(strings.TrimSpace(m.editor.Value())); err == nil {
			return v == "true"
		}
	}
	return m.cfg.LegacyContrast
}

func (m settingsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	proj := theme.Derive(m.theme, theme.Options{LegacyContrast: m.legacyContrast()})

	header := components.Header(m.width, "config", m.theme, proj)
	bar := components.HelpBar(m.width, m.theme.Primary, m.status, m.bindings()...)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(bar), 1)
	content := lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			styles.Title.Render("Configuration"),
			"",
			m.renderKeys(),
			"",
			renderPreview(proj, m.legacyContrast()),
		))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, bar)
}

func (m settingsModel) bindings() []components.KeyBinding {
	if m.editing {
		return []components.KeyBinding{{Key: "enter", Desc: "save"}, {Key: "esc", Desc: "cancel"}}
	}
	b := []components.KeyBinding{{Key: "j/k", Desc: "navigate"}, {Key: "e", Desc: "edit"}}
	if m.selected().Toggle {
		b = append(b, components.KeyBinding{Key: "space", Desc: "toggle"})
	}
	return append(b, components.KeyBinding{Key: "q", Desc: "quit"})
}

const (
	cardWidth  = 60
	labelWidth = 20
)

func (m settingsModel) renderKeys() string {
	rows := make([]string, 0, len(config.Keys)+1)
	for i, spec := range config.Keys {
		value := spec.Get(m.cfg)
		if value == "" {
			value = "(not set)"
		}

		if i != m.cursor {
			rows = append(rows, "  "+styles.MutedText.Width(labelWidth).Render(spec.Name)+styles.MutedText.Render(value))
			continue
		}

		prefix := styles.AccentText.Foreground(lipgloss.Color(m.theme.Primary)).Render("> ")
		name := styles.Label.Width(labelWidth).Render(spec.Name)
		if m.editing {
			rows = append(rows, prefix+name+m.editor.View())
			continue
		}
		rows = append(rows,
			prefix+name+styles.Value.Bold(true).Render(value),
			"    "+styles.MutedText.Italic(true).Render(spec.Description))
	}
	return styles.Card.Width(cardWidth).Render(strings.Join(rows, "\n"))
}

// renderPreview draws the secondary and button roles with the foregrounds
// proj derived for them.
func renderPreview(proj theme.Projection, legacy bool) string {
	mode := "contrasting foregrounds"
	if legacy {
		mode = "legacy contrast"
	}

	row := func(label, chip, bgVar, fgVar string) string {
		fg := proj.Var(fgVar)
		sample := styles.ChipOn(chip, hslHex(proj.Var(bgVar)), hslHex(fg))
		return styles.Label.Width(12).Render(label) + sample + "  " + styles.MutedText.Render("fg "+fg)
	}

	body := strings.Join([]string{
		styles.Subtitle.Render("Preview · " + mode),
		"",
		row("Secondary", "Details", theme.VarSecondary, theme.VarSecondaryForeground),
		row("Button", "Buy now", theme.VarPrimary, theme.VarPrimaryForeground),
		styles.Label.Width(12).Render("Header") + styles.Gradient(proj.Gradient.From, proj.Gradient.To, 24),
	}, "\n")
	return styles.Card.Width(cardWidth).Render(body)
}

// hslHex converts a projection value back to hex for rendering. Unparseable
// values render uncolored.
func hslHex(v string) string {
	c, err := color.ParseHSL(v)
	if err != nil {
		return ""
	}
	return c.Hex()
}
