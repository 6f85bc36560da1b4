package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"multidrop/internal/color"
	"multidrop/internal/theme"
	"multidrop/internal/tui/styles"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels the interactive flow.
var ErrAborted = errors.New("theme edit aborted by user")

// customValue is the select value that reveals the free-form hex input.
const customValue = "custom"

// ThemeEditForm runs an interactive form prefilled with current and returns
// the theme the user confirmed. Every returned color is valid and
// normalized.
func ThemeEditForm(current theme.State) (*theme.State, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	mode := string(current.Mode)

	primaryOpts, primaryLabels := buildPresetOptions(color.PrimaryPresets, current.Primary)
	primaryChoice := current.Primary
	customPrimary := current.Primary

	modeField := huh.NewSelect[string]().
		Title("Mode").
		Options(
			huh.NewOption("Dark", string(theme.Dark)),
			huh.NewOption("Light", string(theme.Light)),
		).
		Value(&mode)

	primaryField := huh.NewSelect[string]().
		Title("Primary color").
		Options(primaryOpts...).
		Value(&primaryChoice).
		Height(selectHeight(len(primaryOpts), 10))

	customField := huh.NewInput().
		Title("Custom primary color").
		Placeholder("#1e8e3e").
		Value(&customPrimary).
		Validate(validateHexInput)

	roles := make(map[theme.Role]*string, len(theme.Roles))
	roleFields := make([]huh.Field, 0, len(theme.Roles))
	for _, r := range theme.Roles {
		v := current.Colors.Get(r)
		roles[r] = &v
		roleFields = append(roleFields, huh.NewInput().
			Title(roleTitle(r)).
			Description(presetNames(color.RolePresets)).
			Value(roles[r]).
			Validate(validateRoleInput))
	}

	confirm := false
	summaryNote := huh.NewNote().
		Title("Summary").
		DescriptionFunc(func() string {
			s := collect(current, mode, primaryChoice, customPrimary, roles)
			return buildEditSummary(s, primaryLabels)
		}, &primaryChoice)

	confirmField := huh.NewConfirm().
		Title("Apply this theme?").
		Value(&confirm)

	if err := runForm(accessible,
		huh.NewGroup(modeField, primaryField),
		huh.NewGroup(customField).WithHideFunc(func() bool { return primaryChoice != customValue }),
		huh.NewGroup(roleFields...),
		huh.NewGroup(summaryNote, confirmField),
	); err != nil {
		return nil, err
	}

	if !confirm {
		return nil, ErrAborted
	}

	next := collect(current, mode, primaryChoice, customPrimary, roles)
	return &next, nil
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// collect assembles the edited theme. Values that do not resolve to a
// valid color keep their current setting.
func collect(current theme.State, mode, choice, custom string, roles map[theme.Role]*string) theme.State {
	s := current
	if m, err := theme.ParseMode(mode); err == nil {
		s.Mode = m
	}

	primary := choice
	if choice == customValue {
		primary = custom
	}
	if hex, err := color.Normalize(color.EnsureHash(primary)); err == nil {
		s.Primary = hex
	}

	for _, r := range theme.Roles {
		v, ok := roles[r]
		if !ok {
			continue
		}
		if hex, err := resolveRoleInput(*v); err == nil {
			s.Colors = s.Colors.With(r, hex)
		}
	}
	return s
}

// validateHexInput accepts hex with or without the leading '#'.
func validateHexInput(value string) error {
	if !color.ValidateHex(color.EnsureHash(value)) {
		return fmt.Errorf("%q is not a hex color like #1e8e3e", strings.TrimSpace(value))
	}
	return nil
}

func validateRoleInput(value string) error {
	_, err := resolveRoleInput(value)
	return err
}

// resolveRoleInput accepts a role preset name or a hex color.
func resolveRoleInput(value string) (string, error) {
	if p, ok := color.LookupPreset(color.RolePresets, strings.TrimSpace(value)); ok {
		return color.Normalize(p.Hex)
	}
	if err := validateHexInput(value); err != nil {
		return "", err
	}
	return color.Normalize(color.EnsureHash(value))
}

// --- Option builders ---

func buildPresetOptions(presets []color.Preset, selected string) ([]huh.Option[string], map[string]string) {
	options := make([]huh.Option[string], 0, len(presets)+2)
	labels := make(map[string]string, len(presets)+1)

	for _, p := range presets {
		hex, err := color.Normalize(p.Hex)
		if err != nil {
			continue
		}
		label := presetLabel(p.Name, hex)
		options = append(options, huh.NewOption(label, hex))
		labels[hex] = label
	}

	if selected != "" {
		options = ensureOption(options, labels, selected, "Current: "+selected)
	}
	options = append(options, huh.NewOption("Custom...", customValue))

	return options, labels
}

func ensureOption(options []huh.Option[string], labels map[string]string, value string, label string) []huh.Option[string] {
	if value == "" {
		return options
	}
	if _, ok := labels[value]; ok {
		return options
	}
	options = append(options, huh.NewOption(label, value))
	labels[value] = label
	return options
}

func presetLabel(name, hex string) string {
	return fmt.Sprintf("%s (%s)", name, hex)
}

func presetNames(presets []color.Preset) string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return "Hex or preset: " + strings.Join(names, ", ")
}

func roleTitle(r theme.Role) string {
	name := string(r)
	return strings.ToUpper(name[:1]) + name[1:] + " color"
}

func selectHeight(count, limit int) int {
	if count < 1 {
		return 1
	}
	return min(count, limit)
}

// --- Summary ---

func buildEditSummary(s theme.State, primaryLabels map[string]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Mode: %s\n", s.Mode)
	fmt.Fprintf(&b, "Primary: %s\n", labelFor(primaryLabels, s.Primary, styles.Swatch(s.Primary)))
	for _, r := range theme.Roles {
		fmt.Fprintf(&b, "%s: %s\n", roleTitle(r), styles.Swatch(s.Colors.Get(r)))
	}

	return strings.TrimSpace(b.String())
}

func labelFor(labels map[string]string, value, fallback string) string {
	if label, ok := labels[value]; ok {
		return label
	}
	return fallback
}
