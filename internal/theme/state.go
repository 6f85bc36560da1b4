package theme

import (
	"errors"
	"fmt"

	"multidrop/internal/util"
)

// Storage keys. One flat namespace, one key per value.
const (
	KeyPrimaryColor = "multidrop-primary-color"
	KeyThemeMode    = "multidrop-theme-mode"

	roleKeyPrefix = "multidrop-color-"
)

var (
	ErrUnknownMode = errors.New("unknown theme mode")
	ErrUnknownRole = errors.New("unknown color role")
)

// Mode is the dark/light presentation mode.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// ParseMode parses "dark" or "light", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(util.NormalizeKey(s)) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("%w %q (valid: dark, light)", ErrUnknownMode, s)
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Marker is the document-level class that identifies the active mode.
func (m Mode) Marker() string {
	return string(m) + "-theme"
}

// Role is one of the user-customizable color slots besides the primary.
type Role string

const (
	RoleSecondary Role = "secondary"
	RoleText      Role = "text"
	RoleBorder    Role = "border"
	RoleButton    Role = "button"
)

// Roles lists every role in projection order.
var Roles = []Role{RoleSecondary, RoleText, RoleBorder, RoleButton}

// ParseRole parses a role name, case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(util.NormalizeKey(s))
	for _, known := range Roles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: secondary, text, border, button)", ErrUnknownRole, s)
}

// Key returns the storage key holding the role's color.
func (r Role) Key() string {
	return roleKeyPrefix + string(r)
}

// RoleColors holds the color of each secondary role.
type RoleColors struct {
	Secondary string
	Text      string
	Border    string
	Button    string
}

// Get returns the color assigned to r.
func (c RoleColors) Get(r Role) string {
	switch r {
	case RoleSecondary:
		return c.Secondary
	case RoleText:
		return c.Text
	case RoleBorder:
		return c.Border
	case RoleButton:
		return c.Button
	}
	return ""
}

// With returns a copy of c with r set to hex.
func (c RoleColors) With(r Role, hex string) RoleColors {
	switch r {
	case RoleSecondary:
		c.Secondary = hex
	case RoleText:
		c.Text = hex
	case RoleBorder:
		c.Border = hex
	case RoleButton:
		c.Button = hex
	}
	return c
}

// State is the complete user-chosen theme.
type State struct {
	Mode    Mode
	Primary string
	Colors  RoleColors
}

// Entries returns the storage representation of s.
func (s State) Entries() map[string]string {
	out := map[string]string{
		KeyThemeMode:    string(s.Mode),
		KeyPrimaryColor: s.Primary,
	}
	for _, r := range Roles {
		out[r.Key()] = s.Colors.Get(r)
	}
	return out
}

// Built-in defaults used on first start and for any unreadable key.
const (
	DefaultMode    = Dark
	DefaultPrimary = "#1e8e3e"
)

// DefaultColors are the built-in role colors.
var DefaultColors = RoleColors{
	Secondary: "#1f2937",
	Text:      "#f9fafb",
	Border:    "#374151",
	Button:    "#166534",
}

// DefaultState returns the built-in theme.
func DefaultState() State {
	return State{Mode: DefaultMode, Primary: DefaultPrimary, Colors: DefaultColors}
}
