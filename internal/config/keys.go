package config

import (
	"fmt"
	"strconv"
	"strings"

	"multidrop/internal/logging"
	"multidrop/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "log-level").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Normalize validates a raw user value and returns its canonical form.
	// Nil means any value is accepted as-is.
	Normalize func(value string) (string, error)

	// Toggle marks boolean keys that can be flipped in place.
	Toggle bool
}

// Apply normalizes value and sets it on cfg. It returns the stored value.
func (k *KeySpec) Apply(cfg *Config, value string) (string, error) {
	value = strings.TrimSpace(value)
	if k.Normalize != nil {
		v, err := k.Normalize(value)
		if err != nil {
			return "", err
		}
		value = v
	}
	k.Set(cfg, value)
	return value, nil
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "log-level",
		Description: "Log verbosity: trace, debug, info, warn, error (default warn)",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
		Normalize:   normalizeLevel,
	},
	{
		Name:        "legacy-contrast",
		Description: "Derive role foregrounds with the |l-90| approximation (true/false)",
		Get: func(cfg *Config) string {
			if !cfg.LegacyContrast {
				return ""
			}
			return "true"
		},
		Set:       func(cfg *Config, v string) { cfg.LegacyContrast = v == "true" },
		Normalize: normalizeBool,
		Toggle:    true,
	},
	{
		Name:        "database-path",
		Description: "SQLite database holding theme preferences and history",
		Get:         func(cfg *Config) string { return cfg.DatabasePath },
		Set:         func(cfg *Config, v string) { cfg.DatabasePath = v },
	},
}

func normalizeLevel(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	lvl, err := logging.ParseLevel(v)
	if err != nil {
		return "", err
	}
	return lvl.String(), nil
}

func normalizeBool(v string) (string, error) {
	if v == "" {
		return "false", nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return "", fmt.Errorf("invalid boolean %q (use true or false)", v)
	}
	return strconv.FormatBool(b), nil
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
