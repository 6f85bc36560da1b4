package theme

import (
	"errors"
	"fmt"
	"strings"

	"multidrop/internal/color"
	"multidrop/internal/config"
	"multidrop/internal/history"
	"multidrop/internal/logging"
	"multidrop/internal/store"
	"multidrop/internal/theme"

	"github.com/spf13/cobra"
)

// NewCommand returns the "theme" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Customize the storefront color theme",
		Long: "Inspect and change the checkout color theme: the dark/light mode,\n" +
			"the primary accent and the secondary, text, border and button colors.\n\n" +
			"Every change is saved immediately and recorded in the theme history.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(PrimaryCommand())
	cmd.AddCommand(ColorCommand())
	cmd.AddCommand(ToggleCommand())
	cmd.AddCommand(ModeCommand())
	cmd.AddCommand(CSSCommand())
	cmd.AddCommand(PresetsCommand())
	cmd.AddCommand(ResetCommand())
	cmd.AddCommand(EditCommand())
	cmd.AddCommand(HistoryCommand())

	return cmd
}

// session is the engine plus the storage it was opened on.
type session struct {
	engine  *theme.Engine
	kv      *store.SQLiteStore
	history *history.SQLiteRepository
}

// openSession restores the engine from the default database. Every applied
// change is recorded in the history table.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	kv, err := store.Open()
	if err != nil {
		return nil, err
	}

	repo, err := history.Open()
	if err != nil {
		kv.Close()
		return nil, err
	}

	engine := theme.Open(kv, logging.Component("theme"), theme.Options{
		LegacyContrast: cfg.LegacyContrast,
		OnChange:       history.Recorder(repo, logging.Component("history")),
	})

	return &session{engine: engine, kv: kv, history: repo}, nil
}

func (s *session) Close() error {
	return errors.Join(s.history.Close(), s.kv.Close())
}

// resolveColor accepts a hex color with or without '#', or a preset name
// from presets. The result is normalized.
func resolveColor(input string, presets []color.Preset) (string, error) {
	input = strings.TrimSpace(input)
	if p, ok := color.LookupPreset(presets, strings.ToLower(input)); ok {
		return color.Normalize(p.Hex)
	}
	return color.Normalize(color.EnsureHash(input))
}
