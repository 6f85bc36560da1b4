package theme

import (
	"fmt"

	"multidrop/internal/theme"
	"multidrop/internal/tui/styles"

	"github.com/spf13/cobra"
)

// ToggleCommand returns the "theme toggle" command.
func ToggleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "toggle",
		Short:        "Switch between dark and light mode",
		Args:         cobra.NoArgs,
		RunE:         runToggle,
		SilenceUsage: true,
	}

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	mode, err := s.engine.ToggleMode()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme mode set to %s\n", styles.ModeBadge(string(mode)))
	return nil
}

// ModeCommand returns the "theme mode" command.
func ModeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode [dark|light]",
		Short: "Print or set the theme mode",
		Long: `Print the current theme mode, or switch to the given one.

Examples:
  multidrop theme mode
  multidrop theme mode light`,
		Args:         cobra.MaximumNArgs(1),
		ValidArgs:    []string{string(theme.Dark), string(theme.Light)},
		RunE:         runMode,
		SilenceUsage: true,
	}

	return cmd
}

func runMode(cmd *cobra.Command, args []string) error {
	var mode theme.Mode
	if len(args) == 1 {
		m, err := theme.ParseMode(args[0])
		if err != nil {
			return err
		}
		mode = m
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if mode == "" {
		fmt.Fprintln(cmd.OutOrStdout(), s.engine.State().Mode)
		return nil
	}

	if err := s.engine.SetMode(mode); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme mode set to %s\n", styles.ModeBadge(string(mode)))
	return nil
}
