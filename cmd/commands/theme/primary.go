package theme

import (
	"fmt"

	"multidrop/internal/color"
	"multidrop/internal/tui/styles"

	"github.com/spf13/cobra"
)

// PrimaryCommand returns the "theme primary" command.
func PrimaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primary <hex|preset>",
		Short: "Set the primary accent color",
		Long: `Set the primary accent color. The accent drives the primary, ring and
accent variables, a darker secondary tone and the header gradient.

The color may be given as #RGB, #RRGGBB (the '#' is optional) or as the
name of a preset (see "multidrop theme presets").

Examples:
  multidrop theme primary "#1a73e8"
  multidrop theme primary 1a73e8
  multidrop theme primary purple`,
		Args:         cobra.ExactArgs(1),
		RunE:         runPrimary,
		SilenceUsage: true,
	}

	return cmd
}

func runPrimary(cmd *cobra.Command, args []string) error {
	hex, err := resolveColor(args[0], color.PrimaryPresets)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.engine.SetPrimaryColor(hex); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Primary color set to %s\n", styles.Swatch(hex))
	return nil
}
