package theme

import (
	"fmt"
	"text/tabwriter"

	"multidrop/internal/color"
	"multidrop/internal/tui/styles"

	"github.com/spf13/cobra"
)

// PresetsCommand returns the "theme presets" command.
func PresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the preset colors",
		Long: `List the named colors accepted by "theme primary" and "theme color".

Examples:
  multidrop theme presets`,
		Args:         cobra.NoArgs,
		RunE:         runPresets,
		SilenceUsage: true,
	}

	return cmd
}

func runPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Title.Render("Primary"))
	printPresets(cmd, color.PrimaryPresets)

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Title.Render("Secondary, text, border and button"))
	printPresets(cmd, color.RolePresets)
	return nil
}

func printPresets(cmd *cobra.Command, presets []color.Preset) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, p := range presets {
		hex, err := color.Normalize(p.Hex)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\n", p.Name, styles.Swatch(hex))
	}
	w.Flush()
}
