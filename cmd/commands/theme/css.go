package theme

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CSSCommand returns the "theme css" command.
func CSSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the theme as CSS custom properties",
		Long: `Print the derived style variables as a CSS rule scoped to the mode
class, followed by the header gradient.

Examples:
  multidrop theme css > theme.css`,
		Args:         cobra.NoArgs,
		RunE:         runCSS,
		SilenceUsage: true,
	}

	return cmd
}

func runCSS(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprint(cmd.OutOrStdout(), s.engine.Projection().CSS())
	return nil
}
