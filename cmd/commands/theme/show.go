package theme

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "theme show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		Long: `Show the current theme with color swatches.

Examples:
  multidrop theme show
  multidrop theme show -o json`,
		Args:         cobra.NoArgs,
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	state, proj := s.engine.State(), s.engine.Projection()
	if output == "json" {
		return printStateJSON(cmd, state, proj)
	}

	printStateDetail(cmd, state, proj)
	return nil
}
