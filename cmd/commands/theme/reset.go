package theme

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ResetCommand returns the "theme reset" command.
func ResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "reset",
		Short:        "Restore the default theme",
		Long:         "Restore the default dark theme with the green accent and save it.",
		Args:         cobra.NoArgs,
		RunE:         runReset,
		SilenceUsage: true,
	}

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.engine.Reset(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Theme reset to defaults.")
	return nil
}
