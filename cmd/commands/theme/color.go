package theme

import (
	"fmt"

	"multidrop/internal/color"
	"multidrop/internal/theme"
	"multidrop/internal/tui/styles"

	"github.com/spf13/cobra"
)

// ColorCommand returns the "theme color" command.
func ColorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color <role> <hex|preset>",
		Short: "Set a role color",
		Long: `Set the color of one role: secondary, text, border or button.
Only the variables owned by that role are re-derived.

Examples:
  multidrop theme color border "#374151"
  multidrop theme color button teal`,
		Args:         cobra.ExactArgs(2),
		RunE:         runColor,
		SilenceUsage: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names := make([]string, len(theme.Roles))
			for i, r := range theme.Roles {
				names[i] = string(r)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runColor(cmd *cobra.Command, args []string) error {
	role, err := theme.ParseRole(args[0])
	if err != nil {
		return err
	}
	hex, err := resolveColor(args[1], color.RolePresets)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.engine.SetRoleColor(role, hex); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s color set to %s\n", roleLabel(role), styles.Swatch(hex))
	return nil
}
