package config

import (
	"multidrop/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage multidrop configuration",
		Long: "View and modify persistent multidrop CLI settings.\n\n" +
			"Configuration is stored at ~/.config/multidrop/config.json.\n" +
			"Theme and locale preferences are managed with \"theme\" and \"locale\".\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
