package cmd

import (
	"fmt"
	"os"
	"strings"

	cfgcmd "multidrop/cmd/commands/config"
	"multidrop/cmd/commands/locale"
	"multidrop/cmd/commands/theme"
	"multidrop/internal/config"
	"multidrop/internal/database"
	"multidrop/internal/logging"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "multidrop",
		Short: "Manage the multidrop storefront theme and language",
		Long: `multidrop is a command-line tool for customizing the multidrop checkout:
its dark/light mode, primary accent, role colors and language.

Preferences are saved locally and restored on every start.

Quick start:
  multidrop theme show                 # Current theme with swatches
  multidrop theme primary "#1a73e8"    # Change the accent color
  multidrop theme toggle               # Switch dark/light mode
  multidrop theme css > theme.css      # Export the derived variables
  multidrop locale set de              # Switch the storefront to German`,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("db", "", "Path to the preferences database")

	cmd.AddCommand(theme.NewCommand())
	cmd.AddCommand(locale.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// setup applies the config file and persistent flags before any command
// runs. Flags take precedence over the config file.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	if err := logging.Init(cmd.ErrOrStderr(), level); err != nil {
		return fmt.Errorf("invalid log_level in config: %w", err)
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath = strings.TrimSpace(dbPath); dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	if dbPath != "" {
		database.SetPath(dbPath)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
