package locale

import (
	"fmt"

	"multidrop/internal/locale"
	"multidrop/internal/logging"
	"multidrop/internal/store"

	"github.com/spf13/cobra"
)

// NewCommand returns the "locale" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Manage the storefront language",
		Long: "View and change the storefront language.\n\n" +
			"Supported locales: pt-BR (default), de.",
		SilenceUsage: true,
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(ToggleCommand())

	return cmd
}

// GetCommand returns the "locale get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "get",
		Short:        "Print the current locale",
		Args:         cobra.NoArgs,
		RunE:         runGet,
		SilenceUsage: true,
	}
}

// SetCommand returns the "locale set" command.
func SetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <locale>",
		Short: "Set the locale",
		Long: `Set the storefront locale.

Examples:
  multidrop locale set de
  multidrop locale set pt-BR`,
		Args:         cobra.ExactArgs(1),
		ValidArgs:    []string{string(locale.PortugueseBR), string(locale.German)},
		RunE:         runSet,
		SilenceUsage: true,
	}
}

// ToggleCommand returns the "locale toggle" command.
func ToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "toggle",
		Short:        "Switch to the other locale",
		Args:         cobra.NoArgs,
		RunE:         runToggle,
		SilenceUsage: true,
	}
}

func openService() (*locale.Service, func() error, error) {
	kv, err := store.Open()
	if err != nil {
		return nil, nil, err
	}
	return locale.NewService(kv, logging.Component("locale")), kv.Close, nil
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	l := svc.Current()
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", l, l.DisplayName())
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	l, err := locale.Parse(args[0])
	if err != nil {
		return err
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.Set(l); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Locale set to %s (%s)\n", l, l.DisplayName())
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	l, err := svc.Toggle()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Locale set to %s (%s)\n", l, l.DisplayName())
	return nil
}
