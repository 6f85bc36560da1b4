package theme

import (
	"errors"
	"fmt"
	"os"

	"multidrop/internal/theme"
	"multidrop/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// EditCommand returns the "theme edit" command.
func EditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the theme interactively",
		Long: `Open an interactive form prefilled with the current theme. Only the
values you change are applied. Requires a terminal.`,
		Args:         cobra.NoArgs,
		RunE:         runEdit,
		SilenceUsage: true,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("theme edit requires a terminal (use \"theme primary\", \"theme color\" or \"theme mode\" instead)")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	current := s.engine.State()
	next, err := tui.ThemeEditForm(current)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Theme edit cancelled.")
			return nil
		}
		return err
	}

	changed, err := applyEdit(s.engine, current, *next)
	if err != nil {
		return err
	}
	if changed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme updated (%d change(s)).\n", changed)
	printStateDetail(cmd, s.engine.State(), s.engine.Projection())
	return nil
}

// applyEdit applies the differences between current and next as individual
// engine mutations: mode first, then primary, then roles in order. It stops
// at the first failure and reports how many mutations were applied.
func applyEdit(engine *theme.Engine, current, next theme.State) (int, error) {
	changed := 0

	if next.Mode != current.Mode {
		if err := engine.SetMode(next.Mode); err != nil {
			return changed, err
		}
		changed++
	}

	if next.Primary != current.Primary {
		if err := engine.SetPrimaryColor(next.Primary); err != nil {
			return changed, err
		}
		changed++
	}

	for _, r := range theme.Roles {
		if next.Colors.Get(r) == current.Colors.Get(r) {
			continue
		}
		if err := engine.SetRoleColor(r, next.Colors.Get(r)); err != nil {
			return changed, err
		}
		changed++
	}

	return changed, nil
}
