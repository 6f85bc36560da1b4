package theme

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"multidrop/internal/theme"
	"multidrop/internal/tui/styles"

	"github.com/spf13/cobra"
)

// stateJSON is the machine-readable form of a theme.
type stateJSON struct {
	Mode      string            `json:"mode"`
	Marker    string            `json:"marker"`
	Primary   string            `json:"primary"`
	Colors    map[string]string `json:"colors"`
	Variables map[string]string `json:"variables"`
	Gradient  theme.Gradient    `json:"gradient"`
}

func newStateJSON(s theme.State, p theme.Projection) stateJSON {
	colors := make(map[string]string, len(theme.Roles))
	for _, r := range theme.Roles {
		colors[string(r)] = s.Colors.Get(r)
	}
	return stateJSON{
		Mode:      string(s.Mode),
		Marker:    p.Marker,
		Primary:   s.Primary,
		Colors:    colors,
		Variables: p.Vars,
		Gradient:  p.Gradient,
	}
}

// printStateJSON encodes a theme as indented JSON to the command's stdout.
func printStateJSON(cmd *cobra.Command, s theme.State, p theme.Projection) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(newStateJSON(s, p))
}

// printStateDetail prints a vertical key-value table of the theme with
// color swatches.
func printStateDetail(cmd *cobra.Command, s theme.State, p theme.Projection) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  Mode:\t%s\n", styles.ModeBadge(string(s.Mode)))
	fmt.Fprintf(w, "  Primary:\t%s\n", styles.Swatch(s.Primary))
	for _, r := range theme.Roles {
		fmt.Fprintf(w, "  %s:\t%s\n", roleLabel(r), styles.Swatch(s.Colors.Get(r)))
	}
	w.Flush()

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "  Header:  %s\n", styles.Gradient(p.Gradient.From, p.Gradient.To, 24))
	fmt.Fprintf(cmd.OutOrStdout(), "  Button:  %s\n", styles.Chip("Buy now", s.Colors.Button))
}

func roleLabel(r theme.Role) string {
	name := string(r)
	return strings.ToUpper(name[:1]) + name[1:]
}
