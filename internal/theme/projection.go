package theme

import (
	"fmt"
	"strings"

	"multidrop/internal/color"
)

// Gradient is the header background derived from the primary color.
type Gradient struct {
	From string
	To   string
}

// CSS renders the gradient as a CSS background value.
func (g Gradient) CSS() string {
	return fmt.Sprintf("linear-gradient(to right, %s, %s)", g.From, g.To)
}

// Projection is the declarative style mapping a presentation layer applies.
// It carries no behavior of its own.
type Projection struct {
	// Vars maps style variable names (without the leading "--") to HSL
	// triples.
	Vars map[string]string

	// Marker is the class that identifies the active mode.
	Marker string

	Gradient Gradient
}

// Var returns the value of a style variable.
func (p Projection) Var(name string) string {
	return p.Vars[name]
}

// CSS renders the projection as a stylesheet.
func (p Projection) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, ":root.%s {\n", p.Marker)
	for _, name := range Variables {
		if v, ok := p.Vars[name]; ok {
			fmt.Fprintf(&b, "  --%s: %s;\n", name, v)
		}
	}
	b.WriteString("}\n")
	if p.Gradient.From != "" {
		fmt.Fprintf(&b, "header {\n  background: %s;\n}\n", p.Gradient.CSS())
	}
	return b.String()
}

func (p Projection) clone() Projection {
	vars := make(map[string]string, len(p.Vars))
	for k, v := range p.Vars {
		vars[k] = v
	}
	p.Vars = vars
	return p
}

// apply overlays vars onto p. Later writes win.
func (p *Projection) apply(vars map[string]string) {
	if p.Vars == nil {
		p.Vars = make(map[string]string, len(Variables))
	}
	for k, v := range vars {
		p.Vars[k] = v
	}
}

// Derived tones of the primary color.
const (
	secondaryShade = -25
	gradientShade  = -15
)

// primaryVars derives every variable driven by the primary color.
func primaryVars(hex string) (map[string]string, Gradient) {
	base := color.HexToHSL(hex).String()
	fg := color.HexToHSL(color.ContrastingColor(hex)).String()
	secondary := color.HexToHSL(color.AdjustBrightness(hex, secondaryShade)).String()

	vars := map[string]string{
		VarPrimary:             base,
		VarPrimaryForeground:   fg,
		VarRing:                base,
		VarAccent:              base,
		VarSecondary:           secondary,
		VarSecondaryForeground: fg,
		VarMuted:               secondary,
		VarBorder:              secondary,
	}
	return vars, Gradient{From: hex, To: color.AdjustBrightness(hex, gradientShade)}
}

// roleVars derives the fixed variable subset owned by r. legacy selects
// the |l-90| foreground approximation instead of a contrasting color.
func roleVars(r Role, hex string, legacy bool) map[string]string {
	c := color.HexToHSL(hex)
	base := c.String()

	switch r {
	case RoleSecondary:
		return map[string]string{
			VarSecondary:           base,
			VarSecondaryForeground: foreground(hex, c, c.S, legacy),
			VarMuted:               base,
		}
	case RoleText:
		muted := color.HSL{H: c.H, S: max(c.S-20, 0), L: max(c.L-30, 20)}
		return map[string]string{
			VarForeground:        base,
			VarPopoverForeground: base,
			VarCardForeground:    base,
			VarAccentForeground:  base,
			VarMutedForeground:   muted.String(),
		}
	case RoleBorder:
		input := color.HSL{H: c.H, S: c.S, L: min(c.L+10, 90)}
		ring := color.HSL{H: c.H, S: min(c.S+10, 100), L: min(c.L+10, 90)}
		return map[string]string{
			VarBorder: base,
			VarInput:  input.String(),
			VarRing:   ring.String(),
		}
	case RoleButton:
		return map[string]string{
			VarPrimary:           base,
			VarPrimaryForeground: foreground(hex, c, min(c.S, 10), legacy),
			VarAccent:            base,
		}
	}
	return nil
}

func foreground(hex string, c color.HSL, legacySat int, legacy bool) string {
	if legacy {
		return color.HSL{H: c.H, S: legacySat, L: abs(c.L - 90)}.String()
	}
	return color.HexToHSL(color.ContrastingColor(hex)).String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
