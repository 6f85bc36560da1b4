package theme

// Style variable names. Values are "<hue> <saturation>% <lightness>%".
const (
	VarBackground          = "background"
	VarForeground          = "foreground"
	VarCard                = "card"
	VarCardForeground      = "card-foreground"
	VarPopover             = "popover"
	VarPopoverForeground   = "popover-foreground"
	VarMuted               = "muted"
	VarMutedForeground     = "muted-foreground"
	VarInput               = "input"
	VarBorder              = "border"
	VarRing                = "ring"
	VarAccent              = "accent"
	VarAccentForeground    = "accent-foreground"
	VarPrimary             = "primary"
	VarPrimaryForeground   = "primary-foreground"
	VarSecondary           = "secondary"
	VarSecondaryForeground = "secondary-foreground"
)

// Variables lists every projected style variable.
var Variables = []string{
	VarBackground, VarForeground,
	VarCard, VarCardForeground,
	VarPopover, VarPopoverForeground,
	VarMuted, VarMutedForeground,
	VarInput, VarBorder, VarRing,
	VarAccent, VarAccentForeground,
	VarPrimary, VarPrimaryForeground,
	VarSecondary, VarSecondaryForeground,
}

// BaseVariables are the variables a mode switch rewrites.
var BaseVariables = []string{
	VarBackground, VarForeground,
	VarCard, VarCardForeground,
	VarPopover, VarPopoverForeground,
	VarMutedForeground, VarInput,
	VarAccent, VarAccentForeground,
}

var lightPalette = map[string]string{
	VarBackground:        "0 0% 100%",
	VarForeground:        "224 71% 4%",
	VarCard:              "0 0% 98%",
	VarCardForeground:    "224 71% 4%",
	VarPopover:           "0 0% 100%",
	VarPopoverForeground: "224 71% 4%",
	VarMutedForeground:   "220 8.9% 46.1%",
	VarInput:             "214 32% 91%",
	VarAccent:            "210 40% 96.1%",
	VarAccentForeground:  "222.2 47.4% 11.2%",
}

var darkPalette = map[string]string{
	VarBackground:        "214 12% 5.9%",
	VarForeground:        "0 0% 98%",
	VarCard:              "222 5% 12%",
	VarCardForeground:    "0 0% 98%",
	VarPopover:           "240 10% 3.9%",
	VarPopoverForeground: "0 0% 98%",
	VarMutedForeground:   "240 5% 64.9%",
	VarInput:             "240 3.7% 20%",
	VarAccent:            "217.2 32.6% 17.5%",
	VarAccentForeground:  "210 40% 98%",
}

// Palette returns a copy of the base palette for m.
func Palette(m Mode) map[string]string {
	src := darkPalette
	if m == Light {
		src = lightPalette
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
