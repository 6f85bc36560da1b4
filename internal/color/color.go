// Package color holds the hex/HSL arithmetic shared by the theme engine
// and every command that previews or validates a color.
//
// All functions are pure. They are total over input accepted by
// ValidateHex; malformed input produces a degenerate but well-defined
// result (black, or the zero HSL triple) instead of an error.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a #RGB or #RRGGBB color.
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// HSL is a rounded hue/saturation/lightness triple.
// H is in [0,360), S and L are in [0,100].
type HSL struct {
	H int
	S int
	L int
}

// String renders the triple the way style variables expect it,
// e.g. "137 65% 34%".
func (c HSL) String() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

// Hex converts the triple back to #rrggbb. The result is exact only up to
// the rounding HexToHSL applied.
func (c HSL) Hex() string {
	return colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100).Clamped().Hex()
}

// ParseHSL reads a triple in the form String produces.
func ParseHSL(s string) (HSL, error) {
	var c HSL
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d %d%% %d%%", &c.H, &c.S, &c.L); err != nil {
		return HSL{}, fmt.Errorf("invalid hsl triple %q: %w", s, err)
	}
	return c, nil
}

// ValidateHex reports whether s is '#' followed by exactly 3 or 6 hex digits.
func ValidateHex(s string) bool {
	return hexPattern.MatchString(s)
}

// EnsureHash trims s and prepends '#' when it is missing. It does not
// validate the result.
func EnsureHash(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		return s
	}
	return "#" + s
}

// Normalize converts a valid hex color to lowercase #rrggbb form,
// expanding the 3-digit shorthand.
func Normalize(s string) (string, error) {
	if !ValidateHex(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return c.Hex(), nil
}

// HexToHSL converts a hex color to a rounded HSL triple. Malformed input
// yields the zero triple.
func HexToHSL(s string) HSL {
	c, ok := parse(s)
	if !ok {
		return HSL{}
	}
	h, sat, l := c.Hsl()
	hue := roundHalfUp(h)
	if hue >= 360 {
		hue -= 360
	}
	return HSL{H: hue, S: roundHalfUp(sat * 100), L: roundHalfUp(l * 100)}
}

// AdjustBrightness scales every channel by (1 + percent/100), clamping to
// [0,255]. Negative percentages darken.
func AdjustBrightness(s string, percent int) string {
	r, g, b := rgb255(s)
	scale := func(v uint8) float64 {
		x := float64(v) + float64(v)*float64(percent)/100
		x = math.Max(0, math.Min(255, x))
		return float64(roundHalfUp(x)) / 255
	}
	return colorful.Color{R: scale(r), G: scale(g), B: scale(b)}.Hex()
}

// Luminance returns the coarse perceptual luminance 0.299r+0.587g+0.114b
// normalized to [0,1]. No gamma correction is applied.
func Luminance(s string) float64 {
	r, g, b := rgb255(s)
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// ContrastingColor returns black for light inputs and white for dark ones.
func ContrastingColor(s string) string {
	if Luminance(s) > 0.5 {
		return Black
	}
	return White
}

// Blend mixes from and to in Lab space; t=0 yields from, t=1 yields to.
func Blend(from, to string, t float64) string {
	a, _ := parse(from)
	b, _ := parse(to)
	return a.BlendLab(b, math.Max(0, math.Min(1, t))).Clamped().Hex()
}

const (
	Black = "#000000"
	White = "#ffffff"
)

func parse(s string) (colorful.Color, bool) {
	if !ValidateHex(s) {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// rgb255 returns the 8-bit channels of s, or black when s is malformed.
func rgb255(s string) (r, g, b uint8) {
	c, ok := parse(s)
	if !ok {
		return 0, 0, 0
	}
	return c.RGB255()
}

// roundHalfUp rounds half up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
