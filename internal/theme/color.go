package theme

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a colour in the cylindrical hue/saturation/lightness space.
// H is in degrees, S and L are percentages (0-100).
type HSL struct {
	H float64
	S float64
	L float64
}

// HSLA is an HSL colour with an alpha channel in [0,1].
type HSLA struct {
	HSL
	A float64
}

// Shift returns the colour with the given deltas applied. Hue wraps into [0,360).
func (c HSL) Shift(dh, ds, dl float64) HSL {
	return HSL{H: normalizeHue(c.H + dh), S: c.S + ds, L: c.L + dl}
}

// WithAlpha attaches an alpha channel.
func (c HSL) WithAlpha(a float64) HSLA {
	return HSLA{HSL: c, A: a}
}

// String renders the colour as a CSS hsl() value.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", trimFloat(c.H), trimFloat(c.S), trimFloat(c.L))
}

// String renders the colour as a CSS hsla() value.
func (c HSLA) String() string {
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", trimFloat(c.H), trimFloat(c.S), trimFloat(c.L), trimFloat(c.A))
}

// Color converts to a go-colorful colour, clamping S and L into range.
func (c HSL) Color() colorful.Color {
	return colorful.Hsl(normalizeHue(c.H), clamp01(c.S/100), clamp01(c.L/100)).Clamped()
}

// Hex converts to an sRGB hex string (#rrggbb) for terminal rendering.
func (c HSL) Hex() string {
	return c.Color().Hex()
}

// Hex of an HSLA colour composites it over bg, since terminals have no alpha.
func (c HSLA) Hex(bg HSL) string {
	return bg.Color().BlendRgb(c.HSL.Color(), clamp01(c.A)).Clamped().Hex()
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// trimFloat prints at most two decimals and drops trailing zeros.
func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
