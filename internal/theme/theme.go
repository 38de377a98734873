// Package theme maps the simulated temperature to colour tokens.
//
// Two authored gradients (primary and background) are sampled at the
// current progress, and the remaining tokens are fixed offsets of those
// two samples:
//
//	bg-via      = bg   (h+20, l+4)
//	bg-to       = bg   (h+40, l+8)
//	secondary   = prim (s-20, l+20)
//	button      = prim (s-10, l-5)
//	button-hover= prim (s-10)
//	shadow      = prim at 25% alpha
package theme

// Colors is the full token set for one progress value.
type Colors struct {
	BgFrom      HSL
	BgVia       HSL
	BgTo        HSL
	Primary     HSL
	Secondary   HSL
	Accent      HSL
	Shadow      HSLA
	Button      HSL
	ButtonHover HSL
}

// Token is a named CSS custom property and its value.
type Token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Hex   string `json:"hex"`
}

// InterpolateTheme computes every token for progress (clamped to [0,100]).
func InterpolateTheme(progress float64) Colors {
	primary := Interpolate(PrimaryStops, progress)
	bg := Interpolate(BackgroundStops, progress)

	return Colors{
		BgFrom:      bg,
		BgVia:       bg.Shift(20, 0, 4),
		BgTo:        bg.Shift(40, 0, 8),
		Primary:     primary,
		Secondary:   primary.Shift(0, -20, 20),
		Accent:      primary,
		Shadow:      primary.WithAlpha(0.25),
		Button:      primary.Shift(0, -10, -5),
		ButtonHover: primary.Shift(0, -10, 0),
	}
}

// Tokens lists the tokens in a stable order using their CSS variable names.
func (c Colors) Tokens() []Token {
	return []Token{
		{Name: "--color-bg-from", Value: c.BgFrom.String(), Hex: c.BgFrom.Hex()},
		{Name: "--color-bg-via", Value: c.BgVia.String(), Hex: c.BgVia.Hex()},
		{Name: "--color-bg-to", Value: c.BgTo.String(), Hex: c.BgTo.Hex()},
		{Name: "--color-primary", Value: c.Primary.String(), Hex: c.Primary.Hex()},
		{Name: "--color-secondary", Value: c.Secondary.String(), Hex: c.Secondary.Hex()},
		{Name: "--color-accent", Value: c.Accent.String(), Hex: c.Accent.Hex()},
		{Name: "--shadow-color", Value: c.Shadow.String(), Hex: c.Shadow.Hex(c.BgFrom)},
		{Name: "--button-bg", Value: c.Button.String(), Hex: c.Button.Hex()},
		{Name: "--button-hover", Value: c.ButtonHover.String(), Hex: c.ButtonHover.Hex()},
	}
}
