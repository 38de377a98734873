package theme

import (
	"fmt"
	"math"
)

// GradientStop is an authored anchor point for piecewise interpolation.
type GradientStop struct {
	Progress   float64
	Hue        float64
	Saturation float64
	Lightness  float64
}

// HSL returns the stop's colour.
func (s GradientStop) HSL() HSL {
	return HSL{H: s.Hue, S: s.Saturation, L: s.Lightness}
}

// PrimaryStops runs blue, purple, pink, red, orange.
var PrimaryStops = []GradientStop{
	{Progress: 0, Hue: 210, Saturation: 90, Lightness: 60},
	{Progress: 25, Hue: 260, Saturation: 90, Lightness: 65},
	{Progress: 50, Hue: 320, Saturation: 90, Lightness: 65},
	{Progress: 75, Hue: 5, Saturation: 90, Lightness: 60},
	{Progress: 100, Hue: 30, Saturation: 95, Lightness: 55},
}

// BackgroundStops are the dark counterparts of PrimaryStops.
var BackgroundStops = []GradientStop{
	{Progress: 0, Hue: 221, Saturation: 39, Lightness: 11},
	{Progress: 25, Hue: 270, Saturation: 50, Lightness: 10},
	{Progress: 50, Hue: 330, Saturation: 50, Lightness: 10},
	{Progress: 75, Hue: 0, Saturation: 60, Lightness: 10},
	{Progress: 100, Hue: 20, Saturation: 70, Lightness: 10},
}

// Clamp limits progress to [0,100].
func Clamp(progress float64) float64 {
	if math.IsNaN(progress) {
		return 0
	}
	return math.Min(100, math.Max(0, progress))
}

// Interpolate blends the bracketing stops for progress.
// Saturation and lightness are linear; hue takes the shortest way around the circle.
func Interpolate(stops []GradientStop, progress float64) HSL {
	if len(stops) == 0 {
		return HSL{}
	}
	p := Clamp(progress)

	lower, upper := bracket(stops, p)
	if lower == upper {
		return lower.HSL()
	}

	t := (p - lower.Progress) / (upper.Progress - lower.Progress)

	h1, h2 := lower.Hue, upper.Hue
	if math.Abs(h2-h1) > 180 {
		if h2 > h1 {
			h1 += 360
		} else {
			h2 += 360
		}
	}

	return HSL{
		H: math.Mod(h1+(h2-h1)*t, 360),
		S: lower.Saturation + (upper.Saturation-lower.Saturation)*t,
		L: lower.Lightness + (upper.Lightness-lower.Lightness)*t,
	}
}

// bracket finds the greatest stop at or below p and the smallest stop above it.
// A missing lower falls back to the first stop, a missing upper to the last.
func bracket(stops []GradientStop, p float64) (GradientStop, GradientStop) {
	lower := stops[0]
	for _, s := range stops {
		if s.Progress <= p {
			lower = s
		}
	}

	upper := stops[len(stops)-1]
	for _, s := range stops {
		if s.Progress > p {
			upper = s
			break
		}
	}
	return lower, upper
}

// ValidateStops checks that stops are strictly ascending and cover [0,100].
func ValidateStops(stops []GradientStop) error {
	if len(stops) < 2 {
		return fmt.Errorf("gradient needs at least two stops, got %d", len(stops))
	}
	if stops[0].Progress != 0 {
		return fmt.Errorf("first stop must be at 0, got %v", stops[0].Progress)
	}
	if last := stops[len(stops)-1].Progress; last != 100 {
		return fmt.Errorf("last stop must be at 100, got %v", last)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Progress <= stops[i-1].Progress {
			return fmt.Errorf("stop %d (%v) is not after stop %d (%v)", i, stops[i].Progress, i-1, stops[i-1].Progress)
		}
	}
	return nil
}
