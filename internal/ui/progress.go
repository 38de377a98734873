package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 || math.IsNaN(percent) {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// CalculateBarCounts returns the number of filled and empty characters for a bar.
// Percent should be 0-100, width is the total bar width.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((ClampPercent(percent) / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	empty = width - filled
	return
}

// BuildBarString builds the raw bar string (without styling) from filled/empty counts.
// If brackets is true, wraps in [ ].
func BuildBarString(filledCount, emptyCount int, brackets bool) string {
	var sb strings.Builder
	sb.Grow(filledCount + emptyCount + 2)

	if brackets {
		sb.WriteRune('[')
	}
	sb.WriteString(strings.Repeat(string(BarFilled), filledCount))
	sb.WriteString(strings.Repeat(string(BarEmpty), emptyCount))
	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// RenderProgressBar creates a single-color progress bar.
// Output format: [████████░░░░]  67%
func RenderProgressBar(percent float64, width int, color lipgloss.TerminalColor) string {
	if width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, width)
	bar := BuildBarString(filled, empty, true)

	return lipgloss.NewStyle().Foreground(color).Render(bar) + fmt.Sprintf(" %3.0f%%", percent)
}

// GradientAt returns the color at position t (0-1) along evenly spaced hex stops.
// Channels are blended in RGB, matching a CSS linear-gradient.
func GradientAt(stops []string, t float64) colorful.Color {
	if len(stops) == 0 {
		return colorful.Color{}
	}
	parsed := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			c = colorful.Color{}
		}
		parsed[i] = c
	}
	if len(parsed) == 1 || t <= 0 {
		return parsed[0]
	}
	if t >= 1 {
		return parsed[len(parsed)-1]
	}

	segments := float64(len(parsed) - 1)
	pos := t * segments
	i := int(pos)
	return parsed[i].BlendRgb(parsed[i+1], pos-float64(i))
}

// RenderGradientBar renders the filled part of the bar with the gradient
// stretched across it, the way a CSS gradient fills a growing element.
// Output format: ████████░░░░
func RenderGradientBar(percent float64, width int, stops []string) string {
	if width <= 0 {
		return ""
	}

	filled, empty := CalculateBarCounts(percent, width)

	var sb strings.Builder
	for i := 0; i < filled; i++ {
		t := 0.0
		if filled > 1 {
			t = float64(i) / float64(filled-1)
		}
		color := lipgloss.Color(GradientAt(stops, t).Clamped().Hex())
		sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(BarFilled)))
	}
	sb.WriteString(MutedStyle().Render(strings.Repeat(string(BarEmpty), empty)))

	return sb.String()
}
