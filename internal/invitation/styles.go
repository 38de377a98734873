package invitation

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/invite/internal/theme"
)

// Fixed text colors. Everything else follows the theme.
const (
	ColorText          = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#D1D5DB")
	ColorTextMuted     = lipgloss.Color("#9CA3AF")
	ColorError         = lipgloss.Color("#F87171")
	ColorSuccess       = lipgloss.Color("#4ADE80")
)

var (
	mutedStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)

	textStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)

	errorStyle = lipgloss.NewStyle().Foreground(ColorError)

	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
)

// Palette is the theme at one temperature, as terminal colors.
type Palette struct {
	Background    lipgloss.Color
	BackgroundVia lipgloss.Color
	BackgroundTo  lipgloss.Color
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Shadow        lipgloss.Color
	Button        lipgloss.Color
	ButtonHover   lipgloss.Color
}

// NewPalette converts theme colors for lipgloss. The translucent shadow is
// composited over the background since terminals have no alpha.
func NewPalette(c theme.Colors) Palette {
	return Palette{
		Background:    lipgloss.Color(c.BgFrom.Hex()),
		BackgroundVia: lipgloss.Color(c.BgVia.Hex()),
		BackgroundTo:  lipgloss.Color(c.BgTo.Hex()),
		Primary:       lipgloss.Color(c.Primary.Hex()),
		Secondary:     lipgloss.Color(c.Secondary.Hex()),
		Accent:        lipgloss.Color(c.Accent.Hex()),
		Shadow:        lipgloss.Color(c.Shadow.Hex(c.BgFrom)),
		Button:        lipgloss.Color(c.Button.Hex()),
		ButtonHover:   lipgloss.Color(c.ButtonHover.Hex()),
	}
}

// PaletteAt is the palette for a theme progress value (0-100).
func PaletteAt(progress float64) Palette {
	return NewPalette(theme.InterpolateTheme(progress))
}

// TitleStyle is the big heading of each screen.
func (p Palette) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
}

// SubtitleStyle sits under a title.
func (p Palette) SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Secondary)
}

// SectionStyle heads a block on the details screen.
func (p Palette) SectionStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}

// CardStyle frames a screen's content.
func (p Palette) CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Shadow).
		Padding(1, 3)
}

// ModalStyle frames the RSVP form and the help overlay.
func (p Palette) ModalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Background(p.BackgroundVia).
		Padding(1, 2)
}

// ButtonStyle renders a call to action. Focused buttons use the hover color.
func (p Palette) ButtonStyle(focused bool) lipgloss.Style {
	bg := p.Button
	if focused {
		bg = p.ButtonHover
	}
	return lipgloss.NewStyle().
		Foreground(ColorText).
		Background(bg).
		Bold(true).
		Padding(0, 2)
}

// InputStyle frames a text field, highlighting the focused one.
func (p Palette) InputStyle(focused bool) lipgloss.Style {
	border := ColorTextMuted
	if focused {
		border = p.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
