package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent)
}

func (t Theme) Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

func (t Theme) Danger() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDanger)
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
}

func (t Theme) Button() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorPrimary).
		Padding(0, 2).
		Bold(true)
}

func (t Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(ColorCard).
		Foreground(t.foreground).
		Padding(1, 3)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}

// MagnitudeColor grades a magnitude the same way the server classifies it.
func MagnitudeColor(magnitude float64) color.Color {
	switch {
	case magnitude < 4:
		return ColorSuccess
	case magnitude < 6:
		return ColorWarning
	default:
		return ColorDanger
	}
}
