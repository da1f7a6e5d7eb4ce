package gauge

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"
	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/safequake/internal/tui/theme"
)

const (
	// braille dots: 2 per char of width, 4 per char of height
	defaultDots = 36
	minDots     = 16

	// MaxMagnitude is the top of the Richter scale the gauge draws against.
	MaxMagnitude = 10.0
)

// Gauge is a circular dial with the value printed in its hollow center.
type Gauge struct {
	Value     *float64 // nil renders "--"
	Max       float64
	Label     string
	Caption   string
	Color     color.Color
	BgColor   color.Color
	TextColor color.Color
	Dots      int
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) { g.BgColor = c }
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) { g.TextColor = c }
}

func WithCaption(caption string) Option {
	return func(g *Gauge) { g.Caption = caption }
}

// WithDots sets the dial diameter in braille dots.
func WithDots(dots int) Option {
	return func(g *Gauge) { g.Dots = max(dots, minDots) }
}

func New(value *float64, maxValue float64, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Value:     value,
		Max:       maxValue,
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorCard,
		TextColor: theme.ColorWhite,
		Dots:      defaultDots,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Magnitude builds the dial for an earthquake magnitude, colored by severity.
func Magnitude(magnitude float64, nivel string, opts ...Option) Gauge {
	opts = append([]Option{WithCaption(nivel)}, opts...)
	return New(&magnitude, MaxMagnitude, "MAGNITUDE", theme.MagnitudeColor(magnitude), opts...)
}

func (g Gauge) fraction() float64 {
	if g.Value == nil || g.Max <= 0 {
		return 0
	}
	return min(max(*g.Value/g.Max, 0), 1)
}

func (g Gauge) Render() string {
	var (
		canvas = drawille.NewCanvas()
		center = float64(g.Dots) / 2
		radius = center - 1
	)

	drawFullArc(&canvas, center, center, radius)
	bgArc := canvasString(&canvas, g.Dots, g.Dots)

	canvas.Clear()
	drawFilledArc(&canvas, center, center, radius, g.fraction())
	fillArc := canvasString(&canvas, g.Dots, g.Dots)

	arc := overlayArcs(bgArc, fillArc, g.BgColor, g.Color)

	valueStr := "--"
	if g.Value != nil {
		valueStr = fmt.Sprintf("%.1f", *g.Value)
	}

	var (
		arcWidth  = lipgloss.Width(arc)
		arcHeight = lipgloss.Height(arc)
		value     = lipgloss.NewStyle().Foreground(g.TextColor).Bold(true).Render(valueStr)
		centered  = lipgloss.Place(arcWidth, arcHeight, lipgloss.Center, lipgloss.Center, value)
		label     = lipgloss.NewStyle().Foreground(g.TextColor).Bold(true).Width(arcWidth).Align(lipgloss.Center)
	)

	rows := []string{overlay(arc, centered), label.Render(g.Label)}
	if g.Caption != "" {
		caption := lipgloss.NewStyle().Foreground(g.Color).Width(arcWidth).Align(lipgloss.Center)
		rows = append(rows, caption.Render(g.Caption))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// canvasString renders the canvas padded to exactly width x height dots.
func canvasString(canvas *drawille.Canvas, width, height int) string {
	charWidth, charHeight := width/2, height/4
	rows := canvas.Rows(0, 0, width, height)

	lines := make([]string, charHeight)
	for i := range lines {
		var line []rune
		if i < len(rows) {
			line = []rune(rows[i])
		}
		if len(line) > charWidth {
			line = line[:charWidth]
		}
		lines[i] = string(line) + strings.Repeat(" ", charWidth-len(line))
	}
	return strings.Join(lines, "\n")
}

const emptyBraille rune = '\u2800'

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// combineBraille ORs the dot patterns of two braille cells.
func combineBraille(a, b rune) rune {
	return emptyBraille + ((a - emptyBraille) | (b - emptyBraille))
}

// overlayArcs paints fill dots over the background arc, each in its own color.
func overlayArcs(bgStr, fillStr string, bgColor, fillColor color.Color) string {
	var (
		bgLines   = strings.Split(bgStr, "\n")
		fillLines = strings.Split(fillStr, "\n")
		bgStyle   = lipgloss.NewStyle().Foreground(bgColor)
		fillStyle = lipgloss.NewStyle().Foreground(fillColor)
		out       = make([]string, len(bgLines))
	)

	for i, bgLine := range bgLines {
		var fillRunes []rune
		if i < len(fillLines) {
			fillRunes = []rune(fillLines[i])
		}

		var b strings.Builder
		for j, bg := range []rune(bgLine) {
			fill := ' '
			if j < len(fillRunes) {
				fill = fillRunes[j]
			}
			hasFill := isBraille(fill) && fill != emptyBraille

			switch {
			case hasFill && isBraille(bg):
				b.WriteString(fillStyle.Render(string(combineBraille(bg, fill))))
			case hasFill:
				b.WriteString(fillStyle.Render(string(fill)))
			case isBraille(bg):
				b.WriteString(bgStyle.Render(string(bg)))
			default:
				b.WriteRune(' ')
			}
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}

// overlay places the visible part of each foreground line over the
// background, keeping the styled background cells on either side.
func overlay(background, foreground string) string {
	var (
		bgLines = strings.Split(background, "\n")
		fgLines = strings.Split(foreground, "\n")
		out     = make([]string, max(len(bgLines), len(fgLines)))
	)

	for i := range out {
		var bgLine, fgLine string
		if i < len(bgLines) {
			bgLine = bgLines[i]
		}
		if i < len(fgLines) {
			fgLine = fgLines[i]
		}

		plain := ansi.Strip(fgLine)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			out[i] = bgLine
			continue
		}
		start := ansi.StringWidth(plain) - ansi.StringWidth(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))
		bgWidth := ansi.StringWidth(bgLine)

		var b strings.Builder
		b.WriteString(ansi.Cut(bgLine, 0, min(start, bgWidth)))
		if bgWidth < start {
			b.WriteString(strings.Repeat(" ", start-bgWidth))
		}
		b.WriteString(ansi.Cut(fgLine, start, end))
		if end < bgWidth {
			b.WriteString(ansi.Cut(bgLine, end, bgWidth))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
