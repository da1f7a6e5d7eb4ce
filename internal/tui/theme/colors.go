package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorMuted = lipgloss.Color("#ADB5BD")
)

var (
	ColorAccent  = lipgloss.Color("#48CAE4") // titles, focus, highlights
	ColorPrimary = lipgloss.Color("#0077B6") // buttons, selection
	ColorDanger  = lipgloss.Color("#D90429") // errors, delete, Forte
	ColorWarning = lipgloss.Color("#FFB703") // Moderado
	ColorSuccess = lipgloss.Color("#2DC653") // confirmations, Leve
)

var (
	ColorBgDark = lipgloss.Color("#101820")
	ColorCard   = lipgloss.Color("#1C2B3A")
)
