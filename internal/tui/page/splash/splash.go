package splash

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/tui/theme"
)

const Duration = 1200 * time.Millisecond

const Logo = `
 ▄▄▄▄  ▄▄▄  ▄▄▄▄ ▄▄▄▄   ▄▄▄  ▄   ▄  ▄▄▄  ▄  ▄ ▄▄▄▄
 █▄▄▄ █▄▄▄█ █▄▄  █▄▄   █   █ █   █ █▄▄▄█ █▄▀  █▄▄
 ▄▄▄█ █   █ █    █▄▄▄  ▀▄▄▀▄ ▀▄▄▄▀ █   █ █ ▀▄ █▄▄▄`

const tagline = "earthquake records, from your terminal"

type TickMsg struct{}

func LogoView(t theme.Theme) string {
	return t.TextAccent().Render(Logo)
}

func View(t theme.Theme, width, height int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		LogoView(t),
		"",
		t.Muted().Render(tagline),
	)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
