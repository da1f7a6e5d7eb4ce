package auth

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/session"
	"github.com/garrettladley/safequake/internal/tui/theme"
)

const statusDot = "●"

type Indicator struct {
	Session session.Checker
}

func (a Indicator) Render() string {
	if a.Session == nil {
		return lipgloss.NewStyle().
			Foreground(theme.ColorCard).
			Render(statusDot + " checking...")
	}

	if a.Session.IsAuthenticated() {
		return lipgloss.NewStyle().
			Foreground(theme.ColorSuccess).
			Render(statusDot + " signed in")
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorDanger).
		Render(statusDot + " signed out")
}
