//go:build release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/tui/theme"
)

var hintStyle = lipgloss.NewStyle().Foreground(theme.ColorMuted)

func (f Footer) leftContent() string {
	return ""
}
