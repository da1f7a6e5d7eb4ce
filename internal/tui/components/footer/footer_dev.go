//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/tui/theme"
	"github.com/garrettladley/safequake/internal/version"
)

var (
	devVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorMuted).Faint(true)
	hintStyle       = lipgloss.NewStyle().Foreground(theme.ColorMuted)
)

func (f Footer) leftContent() string {
	return devVersionStyle.Render(version.Get())
}
