package dialog

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/tui/theme"
)

type Kind uint

const (
	KindInfo Kind = iota
	KindError
	KindConfirm
)

// Dialog blocks all other input until it is dismissed.
type Dialog struct {
	Kind  Kind
	Title string
	Text  string
	// OnYes runs when a confirm dialog is accepted.
	OnYes tea.Cmd
	// Then is emitted when an alert is dismissed.
	Then tea.Msg
}

// HandleKey reports whether the dialog closed and the command to run.
func (d Dialog) HandleKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	key := msg.String()

	if d.Kind == KindConfirm {
		switch key {
		case "y", "enter":
			return true, d.OnYes
		case "n", "esc":
			return true, nil
		}
		return false, nil
	}

	switch key {
	case "enter", "esc", "space":
		if d.Then == nil {
			return true, nil
		}
		then := d.Then
		return true, func() tea.Msg { return then }
	}
	return false, nil
}

func (d Dialog) View(t theme.Theme) string {
	titleStyle := t.Title()
	hint := "enter to dismiss"
	switch d.Kind {
	case KindError:
		titleStyle = t.Danger().Bold(true)
	case KindConfirm:
		hint = "y confirm · n cancel"
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(d.Title),
		"",
		t.Base().Width(min(max(lipgloss.Width(d.Text), 24), 56)).Align(lipgloss.Center).Render(d.Text),
		"",
		t.Muted().Render(hint),
	)

	border := theme.ColorAccent
	if d.Kind == KindError {
		border = theme.ColorDanger
	}

	return t.Card().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(body)
}
