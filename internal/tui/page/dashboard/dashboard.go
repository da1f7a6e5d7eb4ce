package dashboard

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/tui/nav"
	"github.com/garrettladley/safequake/internal/tui/page"
	"github.com/garrettladley/safequake/internal/tui/page/splash"
	"github.com/garrettladley/safequake/internal/tui/theme"
)

const Hints = "↑/↓ move · enter open · q quit"

type item struct {
	label string
	key   string
}

var items = []item{
	{label: "Classified earthquakes", key: "l"},
	{label: "Register an earthquake", key: "n"},
	{label: "Log out", key: "o"},
}

const (
	itemList = iota
	itemCreate
	itemLogout
)

type State struct {
	deps   page.Deps
	cursor int
}

func New(deps page.Deps) State {
	return State{deps: deps}
}

func (s State) Update(msg tea.Msg) (State, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch k := key.String(); k {
	case "q", "esc":
		return s, tea.Quit
	case "up", "k":
		s.cursor = (s.cursor - 1 + len(items)) % len(items)
	case "down", "j":
		s.cursor = (s.cursor + 1) % len(items)
	case "enter":
		return s, s.open(s.cursor)
	default:
		for i, it := range items {
			if it.key == k {
				s.cursor = i
				return s, s.open(i)
			}
		}
	}
	return s, nil
}

func (s State) open(i int) tea.Cmd {
	switch i {
	case itemList:
		return nav.Go(nav.PageQuakes)
	case itemCreate:
		return nav.Go(nav.PageCreate)
	case itemLogout:
		return nav.Confirm("Log out", "Do you really want to log out?", LogoutCmd(s.deps))
	}
	return nil
}

// LogoutCmd clears the stored token and reports the outcome.
func LogoutCmd(deps page.Deps) tea.Cmd {
	return func() tea.Msg {
		if err := deps.Session.Logout(deps.Ctx); err != nil {
			return nav.LogoutMsg{Err: err}
		}
		deps.Logger.InfoContext(deps.Ctx, "signed out")
		return nav.LogoutMsg{}
	}
}

func (s State) View(t theme.Theme, width, height int) string {
	rows := make([]string, 0, len(items))
	for i, it := range items {
		line := "  " + it.label
		style := t.Base()
		if i == s.cursor {
			line = "> " + it.label
			style = t.Accent().Bold(true)
		}
		if i == itemLogout {
			style = style.Foreground(theme.ColorDanger)
		}
		rows = append(rows, style.Render(line)+"  "+t.Muted().Render("["+it.key+"]"))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		t.Title().Render("Dashboard"),
		"",
		t.Card().Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
