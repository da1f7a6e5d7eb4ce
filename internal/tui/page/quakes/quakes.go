package quakes

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/forms"
	"github.com/garrettladley/safequake/internal/tui/components/form"
	"github.com/garrettladley/safequake/internal/tui/components/gauge"
	"github.com/garrettladley/safequake/internal/tui/nav"
	"github.com/garrettladley/safequake/internal/tui/page"
	"github.com/garrettladley/safequake/internal/tui/theme"
)

const (
	Hints     = "↑/↓ move · e edit · d delete · r refresh · esc back"
	EditHints = "enter save · esc cancel"
)

type State struct {
	deps    page.Deps
	ctrl    *Controller
	cursor  int
	loading bool
	loaded  bool

	editing bool
	editID  int64
	edit    form.Form
}

func New(deps page.Deps) State {
	return State{deps: deps, ctrl: NewController(deps.Client)}
}

func (s State) Loading() bool { return s.loading }
func (s State) Editing() bool { return s.editing }

// Items is the local copy of the list.
func (s State) Items() []quake.Earthquake { return s.ctrl.Items() }

// Enter fetches a fresh copy of the list.
func (s State) Enter() (State, tea.Cmd) {
	s.editing = false
	s.loading = true
	return s, s.fetchCmd()
}

// Append adds a record created on another page.
func (s State) Append(e quake.Earthquake) State {
	if _, ok := s.ctrl.Get(e.ID); !ok {
		s.ctrl.Append(e)
	}
	return s
}

func (s State) selected() (quake.Earthquake, bool) {
	return s.ctrl.At(s.cursor)
}

func (s State) clampCursor() State {
	s.cursor = min(max(s.cursor, 0), max(s.ctrl.Len()-1, 0))
	return s
}

func (s State) Update(msg tea.Msg) (State, tea.Cmd) {
	switch msg := msg.(type) {
	case FetchedMsg:
		s.loading = false
		if msg.Err != nil {
			return s, nav.Alert("Error", quake.UserMessage(msg.Err, quake.MsgFetchFailed), msg.Err, nil)
		}
		s.loaded = true
		return s.clampCursor(), nil

	case UpdatedMsg:
		s.loading = false
		if msg.Err != nil {
			return s, nav.Alert("Error", quake.UserMessage(msg.Err, quake.MsgUpdateFailed), msg.Err, nil)
		}
		s.editing = false
		return s, nav.Alert("Updated", fmt.Sprintf("Earthquake #%d updated.", msg.Earthquake.ID), nil, nil)

	case deleteConfirmedMsg:
		s.loading = true
		return s, s.deleteCmd(msg.id)

	case DeletedMsg:
		s.loading = false
		if msg.Err != nil {
			return s, nav.Alert("Error", quake.UserMessage(msg.Err, quake.MsgDeleteFailed), msg.Err, nil)
		}
		s = s.clampCursor()
		return s, nav.Alert("Deleted", fmt.Sprintf("Earthquake #%d deleted.", msg.ID), nil, nil)

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		if s.editing {
			return s.updateEdit(msg)
		}
		return s.updateList(msg)
	}
	return s, nil
}

func (s State) updateList(msg tea.KeyPressMsg) (State, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, nav.Go(nav.PageDashboard)
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.ctrl.Len()-1 {
			s.cursor++
		}
	case "r":
		return s.Enter()
	case "e", "enter":
		if e, ok := s.selected(); ok {
			s.editing = true
			s.editID = e.ID
			s.edit = form.New(form.Field{
				Label: "Magnitude",
				Value: strconv.FormatFloat(e.Magnitude, 'f', -1, 64),
			})
		}
	case "d", "delete":
		if e, ok := s.selected(); ok {
			text := fmt.Sprintf("Delete earthquake #%d (magnitude %.1f)?", e.ID, e.Magnitude)
			return s, nav.Confirm("Delete earthquake", text, confirmDeleteCmd(e.ID))
		}
	}
	return s, nil
}

func (s State) updateEdit(msg tea.KeyPressMsg) (State, tea.Cmd) {
	if msg.String() == "esc" {
		s.editing = false
		return s, nil
	}
	if !s.edit.HandleKey(msg) {
		return s, nil
	}

	e, ok := s.ctrl.Get(s.editID)
	if !ok {
		s.editing = false
		return s, nil
	}
	upd, err := forms.Magnitude{Value: s.edit.Value(0)}.Parse(e)
	if err != nil {
		return s, nav.Alert("Check the form", err.Error(), nil, nil)
	}

	e.Magnitude = upd.Magnitude
	s.loading = true
	return s, s.updateCmd(e)
}

func (s State) View(t theme.Theme, width, height int) string {
	title := t.Title().Render("Classified earthquakes")

	var body string
	switch {
	case s.loading && !s.loaded:
		body = t.Muted().Render("Loading earthquakes...")
	case s.ctrl.Len() == 0:
		body = t.Muted().Render("No earthquakes found.")
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Center, s.tableView(t), "    ", s.sideView(t))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s State) tableView(t theme.Theme) string {
	header := t.Muted().Bold(true).Render(fmt.Sprintf("  %-5s %-22s %5s %9s %9s  %-9s", "ID", "TIMESTAMP", "MAG", "LAT", "LON", "NIVEL"))
	rows := []string{header}

	for i, e := range s.ctrl.Items() {
		line := fmt.Sprintf("%-5d %-22s %5.1f %9.3f %9.3f  %-9s", e.ID, truncate(e.Timestamp, 22), e.Magnitude, e.Latitude, e.Longitude, e.Nivel)
		if i == s.cursor {
			rows = append(rows, t.Accent().Bold(true).Render("> "+line))
			continue
		}
		rows = append(rows, t.Base().Render("  "+line))
	}
	return t.Card().Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (s State) sideView(t theme.Theme) string {
	if s.editing {
		return t.Card().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorAccent).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				t.Title().Render(fmt.Sprintf("Edit earthquake #%d", s.editID)),
				"",
				s.edit.View(t),
			))
	}

	e, ok := s.selected()
	if !ok {
		return ""
	}
	return gauge.Magnitude(e.Magnitude, e.Nivel).Render()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
