package create

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/forms"
	"github.com/garrettladley/safequake/internal/tui/components/form"
	"github.com/garrettladley/safequake/internal/tui/nav"
	"github.com/garrettladley/safequake/internal/tui/page"
	"github.com/garrettladley/safequake/internal/tui/theme"
	"github.com/garrettladley/safequake/internal/xslog"
)

const (
	fieldTimestamp = iota
	fieldMagnitude
	fieldLatitude
	fieldLongitude
)

const Hints = "tab next · enter save · esc back"

// CreatedMsg carries the record the server created, when it returned one.
type CreatedMsg struct {
	Earthquake *quake.Earthquake
	Err        error
}

type State struct {
	deps    page.Deps
	form    form.Form
	loading bool
	now     func() time.Time
}

func New(deps page.Deps) State {
	return State{deps: deps, now: time.Now}
}

// Enter prepares an empty form with the timestamp set to now.
func (s State) Enter() State {
	s.form = form.New(
		form.Field{Label: "Timestamp", Value: s.now().UTC().Format(time.RFC3339)},
		form.Field{Label: "Magnitude", Placeholder: "4.5"},
		form.Field{Label: "Latitude", Placeholder: "-23.55"},
		form.Field{Label: "Longitude", Placeholder: "-46.63"},
	)
	return s
}

func (s State) Loading() bool { return s.loading }

func (s State) Update(msg tea.Msg) (State, tea.Cmd) {
	switch msg := msg.(type) {
	case CreatedMsg:
		s.loading = false
		if msg.Err != nil {
			return s, nav.Alert("Error", quake.UserMessage(msg.Err, quake.MsgCreateFailed), msg.Err, nil)
		}
		s = s.Enter()
		return s, nav.Alert("Saved", "Earthquake registered.", nil, nav.GoMsg{Page: nav.PageDashboard})

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		if msg.String() == "esc" {
			return s, nav.Go(nav.PageDashboard)
		}
		if s.form.HandleKey(msg) {
			return s.submit()
		}
	}
	return s, nil
}

func (s State) submit() (State, tea.Cmd) {
	in, err := forms.Manual{
		Timestamp: s.form.Value(fieldTimestamp),
		Magnitude: s.form.Value(fieldMagnitude),
		Latitude:  s.form.Value(fieldLatitude),
		Longitude: s.form.Value(fieldLongitude),
	}.Parse()
	if err != nil {
		return s, nav.Alert("Check the form", err.Error(), nil, nil)
	}

	s.loading = true
	deps := s.deps
	return s, func() tea.Msg {
		created, err := deps.Client.Earthquakes.CreateManual(deps.Ctx, in)
		if err != nil {
			return CreatedMsg{Err: err}
		}
		if created != nil {
			deps.Logger.InfoContext(deps.Ctx, "earthquake created", xslog.EarthquakeID(created.ID))
		}
		return CreatedMsg{Earthquake: created}
	}
}

func (s State) View(t theme.Theme, width, height int) string {
	button := t.Button().Render("Save")
	if s.loading {
		button = t.Muted().Render("Saving...")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title().Render("Register an earthquake"),
		"",
		t.Card().Render(s.form.View(t)),
		"",
		button,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
