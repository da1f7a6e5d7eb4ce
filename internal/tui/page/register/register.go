package register

import (
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
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldLatitude
	fieldLongitude
)

const Hints = "tab next · enter create · esc back"

type ResultMsg struct {
	Email string
	Err   error
}

type State struct {
	deps    page.Deps
	form    form.Form
	loading bool
}

func New(deps page.Deps) State {
	return State{deps: deps, form: newForm()}
}

func newForm() form.Form {
	return form.New(
		form.Field{Label: "Name"},
		form.Field{Label: "Email", Placeholder: "you@example.com"},
		form.Field{Label: "Password", Secret: true},
		form.Field{Label: "Latitude", Placeholder: "-23.55"},
		form.Field{Label: "Longitude", Placeholder: "-46.63"},
	)
}

func (s State) Loading() bool { return s.loading }

func (s State) Update(msg tea.Msg) (State, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		s.loading = false
		if msg.Err != nil {
			return s, nav.Alert("Registration failed", quake.UserMessage(msg.Err, quake.MsgRegisterFailed), msg.Err, nil)
		}
		s.form = newForm()
		return s, nav.Alert("Account created", "You can sign in now.", nil, nav.GoMsg{Page: nav.PageLogin})

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		if msg.String() == "esc" {
			return s, nav.Go(nav.PageLogin)
		}
		if s.form.HandleKey(msg) {
			return s.submit()
		}
	}
	return s, nil
}

func (s State) submit() (State, tea.Cmd) {
	reg, err := forms.Register{
		Name:      s.form.Value(fieldName),
		Email:     s.form.Value(fieldEmail),
		Password:  s.form.Value(fieldPassword),
		Latitude:  s.form.Value(fieldLatitude),
		Longitude: s.form.Value(fieldLongitude),
	}.Parse()
	if err != nil {
		return s, nav.Alert("Check the form", err.Error(), nil, nil)
	}

	s.loading = true
	deps := s.deps
	return s, func() tea.Msg {
		if err := deps.Client.Auth.Register(deps.Ctx, reg); err != nil {
			return ResultMsg{Email: reg.Email, Err: err}
		}
		deps.Logger.InfoContext(deps.Ctx, "account created", xslog.Email(reg.Email))
		return ResultMsg{Email: reg.Email}
	}
}

func (s State) View(t theme.Theme, width, height int) string {
	button := t.Button().Render("Create account")
	if s.loading {
		button = t.Muted().Render("Creating account...")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title().Render("Create account"),
		"",
		t.Card().Render(s.form.View(t)),
		"",
		button,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
