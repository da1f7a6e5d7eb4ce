package login

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/forms"
	"github.com/garrettladley/safequake/internal/tui/components/form"
	"github.com/garrettladley/safequake/internal/tui/nav"
	"github.com/garrettladley/safequake/internal/tui/page"
	"github.com/garrettladley/safequake/internal/tui/page/splash"
	"github.com/garrettladley/safequake/internal/tui/theme"
	"github.com/garrettladley/safequake/internal/xslog"
)

const (
	fieldEmail = iota
	fieldPassword
)

const Hints = "tab next · enter sign in · ctrl+n create account · esc quit"

// ResultMsg reports a login attempt; on success the token is already persisted.
type ResultMsg struct {
	Err error
}

type State struct {
	deps    page.Deps
	form    form.Form
	loading bool
}

func New(deps page.Deps) State {
	return State{
		deps: deps,
		form: newForm(),
	}
}

func newForm() form.Form {
	return form.New(
		form.Field{Label: "Email", Placeholder: "you@example.com"},
		form.Field{Label: "Password", Secret: true},
	)
}

func (s State) Loading() bool { return s.loading }

func (s State) Update(msg tea.Msg) (State, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		s.loading = false
		if msg.Err != nil {
			return s, nav.Alert("Login failed", quake.UserMessage(msg.Err, quake.MsgLoginFailed), msg.Err, nil)
		}
		s.form = newForm()
		return s, nav.Alert("Signed in", "Welcome to SafeQuake.", nil, nav.HomeMsg{})

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, tea.Quit
		case "ctrl+n":
			return s, nav.Go(nav.PageRegister)
		}
		if s.form.HandleKey(msg) {
			return s.submit()
		}
	}
	return s, nil
}

func (s State) submit() (State, tea.Cmd) {
	creds, err := forms.Login{
		Email:    s.form.Value(fieldEmail),
		Password: s.form.Value(fieldPassword),
	}.Parse()
	if err != nil {
		return s, nav.Alert("Missing fields", "Fill in email and password.", nil, nil)
	}

	s.loading = true
	return s, loginCmd(s.deps, creds)
}

func loginCmd(deps page.Deps, creds quake.Credentials) tea.Cmd {
	return func() tea.Msg {
		token, err := deps.Client.Auth.Login(deps.Ctx, creds)
		if err != nil {
			return ResultMsg{Err: err}
		}
		if err := deps.Session.Login(deps.Ctx, token); err != nil {
			return ResultMsg{Err: err}
		}
		deps.Logger.InfoContext(deps.Ctx, "signed in", xslog.Email(creds.Email))
		return ResultMsg{}
	}
}

func (s State) View(t theme.Theme, width, height int) string {
	button := t.Button().Render("Sign in")
	if s.loading {
		button = t.Muted().Render("Signing in...")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		t.Title().Render("Sign in"),
		"",
		t.Card().Render(s.form.View(t)),
		"",
		button,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
