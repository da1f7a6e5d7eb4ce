package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/tui/components/auth"
	"github.com/garrettladley/safequake/internal/tui/components/dialog"
	"github.com/garrettladley/safequake/internal/tui/components/footer"
	"github.com/garrettladley/safequake/internal/tui/nav"
	"github.com/garrettladley/safequake/internal/tui/page/create"
	"github.com/garrettladley/safequake/internal/tui/page/dashboard"
	"github.com/garrettladley/safequake/internal/tui/page/login"
	"github.com/garrettladley/safequake/internal/tui/page/quakes"
	"github.com/garrettladley/safequake/internal/tui/page/register"
	"github.com/garrettladley/safequake/internal/tui/page/splash"
	"github.com/garrettladley/safequake/internal/tui/theme"
	"github.com/garrettladley/safequake/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type state struct {
	login     login.State
	register  register.State
	dashboard dashboard.State
	quakes    quakes.State
	create    create.State
}

type Model struct {
	ready          bool
	page           nav.Page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	dialog         *dialog.Dialog
	deps           Deps
}

func New(deps Deps) *Model {
	pd := deps.page()
	deps.Logger = pd.Logger
	return &Model{
		page:  nav.PageSplash,
		theme: theme.New(),
		deps:  deps,
		state: state{
			login:     login.New(pd),
			register:  register.New(pd),
			dashboard: dashboard.New(pd),
			quakes:    quakes.New(pd),
			create:    create.New(pd),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Tick(splash.Duration, func(time.Time) tea.Msg {
		return splash.TickMsg{}
	})
}

// home is the first page of the stack the session allows.
func (m *Model) home() nav.Page {
	if m.deps.Session.IsAuthenticated() {
		return nav.PageDashboard
	}
	return nav.PageLogin
}

// navigate applies the auth gate: signed-out users only reach the public
// pages and signed-in users never see login or register.
func (m *Model) navigate(p nav.Page) tea.Cmd {
	authed := m.deps.Session.IsAuthenticated()
	switch {
	case p == nav.PageSplash:
	case !p.Public() && !authed:
		p = nav.PageLogin
	case p.Public() && authed:
		p = nav.PageDashboard
	}

	m.deps.Logger.DebugContext(m.deps.Ctx, "navigate", xslog.Page(p.String()))
	m.page = p

	var cmd tea.Cmd
	switch p {
	case nav.PageQuakes:
		m.state.quakes, cmd = m.state.quakes.Enter()
	case nav.PageCreate:
		m.state.create = m.state.create.Enter()
	}
	return cmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case splash.TickMsg:
		if m.page != nav.PageSplash {
			return m, nil
		}
		return m, m.navigate(m.home())

	case nav.GoMsg:
		return m, m.navigate(msg.Page)

	case nav.HomeMsg:
		return m, m.navigate(m.home())

	case nav.AlertMsg:
		m.openAlert(msg)
		return m, nil

	case nav.ConfirmMsg:
		m.dialog = &dialog.Dialog{Kind: dialog.KindConfirm, Title: msg.Title, Text: msg.Text, OnYes: msg.OnYes}
		return m, nil

	case nav.LogoutMsg:
		if msg.Err != nil {
			m.openAlert(nav.AlertMsg{Title: "Error", Text: "Could not log out.", Err: msg.Err})
			return m, nil
		}
		return m, m.navigate(nav.PageLogin)

	case reauthMsg:
		return m, dashboard.LogoutCmd(m.deps.page())

	case create.CreatedMsg:
		if msg.Err == nil && msg.Earthquake != nil {
			m.state.quakes = m.state.quakes.Append(*msg.Earthquake)
		}
	}

	return m, m.forward(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.dialog != nil {
		closed, cmd := m.dialog.HandleKey(msg)
		if closed {
			m.dialog = nil
		}
		return cmd
	}

	if m.page == nav.PageSplash {
		return m.navigate(m.home())
	}

	var cmd tea.Cmd
	switch m.page {
	case nav.PageLogin:
		m.state.login, cmd = m.state.login.Update(msg)
	case nav.PageRegister:
		m.state.register, cmd = m.state.register.Update(msg)
	case nav.PageDashboard:
		m.state.dashboard, cmd = m.state.dashboard.Update(msg)
	case nav.PageQuakes:
		m.state.quakes, cmd = m.state.quakes.Update(msg)
	case nav.PageCreate:
		m.state.create, cmd = m.state.create.Update(msg)
	}
	return cmd
}

// forward hands a result message to every page; each ignores what it did not ask for.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.state.login, cmd = m.state.login.Update(msg)
	cmds = append(cmds, cmd)
	m.state.register, cmd = m.state.register.Update(msg)
	cmds = append(cmds, cmd)
	m.state.quakes, cmd = m.state.quakes.Update(msg)
	cmds = append(cmds, cmd)
	m.state.create, cmd = m.state.create.Update(msg)
	cmds = append(cmds, cmd)

	return firstCmd(cmds)
}

// firstCmd avoids wrapping a lone command in a batch.
func firstCmd(cmds []tea.Cmd) tea.Cmd {
	var out []tea.Cmd
	for _, c := range cmds {
		if c != nil {
			out = append(out, c)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return tea.Batch(out...)
	}
}

func (m *Model) openAlert(msg nav.AlertMsg) {
	kind := dialog.KindInfo
	then := msg.Then

	if msg.Err != nil {
		kind = dialog.KindError
		m.deps.Logger.WarnContext(m.deps.Ctx, "action failed",
			xslog.Page(m.page.String()),
			xslog.Error(msg.Err),
		)
		if quake.IsReauthRequired(msg.Err) && m.deps.Session.IsAuthenticated() {
			then = reauthMsg{}
		}
	}

	m.dialog = &dialog.Dialog{Kind: kind, Title: msg.Title, Text: msg.Text, Then: then}
}

func (m *Model) loading() bool {
	switch m.page {
	case nav.PageLogin:
		return m.state.login.Loading()
	case nav.PageRegister:
		return m.state.register.Loading()
	case nav.PageQuakes:
		return m.state.quakes.Loading()
	case nav.PageCreate:
		return m.state.create.Loading()
	}
	return false
}

func (m *Model) hints() string {
	if m.dialog != nil {
		return ""
	}
	switch m.page {
	case nav.PageLogin:
		return login.Hints
	case nav.PageRegister:
		return register.Hints
	case nav.PageDashboard:
		return dashboard.Hints
	case nav.PageQuakes:
		if m.state.quakes.Editing() {
			return quakes.EditHints
		}
		return quakes.Hints
	case nav.PageCreate:
		return create.Hints
	}
	return ""
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == nav.PageSplash {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	if m.page == nav.PageSplash {
		view.SetContent(splash.View(m.theme, m.viewportWidth, m.viewportHeight))
		return view
	}

	bodyHeight := max(m.viewportHeight-1, 0)

	var body string
	switch {
	case m.dialog != nil:
		body = lipgloss.Place(m.viewportWidth, bodyHeight, lipgloss.Center, lipgloss.Center, m.dialog.View(m.theme))
	case m.page == nav.PageLogin:
		body = m.state.login.View(m.theme, m.viewportWidth, bodyHeight)
	case m.page == nav.PageRegister:
		body = m.state.register.View(m.theme, m.viewportWidth, bodyHeight)
	case m.page == nav.PageDashboard:
		body = m.state.dashboard.View(m.theme, m.viewportWidth, bodyHeight)
	case m.page == nav.PageQuakes:
		body = m.state.quakes.View(m.theme, m.viewportWidth, bodyHeight)
	case m.page == nav.PageCreate:
		body = m.state.create.View(m.theme, m.viewportWidth, bodyHeight)
	}

	status := auth.Indicator{Session: m.deps.Session}.Render()
	if m.loading() {
		status = m.theme.Accent().Render("◌ working...") + "  " + status
	}

	view.SetContent(lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		footer.New(m.hints(), status, m.viewportWidth).Render(),
	))
	return view
}
