// Package nav holds the messages pages use to ask the root model to
// navigate or to open its blocking dialog.
package nav

import tea "charm.land/bubbletea/v2"

type Page uint

const (
	PageSplash Page = iota
	PageLogin
	PageRegister
	PageDashboard
	PageQuakes
	PageCreate
)

// Public reports whether p is reachable without a session.
func (p Page) Public() bool {
	switch p {
	case PageSplash, PageLogin, PageRegister:
		return true
	default:
		return false
	}
}

func (p Page) String() string {
	switch p {
	case PageSplash:
		return "splash"
	case PageLogin:
		return "login"
	case PageRegister:
		return "register"
	case PageDashboard:
		return "dashboard"
	case PageQuakes:
		return "quakes"
	case PageCreate:
		return "create"
	default:
		return "unknown"
	}
}

// GoMsg asks the root model to show Page. The auth gate may redirect it.
type GoMsg struct {
	Page Page
}

// HomeMsg asks for the first page of whichever stack the session allows.
type HomeMsg struct{}

// AlertMsg opens a dialog that must be dismissed. Err, when set, is
// logged and may end the session if it demands a new login.
type AlertMsg struct {
	Title string
	Text  string
	Err   error
	// Then is emitted once the dialog is dismissed.
	Then tea.Msg
}

// ConfirmMsg opens a yes/no dialog; OnYes runs only on confirmation.
type ConfirmMsg struct {
	Title string
	Text  string
	OnYes tea.Cmd
}

// LogoutMsg reports the outcome of clearing the session.
type LogoutMsg struct {
	Err error
}

func Go(p Page) tea.Cmd {
	return func() tea.Msg { return GoMsg{Page: p} }
}

func Alert(title, text string, err error, then tea.Msg) tea.Cmd {
	return func() tea.Msg { return AlertMsg{Title: title, Text: text, Err: err, Then: then} }
}

func Confirm(title, text string, onYes tea.Cmd) tea.Cmd {
	return func() tea.Msg { return ConfirmMsg{Title: title, Text: text, OnYes: onYes} }
}
