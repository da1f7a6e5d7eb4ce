package tui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/fakeapi"
	"github.com/garrettladley/safequake/internal/session"
	"github.com/garrettladley/safequake/internal/tui/components/dialog"
	"github.com/garrettladley/safequake/internal/tui/nav"
	"github.com/garrettladley/safequake/internal/tui/page/splash"
)

const (
	testEmail    = "ana@example.com"
	testPassword = "secret"
)

var seed = []quake.Earthquake{
	{ID: 4, Timestamp: "2024-01-01T00:00:00Z", Magnitude: 2.5, Latitude: 1, Longitude: 1, Nivel: fakeapi.NivelLeve},
	{ID: 5, Timestamp: "2024-01-02T00:00:00Z", Magnitude: 3.1, Latitude: 2, Longitude: 2, Nivel: fakeapi.NivelLeve},
	{ID: 6, Timestamp: "2024-01-03T00:00:00Z", Magnitude: 6.4, Latitude: 3, Longitude: 3, Nivel: fakeapi.NivelForte},
}

type harness struct {
	model *Model
	store *session.MemoryStore
	state *session.State
	api   *fakeapi.Server
}

func newHarness(t *testing.T, handler http.Handler, authed bool) *harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := fakeapi.New(logger)
	if err := api.Store.Register(quake.Registration{Name: "Ana", Email: testEmail, Password: testPassword}); err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	api.Store.Seed(seed...)
	if handler == nil {
		handler = api
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	token := ""
	if authed {
		token = api.Store.IssueToken(testEmail)
	}
	store := session.NewMemoryStore(token)
	state, err := session.Restore(t.Context(), store)
	if err != nil {
		t.Fatalf("failed to restore session: %v", err)
	}

	m := New(Deps{
		Ctx:     t.Context(),
		Logger:  logger,
		Session: state,
		Client:  quake.New(state, quake.WithBaseURL(srv.URL), quake.WithLogger(logger)),
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return &harness{model: m, store: store, state: state, api: api}
}

// send feeds msg to the model and keeps running the returned commands
// until none are left.
func (h *harness) send(t *testing.T, msg tea.Msg) {
	t.Helper()

	for range 20 {
		_, cmd := h.model.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		if msg == nil {
			return
		}
	}
	t.Fatal("command chain did not settle")
}

func (h *harness) press(t *testing.T, keys ...string) {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "esc":
			msg = tea.KeyPressMsg{Code: tea.KeyEscape}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		case "backspace":
			msg = tea.KeyPressMsg{Code: tea.KeyBackspace}
		default:
			r := []rune(k)[0]
			msg = tea.KeyPressMsg{Code: r, Text: k}
		}
		h.send(t, msg)
	}
}

func (h *harness) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		h.press(t, string(r))
	}
}

func TestAuthGateChoosesStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		authed bool
		want   nav.Page
	}{
		{name: "no stored token shows login", authed: false, want: nav.PageLogin},
		{name: "stored token shows dashboard", authed: true, want: nav.PageDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, nil, tt.authed)
			h.send(t, splash.TickMsg{})

			if h.model.page != tt.want {
				t.Errorf("page = %v, want %v", h.model.page, tt.want)
			}
		})
	}
}

func TestGateRedirectsProtectedPages(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, false)
	h.send(t, nav.GoMsg{Page: nav.PageQuakes})

	if h.model.page != nav.PageLogin {
		t.Errorf("page = %v, want login", h.model.page)
	}
}

func TestLoginPersistsTokenAndFlipsGate(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, false)
	h.send(t, splash.TickMsg{})

	h.typeText(t, testEmail)
	h.press(t, "enter")
	h.typeText(t, testPassword)
	h.press(t, "enter")

	if !h.state.IsAuthenticated() {
		t.Fatal("expected the session to be authenticated")
	}
	stored, err := h.store.Load(t.Context())
	if err != nil || stored == "" {
		t.Fatalf("stored token = %q, err = %v", stored, err)
	}
	if h.model.dialog == nil || h.model.dialog.Kind != dialog.KindInfo {
		t.Fatalf("expected a sign-in confirmation, got %+v", h.model.dialog)
	}

	h.press(t, "enter")
	if h.model.dialog != nil {
		t.Error("confirmation should close on enter")
	}
	if h.model.page != nav.PageDashboard {
		t.Errorf("page = %v, want dashboard", h.model.page)
	}
}

func TestLoginFailureShowsDialog(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, false)
	h.send(t, splash.TickMsg{})

	h.typeText(t, testEmail)
	h.press(t, "enter")
	h.typeText(t, "wrong")
	h.press(t, "enter")

	if h.state.IsAuthenticated() {
		t.Error("failed login must not authenticate")
	}
	if h.model.dialog == nil || h.model.dialog.Kind != dialog.KindError {
		t.Fatalf("expected an error dialog, got %+v", h.model.dialog)
	}
	if h.model.dialog.Text != "Invalid email or password." {
		t.Errorf("dialog text = %q", h.model.dialog.Text)
	}
}

func TestLogoutClearsTokenAndFlipsGate(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, true)
	h.send(t, splash.TickMsg{})

	h.press(t, "o")
	if h.model.dialog == nil || h.model.dialog.Kind != dialog.KindConfirm {
		t.Fatal("expected logout confirmation")
	}
	h.press(t, "y")

	if h.state.IsAuthenticated() {
		t.Error("expected the session to be signed out")
	}
	if stored, _ := h.store.Load(t.Context()); stored != "" {
		t.Errorf("stored token = %q, want empty", stored)
	}
	if h.model.page != nav.PageLogin {
		t.Errorf("page = %v, want login", h.model.page)
	}
}

func openList(t *testing.T, h *harness) {
	t.Helper()

	h.send(t, splash.TickMsg{})
	h.press(t, "l")
	if diff := cmp.Diff(seed, h.model.state.quakes.Items()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteRemovesExactlyThatID(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, true)
	openList(t, h)

	h.press(t, "down", "d", "y")

	want := []quake.Earthquake{seed[0], seed[2]}
	if diff := cmp.Diff(want, h.model.state.quakes.Items()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if h.model.dialog == nil || h.model.dialog.Kind != dialog.KindInfo {
		t.Error("expected a confirmation dialog")
	}
}

func TestEditReplacesOnlyThatID(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, true)
	openList(t, h)

	h.press(t, "down", "e", "backspace", "backspace", "backspace")
	h.typeText(t, "4.2")
	h.press(t, "enter")

	want := []quake.Earthquake{seed[0], seed[1], seed[2]}
	want[1].Magnitude = 4.2
	if diff := cmp.Diff(want, h.model.state.quakes.Items()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if h.model.state.quakes.Editing() {
		t.Error("edit modal should close after a successful update")
	}
}

func TestFailedDeleteLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	var api http.Handler
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusOK)
			return
		}
		api.ServeHTTP(w, r)
	}), true)
	api = h.api
	openList(t, h)

	h.press(t, "d", "y")

	if diff := cmp.Diff(seed, h.model.state.quakes.Items()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if h.model.dialog == nil || h.model.dialog.Kind != dialog.KindError {
		t.Fatal("expected an error dialog")
	}
	if h.model.dialog.Text != quake.MsgDeleteFailed {
		t.Errorf("dialog text = %q, want %q", h.model.dialog.Text, quake.MsgDeleteFailed)
	}
}

func TestRevokedTokenEndsSession(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, true)
	h.send(t, splash.TickMsg{})
	if err := h.state.Login(t.Context(), "revoked"); err != nil {
		t.Fatalf("failed to swap token: %v", err)
	}

	h.press(t, "l")
	if h.model.dialog == nil || h.model.dialog.Kind != dialog.KindError {
		t.Fatal("expected an error dialog")
	}
	h.press(t, "enter")

	if h.state.IsAuthenticated() {
		t.Error("a rejected token should end the session")
	}
	if h.model.page != nav.PageLogin {
		t.Errorf("page = %v, want login", h.model.page)
	}
}

func TestViewRendersProtectedPages(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil, true)
	h.send(t, splash.TickMsg{})
	for _, p := range []nav.Page{nav.PageDashboard, nav.PageQuakes, nav.PageCreate} {
		h.send(t, nav.GoMsg{Page: p})
		if h.model.page != p {
			t.Fatalf("page = %v, want %v", h.model.page, p)
		}
		_ = h.model.View()
	}
}
