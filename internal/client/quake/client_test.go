package quake_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/fakeapi"
	"github.com/garrettladley/safequake/internal/remotelist"
	"github.com/garrettladley/safequake/internal/session"
)

const (
	testEmail    = "ana@example.com"
	testPassword = "secret"
)

var seed = []quake.Earthquake{
	{ID: 5, Timestamp: "2024-01-01T00:00:00Z", Magnitude: 3.1, Latitude: -23.5, Longitude: -46.6, Nivel: fakeapi.NivelLeve},
	{ID: 6, Timestamp: "2024-01-02T00:00:00Z", Magnitude: 6.4, Latitude: 35.6, Longitude: 139.7, Nivel: fakeapi.NivelForte},
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newClient starts a fake API and returns a client authenticated against it
// when authed is true.
func newClient(t *testing.T, authed bool) (*quake.Client, *fakeapi.Server) {
	t.Helper()

	api := fakeapi.New(discardLogger())
	if err := api.Store.Register(quake.Registration{Name: "Ana", Email: testEmail, Password: testPassword}); err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	api.Store.Seed(seed...)

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	token := ""
	if authed {
		token = api.Store.IssueToken(testEmail)
	}
	state, err := session.Restore(t.Context(), session.NewMemoryStore(token))
	if err != nil {
		t.Fatalf("failed to restore session: %v", err)
	}

	return quake.New(state, quake.WithBaseURL(srv.URL), quake.WithLogger(discardLogger())), api
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		creds     quake.Credentials
		wantErr   bool
		wantMsg   string
		wantToken bool
	}{
		{name: "valid credentials", creds: quake.Credentials{Email: testEmail, Password: testPassword}, wantToken: true},
		{
			name:    "wrong password surfaces server message",
			creds:   quake.Credentials{Email: testEmail, Password: "wrong"},
			wantErr: true,
			wantMsg: "Invalid email or password.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newClient(t, false)
			token, err := client.Auth.Login(t.Context(), tt.creds)
			if tt.wantErr {
				var apiErr *quake.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %v", err)
				}
				if apiErr.Message != tt.wantMsg {
					t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantToken && token == "" {
				t.Error("expected a token")
			}
		})
	}
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, false)
	reg := quake.Registration{Name: "Bia", Email: "bia@example.com", Password: "pw", Latitude: -22.9, Longitude: -43.2}
	if err := client.Auth.Register(t.Context(), reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := client.Auth.Login(t.Context(), quake.Credentials{Email: reg.Email, Password: reg.Password}); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestListClassified(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, true)
	got, err := client.Earthquakes.ListClassified(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(seed, got); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestListClassifiedWithoutToken(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, false)
	_, err := client.Earthquakes.ListClassified(t.Context())
	if !errors.Is(err, session.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if !quake.IsReauthRequired(err) {
		t.Error("expected reauth to be required")
	}
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	client, _ := newClient(t, true)
	got, err := client.Earthquakes.Update(t.Context(), 5, quake.UpdateFrom(seed[0], 4.2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := seed[0]
	want.Magnitude = 4.2
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("updated mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateWithoutRecordLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "ok with empty body", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodGet {
					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(`{"content":[{"id":5,"timestamp":"2024-01-01T00:00:00Z","magnitude":3.1,"latitude":-23.5,"longitude":-46.6,"nivel":"Leve"}]}`))
					return
				}
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			state, err := session.Restore(t.Context(), session.NewMemoryStore("token"))
			if err != nil {
				t.Fatalf("failed to restore session: %v", err)
			}
			client := quake.New(state, quake.WithBaseURL(srv.URL), quake.WithLogger(discardLogger()))

			ctrl := remotelist.NewController(
				quake.Earthquake.Key,
				client.Earthquakes.ListClassified,
				func(ctx context.Context, id int64, e quake.Earthquake) (quake.Earthquake, error) {
					return client.Earthquakes.Update(ctx, id, quake.UpdateFrom(e, e.Magnitude))
				},
				client.Earthquakes.Delete,
			)
			before, err := ctrl.Refresh(t.Context())
			if err != nil {
				t.Fatalf("refresh: %v", err)
			}

			edited := before[0]
			edited.Magnitude = 4.2
			_, err = ctrl.Update(t.Context(), 5, edited)
			if !errors.Is(err, quake.ErrMissingRecord) {
				t.Fatalf("Update() error = %v, want ErrMissingRecord", err)
			}
			if got := quake.UserMessage(err, quake.MsgUpdateFailed); got != quake.MsgUpdateFailed {
				t.Errorf("message = %q, want %q", got, quake.MsgUpdateFailed)
			}
			if diff := cmp.Diff(before, ctrl.Items()); diff != "" {
				t.Errorf("list changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	client, api := newClient(t, true)
	if err := client.Earthquakes.Delete(t.Context(), 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(seed[:1], api.Store.List()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}

	err := client.Earthquakes.Delete(t.Context(), 6)
	var apiErr *quake.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 APIError, got %v", err)
	}
}

func TestDeleteRequiresNoContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	state, err := session.Restore(t.Context(), session.NewMemoryStore("token"))
	if err != nil {
		t.Fatalf("failed to restore session: %v", err)
	}
	client := quake.New(state, quake.WithBaseURL(srv.URL), quake.WithLogger(discardLogger()))

	err = client.Earthquakes.Delete(t.Context(), 1)
	if got := quake.UserMessage(err, "fallback"); got != quake.MsgDeleteFailed {
		t.Errorf("message = %q, want %q", got, quake.MsgDeleteFailed)
	}
}

func TestCreateManual(t *testing.T) {
	t.Parallel()

	client, api := newClient(t, true)
	created, err := client.Earthquakes.CreateManual(t.Context(), quake.ManualEarthquake{
		Timestamp: "2024-03-01T10:00:00Z",
		Magnitude: 5.5,
		Latitude:  1,
		Longitude: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ID != 7 {
		t.Fatalf("created = %+v, want id 7", created)
	}
	if n := len(api.Store.List()); n != 3 {
		t.Errorf("store has %d records, want 3", n)
	}
}
