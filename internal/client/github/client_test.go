package github

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLatestRelease(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    *Release
		wantErr bool
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `{"tag_name":"v1.2.0","html_url":"https://github.com/garrettladley/safequake/releases/tag/v1.2.0"}`,
			want: &Release{
				TagName: "v1.2.0",
				HTMLURL: "https://github.com/garrettladley/safequake/releases/tag/v1.2.0",
			},
		},
		{name: "not found", status: http.StatusNotFound, body: `{}`, wantErr: true},
		{name: "missing tag", status: http.StatusOK, body: `{"html_url":"x"}`, wantErr: true},
		{name: "bad json", status: http.StatusOK, body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/repos/garrettladley/safequake/releases/latest" {
					http.NotFound(w, r)
					return
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			got, err := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client())).LatestRelease(t.Context())
			if (err != nil) != tt.wantErr {
				t.Fatalf("LatestRelease() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LatestRelease() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
