package xhttp

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/safequake/internal/version"
)

type safequakeTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*safequakeTransport)(nil)

func (t *safequakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, "safequake/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	if req.Header.Get(XRequestID) == "" {
		req.Header.Set(XRequestID, uuid.NewString())
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard safequake headers.
func NewTransport() http.RoundTripper {
	return &safequakeTransport{base: http.DefaultTransport}
}
