package quake

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/safequake/internal/session"
)

var errNoTokenSource = errors.New("no token source configured")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("safequake api: %d %s", e.StatusCode, e.Message)
}

// parseAPIError prefers the JSON message or error field, then the raw body, then fallback.
func parseAPIError(resp *http.Response, fallback string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return apiErr
	}

	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := go_json.Unmarshal(body, &errResp); err != nil {
		apiErr.Message = text
		return apiErr
	}

	switch {
	case errResp.Message != "":
		apiErr.Message = errResp.Message
	case errResp.Error != "":
		apiErr.Message = errResp.Error
	}
	return apiErr
}

// IsReauthRequired reports whether err means the user has to log in again.
func IsReauthRequired(err error) bool {
	if errors.Is(err, session.ErrNoToken) || errors.Is(err, errNoTokenSource) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// UserMessage renders err for a dialog.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, session.ErrNoToken) || errors.Is(err, errNoTokenSource) {
		return "Your session has expired. Please log in again."
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
