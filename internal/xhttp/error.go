package xhttp

import "net/http"

func Error(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
