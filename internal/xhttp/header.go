package xhttp

import "net/http"

const (
	XForwardedFor = "X-Forwarded-For"
	XRequestID    = "X-Request-ID"
	UserAgent     = "User-Agent"
	Authorization = "Authorization"
	Accept        = "Accept"
)

const (
	ContentType     = "Content-Type"
	ApplicationJSON = "application/json"
)

const BearerPrefix = "Bearer "

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, ApplicationJSON)
}

func SetRequestHeaderJSON(r *http.Request) {
	r.Header.Set(ContentType, ApplicationJSON)
	r.Header.Set(Accept, ApplicationJSON)
}

func SetRequestHeaderBearer(r *http.Request, token string) {
	r.Header.Set(Authorization, BearerPrefix+token)
}
