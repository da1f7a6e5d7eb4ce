package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/garrettladley/safequake/internal/version"
	"github.com/garrettladley/safequake/internal/xhttp"
)

const keyError = "error"

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Method(method string) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, method)
}

func RequestMethod(r *http.Request) slog.Attr {
	return Method(r.Method)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func RequestPath(r *http.Request) slog.Attr {
	return Path(r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func EarthquakeID(id int64) slog.Attr {
	const earthquakeIDKey = "earthquake_id"
	return slog.Int64(earthquakeIDKey, id)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Page(page string) slog.Attr {
	const pageKey = "page"
	return slog.String(pageKey, page)
}

func Email(email string) slog.Attr {
	const emailKey = "email"
	return slog.String(emailKey, email)
}

func Addr(addr string) slog.Attr {
	const addrKey = "addr"
	return slog.String(addrKey, addr)
}

func ClientVersion(v string) slog.Attr {
	const clientVersionKey = "client_version"
	return slog.String(clientVersionKey, v)
}

func URL(url string) slog.Attr {
	const urlKey = "url"
	return slog.String(urlKey, url)
}
