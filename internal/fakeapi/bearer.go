package fakeapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/garrettladley/safequake/internal/xerrors"
	"github.com/garrettladley/safequake/internal/xhttp"
	"github.com/garrettladley/safequake/internal/xslog"
)

type emailKey struct{}

func emailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey{}).(string)
	return email
}

// bearerAuth resolves the bearer token to a registered user.
func bearerAuth(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			header := r.Header.Get(xhttp.Authorization)

			token, ok := strings.CutPrefix(header, xhttp.BearerPrefix)
			if !ok || token == "" {
				xslog.FromContext(ctx).WarnContext(ctx, "missing bearer token", xslog.RequestPath(r))
				xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("missing Authorization header")))
				return
			}

			email, ok := store.Authenticate(token)
			if !ok {
				xslog.FromContext(ctx).WarnContext(ctx, "unknown bearer token", xslog.RequestPath(r))
				xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("invalid or expired token")))
				return
			}

			ctx = context.WithValue(ctx, emailKey{}, email)
			ctx = xslog.WithAttrs(ctx, xslog.Email(email))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
