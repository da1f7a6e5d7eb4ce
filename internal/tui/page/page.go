// Package page holds what every screen needs to reach the API and the session.
package page

import (
	"context"
	"log/slog"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/session"
)

type Deps struct {
	Ctx     context.Context
	Logger  *slog.Logger
	Session *session.State
	Client  *quake.Client
}

