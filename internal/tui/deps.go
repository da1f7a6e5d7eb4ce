package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/session"
	"github.com/garrettladley/safequake/internal/tui/page"
)

type Deps struct {
	Ctx     context.Context
	Logger  *slog.Logger
	Session *session.State
	Client  *quake.Client
}

func (d Deps) page() page.Deps {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return page.Deps{
		Ctx:     d.Ctx,
		Logger:  logger,
		Session: d.Session,
		Client:  d.Client,
	}
}
