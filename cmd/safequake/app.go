package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/config"
	"github.com/garrettladley/safequake/internal/db"
	"github.com/garrettladley/safequake/internal/paths"
	"github.com/garrettladley/safequake/internal/redis"
	"github.com/garrettladley/safequake/internal/session"
	"github.com/garrettladley/safequake/internal/xslog"
)

// app is the wiring every command shares: config, log file, session and API client.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	session *session.State
	client  *quake.Client

	closers []func() error
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	logPath, err := paths.Log()
	if err != nil {
		return nil, err
	}
	logFile, err := xslog.OpenFile(logPath)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, logFile.Close)
	a.logger = xslog.NewLoggerFromEnv(logFile, cfg.Environment)

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.session, err = session.Restore(ctx, store)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.client = quake.New(a.session,
		quake.WithBaseURL(cfg.ServerURL),
		quake.WithTimeout(cfg.Timeout),
		quake.WithLogger(a.logger),
	)

	a.logger.DebugContext(ctx, "session restored",
		xslog.Version(),
		xslog.URL(cfg.ServerURL),
		slog.String("backend", string(cfg.Session.Backend)),
		slog.Bool("authenticated", a.session.IsAuthenticated()))

	return a, nil
}

func (a *app) openStore(ctx context.Context) (session.Store, error) {
	switch a.cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := redis.New(ctx, redis.Config{URL: a.cfg.Redis.URL})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return session.NewRedisStore(client), nil
	default:
		dbPath, err := paths.DB()
		if err != nil {
			return nil, err
		}
		sqlDB, querier, err := db.Open(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		return session.NewDBStore(querier), nil
	}
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}

// userError logs err and returns the message a person should read instead.
func (a *app) userError(ctx context.Context, err error, fallback string) error {
	a.logger.WarnContext(ctx, "command failed", xslog.Error(err))
	return errors.New(quake.UserMessage(err, fallback))
}

// requireSession fails fast with the same message the API would produce.
func (a *app) requireSession() error {
	if !a.session.IsAuthenticated() {
		return errors.New(quake.UserMessage(session.ErrNoToken, ""))
	}
	return nil
}
