// Package fakeapi serves the SafeQuake REST API from memory for tests and local development.
package fakeapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/garrettladley/safequake/internal/xhttp/middleware"
	"github.com/garrettladley/safequake/internal/xslog"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Store *Store

	handler http.Handler
	logger  *slog.Logger
}

var _ http.Handler = (*Server)(nil)

func New(logger *slog.Logger) *Server {
	store := NewStore()
	h := &handlers{store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("POST /users/create", h.handleRegister)

	authedMux := http.NewServeMux()
	authedMux.HandleFunc("GET /earthquakes/classified", h.handleListClassified)
	authedMux.HandleFunc("POST /earthquakes/manual", h.handleCreateManual)
	authedMux.HandleFunc("PUT /earthquakes/{id}", h.handleUpdate)
	authedMux.HandleFunc("DELETE /earthquakes/{id}", h.handleDelete)
	mux.Handle("/earthquakes/", middleware.Chain(authedMux, bearerAuth(store)))

	return &Server{
		Store: store,
		handler: middleware.Chain(mux,
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Logging,
			middleware.Recovery,
		),
		logger: logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe blocks until ctx is cancelled, then shuts the server down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "starting fake api",
			xslog.Version(),
			xslog.Addr(ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.InfoContext(ctx, "shutdown signal received, stopping fake api")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.InfoContext(ctx, "fake api stopped")
	return nil
}
