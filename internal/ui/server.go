// Package ui provides the web server for the query workbench.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlbench/internal/engine"
	wsession "github.com/leapstack-labs/sqlbench/internal/session"
	"github.com/leapstack-labs/sqlbench/internal/ui/features/workbench"
	"github.com/leapstack-labs/sqlbench/internal/ui/notifier"
	"github.com/leapstack-labs/sqlbench/internal/ui/router"
)

// Server is the workbench HTTP server. Each browser session gets its own
// state store over a shared execution engine.
type Server struct {
	engine       *engine.Engine
	sessionStore *sessions.CookieStore
	manager      *workbench.Manager
	port         int
	logger       *slog.Logger
	notifier     *notifier.Notifier
}

// Config holds configuration for the workbench server.
type Config struct {
	Engine        *engine.Engine
	Port          int
	SessionSecret string
	PageSize      int
	HistoryLimit  int
	Logger        *slog.Logger
}

// NewServer creates a workbench server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	manager := workbench.NewManager(sessionStore, func() *wsession.Store {
		return wsession.New(wsession.Config{
			Engine:       cfg.Engine,
			Logger:       logger,
			PageSize:     cfg.PageSize,
			HistoryLimit: cfg.HistoryLimit,
		})
	})

	return &Server{
		engine:       cfg.Engine,
		sessionStore: sessionStore,
		manager:      manager,
		port:         cfg.Port,
		logger:       logger,
		notifier:     notifier.New(),
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting workbench server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.engine, s.manager, s.notifier, s.logger); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down workbench server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}
