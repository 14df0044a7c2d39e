// Package router wires HTTP routes for the workbench server.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/sqlbench/internal/engine"
	"github.com/leapstack-labs/sqlbench/internal/ui/features/workbench"
	"github.com/leapstack-labs/sqlbench/internal/ui/notifier"
)

// SetupRoutes configures all routes for the workbench server.
func SetupRoutes(
	router chi.Router,
	eng *engine.Engine,
	manager *workbench.Manager,
	notify *notifier.Notifier,
	logger *slog.Logger,
) error {
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return workbench.SetupRoutes(router, eng, manager, notify, logger)
}
