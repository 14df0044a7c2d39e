package workbench

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/sqlbench/internal/engine"
	"github.com/leapstack-labs/sqlbench/internal/ui/notifier"
)

// SetupRoutes registers the workbench API routes.
func SetupRoutes(
	router chi.Router,
	eng *engine.Engine,
	manager *Manager,
	notify *notifier.Notifier,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(eng, manager, notify, logger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/catalog", handlers.Catalog)
		r.Get("/state", handlers.State)
		r.Get("/events", handlers.Events)
		r.Get("/notifications", handlers.Notifications)
		r.Delete("/notifications/{id}", handlers.DismissNotification)

		r.Route("/query", func(r chi.Router) {
			r.Post("/execute", handlers.Execute)
			r.Post("/select/{id}", handlers.SelectQuery)
			r.Post("/text", handlers.SetQuery)
			r.Post("/clear", handlers.ClearQuery)
		})

		r.Post("/results/clear", handlers.ClearResults)
		r.Post("/export", handlers.Export)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", handlers.History)
			r.Delete("/", handlers.ClearHistory)
		})

		r.Route("/view", func(r chi.Router) {
			r.Post("/page", handlers.SetPage)
			r.Post("/page-size", handlers.SetPageSize)
			r.Post("/search", handlers.SetSearch)
			r.Post("/sort", handlers.SetSort)
			r.Post("/filters", handlers.SetFilters)
			r.Post("/rows/toggle", handlers.ToggleRow)
		})
	})

	return nil
}
