package workbench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leapstack-labs/sqlbench/internal/catalog"
	"github.com/leapstack-labs/sqlbench/internal/engine"
	"github.com/leapstack-labs/sqlbench/internal/export"
	wsession "github.com/leapstack-labs/sqlbench/internal/session"
	"github.com/leapstack-labs/sqlbench/internal/ui/notifier"
)

// Handlers provides the workbench HTTP handlers.
type Handlers struct {
	engine   *engine.Engine
	manager  *Manager
	notifier *notifier.Notifier
	logger   *slog.Logger
}

// NewHandlers creates a Handlers instance.
func NewHandlers(eng *engine.Engine, manager *Manager, notify *notifier.Notifier, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		engine:   eng,
		manager:  manager,
		notifier: notify,
		logger:   logger,
	}
}

// Catalog lists the predefined queries, optionally filtered by the
// category and complexity query parameters.
func (h *Handlers) Catalog(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()

	defs := cat.List()
	if category := r.URL.Query().Get("category"); category != "" {
		defs = cat.ByCategory(category)
	}
	if complexity := r.URL.Query().Get("complexity"); complexity != "" {
		filtered := defs[:0:0]
		for _, def := range defs {
			if def.Complexity == catalog.Complexity(complexity) {
				filtered = append(filtered, def)
			}
		}
		defs = filtered
	}

	writeJSON(w, http.StatusOK, defs)
}

// Execute runs a query for the request's session. A concurrent execution
// on the same session yields 409.
func (h *Handlers) Execute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	st := h.manager.StoreFor(w, r)
	res, err := st.Execute(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, wsession.ErrExecutionInFlight) {
			writeError(w, http.StatusConflict, err)
			return
		}
		h.notifier.Broadcast()
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	h.notifier.Broadcast()
	writeJSON(w, http.StatusOK, res)
}

// SelectQuery pins a catalog entry and loads its text into the editor.
func (h *Handlers) SelectQuery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st := h.manager.StoreFor(w, r)
	if !st.SelectPredefinedQuery(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown query %q", id))
		return
	}
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// SetQuery replaces the editor text without executing.
func (h *Handlers) SetQuery(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st := h.manager.StoreFor(w, r)
	st.SetCurrentQuery(req.Query)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// ClearQuery empties the editor.
func (h *Handlers) ClearQuery(w http.ResponseWriter, r *http.Request) {
	st := h.manager.StoreFor(w, r)
	st.ClearQuery()
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// ClearResults drops the last result envelope.
func (h *Handlers) ClearResults(w http.ResponseWriter, r *http.Request) {
	st := h.manager.StoreFor(w, r)
	st.ClearResults()
	h.notifier.Broadcast()
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// State returns the session's observable state.
func (h *Handlers) State(w http.ResponseWriter, r *http.Request) {
	st := h.manager.StoreFor(w, r)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// History lists past executions, most recent first.
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	st := h.manager.StoreFor(w, r)
	writeJSON(w, http.StatusOK, st.History())
}

// ClearHistory empties the execution history.
func (h *Handlers) ClearHistory(w http.ResponseWriter, r *http.Request) {
	st := h.manager.StoreFor(w, r)
	st.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

// Notifications drains pending notifications for the session.
func (h *Handlers) Notifications(w http.ResponseWriter, r *http.Request) {
	st := h.manager.StoreFor(w, r)
	notes := st.DrainNotifications()
	if notes == nil {
		notes = []wsession.Notification{}
	}
	writeJSON(w, http.StatusOK, notes)
}

// DismissNotification removes one pending notification by id.
func (h *Handlers) DismissNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st := h.manager.StoreFor(w, r)
	if !st.DismissNotification(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown notification %q", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetPage moves the view to a page. The client re-executes to refresh.
func (h *Handlers) SetPage(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st := h.manager.StoreFor(w, r)
	st.SetCurrentPage(req.Page)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// SetPageSize changes the page size and resets to the first page.
func (h *Handlers) SetPageSize(w http.ResponseWriter, r *http.Request) {
	var req PageSizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st := h.manager.StoreFor(w, r)
	st.SetPageSize(req.PageSize)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// SetSearch sets the search term and resets to the first page.
func (h *Handlers) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st := h.manager.StoreFor(w, r)
	st.SetSearchTerm(req.Search)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// SetSort sets the sort column and direction.
func (h *Handlers) SetSort(w http.ResponseWriter, r *http.Request) {
	var req SortRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st := h.manager.StoreFor(w, r)
	st.SetSortBy(req.Column, req.Order)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// SetFilters replaces the column filter set. Unknown operators yield 400.
func (h *Handlers) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	for col, f := range req.Filters {
		if !f.Operator.Valid() {
			writeError(w, http.StatusBadRequest,
				fmt.Errorf("unknown filter operator %q for column %q", f.Operator, col))
			return
		}
	}
	st := h.manager.StoreFor(w, r)
	st.SetFilters(req.Filters)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// ToggleRow flips the selection of one row on the current page.
func (h *Handlers) ToggleRow(w http.ResponseWriter, r *http.Request) {
	var req ToggleRowRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	st := h.manager.StoreFor(w, r)
	st.ToggleRowSelection(req.Index)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// Export serializes the current result rows as a file download.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Format.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown export format %q", req.Format))
		return
	}

	st := h.manager.StoreFor(w, r)
	snap := st.Snapshot()
	if snap.Result == nil {
		writeError(w, http.StatusBadRequest, errors.New("no results to export"))
		return
	}

	data, err := export.Export(snap.Result.Rows, snap.Result.Columns, export.Options{
		Format:         req.Format,
		SelectedRows:   req.SelectedRows,
		IncludeHeaders: req.IncludeHeaders,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	name := req.QueryName
	if name == "" {
		name = "query_results"
	}
	filename := export.Filename(name, req.Format, time.Now())

	h.logger.Debug("exporting results", "format", req.Format, "filename", filename,
		"rows", len(snap.Result.Rows))

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Events is a server-sent-events stream that pings whenever any session
// executes or clears results. Clients re-fetch state on ping.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, errors.New("streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(ch)

	ping := func() {
		fmt.Fprint(w, "event: ping\ndata: {}\n\n")
		flusher.Flush()
	}
	ping()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ch:
			ping()
		case <-keepalive.C:
			ping()
		}
	}
}

// decodeJSON reads the request body into v, writing a 400 on failure.
// An empty body decodes to the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
