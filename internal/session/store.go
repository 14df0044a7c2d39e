// Package session holds the per-workbench state: the query being edited,
// the last result envelope, view parameters, execution history, and
// notifications. The engine itself is stateless; everything a client
// observes between executions lives here.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leapstack-labs/sqlbench/internal/engine"
	"github.com/leapstack-labs/sqlbench/internal/transform"
)

// ErrExecutionInFlight is returned when an execution is requested while
// another one is still running. One execution per store at a time.
var ErrExecutionInFlight = errors.New("query execution already in flight")

const (
	// DefaultHistoryLimit bounds the execution history ring.
	DefaultHistoryLimit = 20

	// DefaultPageSize is the initial result page size.
	DefaultPageSize = 25
)

// HistoryEntry records one completed execution, most recent first.
type HistoryEntry struct {
	ID              int64   `json:"id"`
	Query           string  `json:"query"`
	Timestamp       string  `json:"timestamp"`
	ExecutionTimeMs float64 `json:"executionTime"`
}

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notification is a transient user-facing message produced by store
// operations, drained by the UI layer.
type Notification struct {
	ID        string `json:"id"`
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Config holds store configuration.
type Config struct {
	// Engine executes queries. Required.
	Engine *engine.Engine

	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger

	// HistoryLimit bounds the history ring. Defaults to DefaultHistoryLimit.
	HistoryLimit int

	// PageSize is the initial page size. Defaults to DefaultPageSize.
	PageSize int
}

// Store is a mutex-guarded workbench state container. All methods are
// safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	engine *engine.Engine
	logger *slog.Logger

	historyLimit int

	currentQuery    string
	selectedQueryID string

	status  engine.Status
	lastErr string
	last    *engine.Result

	page      int
	pageSize  int
	search    string
	filters   map[string]transform.Filter
	sortBy    string
	sortOrder transform.Order

	selectedRows    map[int]struct{}
	selectedColumns []string

	history       []HistoryEntry
	lastHistoryID int64

	notifications []Notification
}

// New creates a workbench store backed by the given engine.
func New(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Store{
		engine:       cfg.Engine,
		logger:       logger,
		historyLimit: limit,
		status:       engine.StatusIdle,
		page:         1,
		pageSize:     pageSize,
		filters:      map[string]transform.Filter{},
		selectedRows: map[int]struct{}{},
	}
}

// Engine returns the underlying execution engine.
func (s *Store) Engine() *engine.Engine { return s.engine }

// SetCurrentQuery replaces the query text being edited. A pinned catalog
// selection survives text edits, so tweaking a selected query's SQL keeps
// it resolving to the same dataset. Only ClearQuery or selecting another
// entry changes the pin.
func (s *Store) SetCurrentQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentQuery = text
}

// SelectPredefinedQuery pins a catalog entry and loads its text into the
// editor. Unknown ids return false and leave the state untouched.
func (s *Store) SelectPredefinedQuery(id string) bool {
	def, ok := s.engine.Catalog().Get(id)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedQueryID = def.ID
	s.currentQuery = def.QueryText
	return true
}

// ClearQuery empties the editor and drops the catalog selection.
func (s *Store) ClearQuery() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentQuery = ""
	s.selectedQueryID = ""
}

// ClearResults drops the last envelope, any error, and the row/column
// selection. The query text, view parameters, and status survive: an
// in-flight execution keeps its guard.
func (s *Store) ClearResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
	s.lastErr = ""
	s.selectedRows = map[int]struct{}{}
	s.selectedColumns = nil
}

// Execute runs the given query text through the engine using the stored
// view parameters. An empty text reuses the current editor contents.
// Returns ErrExecutionInFlight if another execution is still running.
// On success the envelope, history, and notifications are updated; on
// failure the previous envelope stays in place. Either outcome passes
// through its terminal status and settles back at idle.
func (s *Store) Execute(ctx context.Context, queryText string) (*engine.Result, error) {
	s.mu.Lock()
	if s.status == engine.StatusExecuting {
		s.mu.Unlock()
		return nil, ErrExecutionInFlight
	}
	if queryText != "" {
		s.currentQuery = queryText
	}
	text := s.currentQuery
	selectedID := s.selectedQueryID
	params := s.paramsLocked()
	s.transitionLocked(engine.StatusExecuting)
	s.lastErr = ""
	s.mu.Unlock()

	res, err := s.engine.Execute(ctx, text, selectedID, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.transitionLocked(engine.StatusFailed)
		s.transitionLocked(engine.StatusIdle)
		s.lastErr = err.Error()
		s.pushNotificationLocked(LevelError, "Query failed: "+err.Error())
		s.logger.Error("query execution failed", "error", err)
		return nil, err
	}

	s.transitionLocked(engine.StatusSucceeded)
	s.transitionLocked(engine.StatusIdle)
	s.last = res
	s.page = res.CurrentPage
	s.pageSize = res.PageSize
	s.selectedColumns = append([]string(nil), res.Columns...)
	s.selectedRows = map[int]struct{}{}
	s.appendHistoryLocked(text, res.ExecutionTimeMs)
	s.logger.Debug("query executed",
		"rows", res.RowCount, "total", res.TotalCount, "ms", res.ExecutionTimeMs)
	return res, nil
}

// transitionLocked advances the status machine. A move CanTransition
// disallows leaves the status untouched. Caller holds s.mu.
func (s *Store) transitionLocked(next engine.Status) {
	if !s.status.CanTransition(next) {
		s.logger.Error("illegal status transition", "from", s.status, "to", next)
		return
	}
	s.status = next
}

// paramsLocked assembles transform parameters from the view state.
// Caller holds s.mu.
func (s *Store) paramsLocked() transform.Params {
	filters := make(map[string]transform.Filter, len(s.filters))
	for col, f := range s.filters {
		filters[col] = f
	}
	return transform.Params{
		Page:      s.page,
		Limit:     s.pageSize,
		Search:    s.search,
		Filters:   filters,
		SortBy:    s.sortBy,
		SortOrder: s.sortOrder,
	}
}

// appendHistoryLocked prepends an entry and trims the ring. IDs are
// millisecond timestamps, bumped to stay strictly monotonic when two
// executions land in the same millisecond. Caller holds s.mu.
func (s *Store) appendHistoryLocked(query string, tookMs float64) {
	now := time.Now()
	id := now.UnixMilli()
	if id <= s.lastHistoryID {
		id = s.lastHistoryID + 1
	}
	s.lastHistoryID = id

	entry := HistoryEntry{
		ID:              id,
		Query:           query,
		Timestamp:       now.UTC().Format(time.RFC3339),
		ExecutionTimeMs: tookMs,
	}
	s.history = append([]HistoryEntry{entry}, s.history...)
	if len(s.history) > s.historyLimit {
		s.history = s.history[:s.historyLimit]
	}
}

// SetPageSize changes the page size and resets to the first page.
// The next execution picks it up; there is no automatic refetch.
func (s *Store) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageSize = size
	s.page = 1
}

// SetCurrentPage moves to the given page without resetting anything else.
func (s *Store) SetCurrentPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
}

// SetSearchTerm sets the search filter and resets to the first page.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
	s.page = 1
}

// SetSortBy sets the sort column and direction and resets to the first
// page. An empty column clears the sort.
func (s *Store) SetSortBy(column string, order transform.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = column
	s.sortOrder = order
	s.page = 1
}

// SetFilters replaces the column filter set and resets to the first page.
func (s *Store) SetFilters(filters map[string]transform.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = make(map[string]transform.Filter, len(filters))
	for col, f := range filters {
		s.filters[col] = f
	}
	s.page = 1
}

// ToggleRowSelection flips the selection state of a row index on the
// current page.
func (s *Store) ToggleRowSelection(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selectedRows[index]; ok {
		delete(s.selectedRows, index)
	} else {
		s.selectedRows[index] = struct{}{}
	}
}

// SetSelectedColumns replaces the visible column selection.
func (s *Store) SetSelectedColumns(columns []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedColumns = append([]string(nil), columns...)
}

// History returns the execution history, most recent first.
func (s *Store) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]HistoryEntry(nil), s.history...)
}

// ClearHistory empties the execution history.
func (s *Store) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// PushNotification appends a transient message for the UI.
func (s *Store) PushNotification(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushNotificationLocked(level, message)
}

func (s *Store) pushNotificationLocked(level Level, message string) {
	s.notifications = append(s.notifications, Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// DismissNotification removes one pending notification by id. It reports
// whether the id was found.
func (s *Store) DismissNotification(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return true
		}
	}
	return false
}

// DrainNotifications returns pending notifications and clears them.
func (s *Store) DrainNotifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications
	s.notifications = nil
	return out
}

// Snapshot is a point-in-time copy of the observable store state.
type Snapshot struct {
	CurrentQuery    string                      `json:"currentQuery"`
	SelectedQueryID string                      `json:"selectedQueryId,omitempty"`
	Status          engine.Status               `json:"status"`
	Error           string                      `json:"error,omitempty"`
	Result          *engine.Result              `json:"result,omitempty"`
	Page            int                         `json:"page"`
	PageSize        int                         `json:"pageSize"`
	Search          string                      `json:"search,omitempty"`
	Filters         map[string]transform.Filter `json:"filters,omitempty"`
	SortBy          string                      `json:"sortBy,omitempty"`
	SortOrder       transform.Order             `json:"sortOrder,omitempty"`
	SelectedRows    []int                       `json:"selectedRows,omitempty"`
	SelectedColumns []string                    `json:"selectedColumns,omitempty"`
	HistorySize     int                         `json:"historySize"`
}

// Snapshot returns a copy of the current state for rendering.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]int, 0, len(s.selectedRows))
	for idx := range s.selectedRows {
		rows = append(rows, idx)
	}
	sort.Ints(rows)

	filters := make(map[string]transform.Filter, len(s.filters))
	for col, f := range s.filters {
		filters[col] = f
	}

	return Snapshot{
		CurrentQuery:    s.currentQuery,
		SelectedQueryID: s.selectedQueryID,
		Status:          s.status,
		Error:           s.lastErr,
		Result:          s.last,
		Page:            s.page,
		PageSize:        s.pageSize,
		Search:          s.search,
		Filters:         filters,
		SortBy:          s.sortBy,
		SortOrder:       s.sortOrder,
		SelectedRows:    rows,
		SelectedColumns: append([]string(nil), s.selectedColumns...),
		HistorySize:     len(s.history),
	}
}
