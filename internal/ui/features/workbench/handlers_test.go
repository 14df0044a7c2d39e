package workbench

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlbench/internal/catalog"
	"github.com/leapstack-labs/sqlbench/internal/engine"
	wsession "github.com/leapstack-labs/sqlbench/internal/session"
	"github.com/leapstack-labs/sqlbench/internal/testutil"
	"github.com/leapstack-labs/sqlbench/internal/transform"
	"github.com/leapstack-labs/sqlbench/internal/ui/notifier"
)

// fixture holds a routed workbench API plus the cookie jar that keeps
// requests in the same browser session.
type fixture struct {
	t       *testing.T
	mux     *chi.Mux
	cookies []*http.Cookie
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	rng := rand.New(rand.NewPCG(3, 9))
	eng := engine.New(engine.Config{
		Catalog: catalog.Load(rng),
		Logger:  testutil.NewTestLogger(t),
		Rand:    rng,
	})

	cookieStore := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
	manager := NewManager(cookieStore, func() *wsession.Store {
		return wsession.New(wsession.Config{
			Engine: eng,
			Logger: testutil.NewTestLogger(t),
		})
	})

	mux := chi.NewMux()
	require.NoError(t, SetupRoutes(mux, eng, manager, notifier.New(), testutil.NewTestLogger(t)))

	return &fixture{t: t, mux: mux}
}

// do issues a request within the fixture's session and records any new
// cookies for the next call.
func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	f.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range f.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	if set := rec.Result().Cookies(); len(set) > 0 {
		f.cookies = set
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCatalogEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	defs := decode[[]catalog.QueryDefinition](t, rec)
	assert.Len(t, defs, 15)

	rec = f.do(http.MethodGet, "/api/catalog?category=hr", nil)
	defs = decode[[]catalog.QueryDefinition](t, rec)
	require.NotEmpty(t, defs)
	for _, def := range defs {
		assert.Equal(t, "hr", def.Category)
	}

	rec = f.do(http.MethodGet, "/api/catalog?category=hr&complexity=basic", nil)
	defs = decode[[]catalog.QueryDefinition](t, rec)
	require.NotEmpty(t, defs)
	for _, def := range defs {
		assert.Equal(t, catalog.Basic, def.Complexity)
	}
}

func TestExecuteEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/query/execute",
		ExecuteRequest{Query: "SELECT * FROM employees"})
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[engine.Result](t, rec)
	assert.NotEmpty(t, res.Rows)
	assert.Len(t, res.Columns, 18)
	assert.Equal(t, 1, res.CurrentPage)
}

func TestSelectQueryEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/query/select/employee-list", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	snap := decode[wsession.Snapshot](t, rec)
	assert.Equal(t, "employee-list", snap.SelectedQueryID)
	assert.NotEmpty(t, snap.CurrentQuery)

	rec = f.do(http.MethodPost, "/api/query/select/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExecuteEndpoint_EditedTextKeepsSelection(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/query/select/financial-quarterly", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/query/execute",
		ExecuteRequest{Query: "SELECT revnue FROM fm -- tweaked"})
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[engine.Result](t, rec)
	assert.Contains(t, res.Columns, "profit_margin")

	snap := decode[wsession.Snapshot](t, f.do(http.MethodGet, "/api/state", nil))
	assert.Equal(t, "financial-quarterly", snap.SelectedQueryID)
}

func TestStatePersistsAcrossRequests(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/query/text", ExecuteRequest{Query: "SELECT 42"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/state", nil)
	snap := decode[wsession.Snapshot](t, rec)
	assert.Equal(t, "SELECT 42", snap.CurrentQuery)
	assert.Equal(t, engine.StatusIdle, snap.Status)
}

func TestViewSetters(t *testing.T) {
	f := newFixture(t)

	f.do(http.MethodPost, "/api/view/page", PageRequest{Page: 3})
	snap := decode[wsession.Snapshot](t, f.do(http.MethodGet, "/api/state", nil))
	assert.Equal(t, 3, snap.Page)

	f.do(http.MethodPost, "/api/view/search", SearchRequest{Search: "nancy"})
	snap = decode[wsession.Snapshot](t, f.do(http.MethodGet, "/api/state", nil))
	assert.Equal(t, "nancy", snap.Search)
	assert.Equal(t, 1, snap.Page, "search must reset the page")

	rec := f.do(http.MethodPost, "/api/view/sort",
		SortRequest{Column: "name", Order: transform.Desc})
	snap = decode[wsession.Snapshot](t, rec)
	assert.Equal(t, "name", snap.SortBy)
	assert.Equal(t, transform.Desc, snap.SortOrder)
}

func TestSetFilters_RejectsUnknownOperator(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/view/filters", FiltersRequest{
		Filters: map[string]transform.Filter{
			"city": {Operator: "matches_regex", Value: ".*"},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "matches_regex")
}

func TestHistoryEndpoints(t *testing.T) {
	f := newFixture(t)

	f.do(http.MethodPost, "/api/query/execute", ExecuteRequest{Query: "SELECT 1"})
	f.do(http.MethodPost, "/api/query/execute", ExecuteRequest{Query: "SELECT 2"})

	rec := f.do(http.MethodGet, "/api/history", nil)
	entries := decode[[]wsession.HistoryEntry](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, "SELECT 2", entries[0].Query)

	rec = f.do(http.MethodDelete, "/api/history", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	entries = decode[[]wsession.HistoryEntry](t, f.do(http.MethodGet, "/api/history", nil))
	assert.Empty(t, entries)
}

func TestExportEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/export",
		ExportRequest{Format: "csv", IncludeHeaders: true})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "export before any execution")

	f.do(http.MethodPost, "/api/query/execute", ExecuteRequest{Query: "SELECT * FROM employees"})

	rec = f.do(http.MethodPost, "/api/export",
		ExportRequest{Format: "csv", IncludeHeaders: true, QueryName: "Employee List"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Employee_List_")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\ufeff"))

	rec = f.do(http.MethodPost, "/api/export", ExportRequest{Format: "xml"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearEndpoints(t *testing.T) {
	f := newFixture(t)

	f.do(http.MethodPost, "/api/query/execute", ExecuteRequest{Query: "SELECT * FROM employees"})

	snap := decode[wsession.Snapshot](t, f.do(http.MethodPost, "/api/results/clear", nil))
	assert.Nil(t, snap.Result)
	assert.Equal(t, engine.StatusIdle, snap.Status)

	snap = decode[wsession.Snapshot](t, f.do(http.MethodPost, "/api/query/clear", nil))
	assert.Empty(t, snap.CurrentQuery)
}

func TestSessionsAreIsolated(t *testing.T) {
	f1 := newFixture(t)

	f1.do(http.MethodPost, "/api/query/text", ExecuteRequest{Query: "SELECT a"})

	// A request with no cookie lands in a fresh session on the same mux.
	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	f1.mux.ServeHTTP(rec, req)

	var snap wsession.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Empty(t, snap.CurrentQuery)
}

func TestNotificationEndpoints(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())

	rec = f.do(http.MethodDelete, "/api/notifications/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
