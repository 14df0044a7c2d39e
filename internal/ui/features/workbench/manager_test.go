package workbench

import (
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlbench/internal/catalog"
	"github.com/leapstack-labs/sqlbench/internal/engine"
	wsession "github.com/leapstack-labs/sqlbench/internal/session"
	"github.com/leapstack-labs/sqlbench/internal/testutil"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	rng := rand.New(rand.NewPCG(5, 11))
	eng := engine.New(engine.Config{
		Catalog: catalog.Load(rng),
		Logger:  testutil.NewTestLogger(t),
		Rand:    rng,
	})
	cookies := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
	return NewManager(cookies, func() *wsession.Store {
		return wsession.New(wsession.Config{Engine: eng, Logger: testutil.NewTestLogger(t)})
	})
}

func TestManager_SameCookieSameStore(t *testing.T) {
	m := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	first := m.StoreFor(rec, req)
	require.Equal(t, 1, m.Len())

	again := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	for _, c := range rec.Result().Cookies() {
		again.AddCookie(c)
	}
	second := m.StoreFor(httptest.NewRecorder(), again)

	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Len())
}

func TestManager_EvictsExpiredSessions(t *testing.T) {
	m := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	m.StoreFor(httptest.NewRecorder(), req)
	require.Equal(t, 1, m.Len())

	// Age the session past the TTL and force the next request to sweep.
	m.mu.Lock()
	for _, entry := range m.stores {
		entry.lastSeen = time.Now().Add(-sessionTTL - time.Hour)
	}
	m.lastSweep = time.Now().Add(-sweepInterval - time.Minute)
	m.mu.Unlock()

	fresh := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	m.StoreFor(httptest.NewRecorder(), fresh)

	assert.Equal(t, 1, m.Len(), "expired session evicted, fresh one kept")
}

func TestManager_SweepKeepsLiveSessions(t *testing.T) {
	m := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	m.StoreFor(httptest.NewRecorder(), req)

	m.mu.Lock()
	m.sweepLocked(time.Now())
	m.mu.Unlock()

	assert.Equal(t, 1, m.Len())
}
