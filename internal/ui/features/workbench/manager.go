package workbench

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	wsession "github.com/leapstack-labs/sqlbench/internal/session"
)

const (
	sessionCookie = "sqlbench_session"
	sessionIDKey  = "sid"

	// sessionTTL matches the cookie MaxAge: a store whose cookie has
	// expired can never be addressed again.
	sessionTTL    = 30 * 24 * time.Hour
	sweepInterval = time.Hour
)

// StoreFactory creates a fresh workbench state store for a new browser
// session.
type StoreFactory func() *wsession.Store

type sessionEntry struct {
	store    *wsession.Store
	lastSeen time.Time
}

// Manager maps cookie-identified browser sessions to workbench stores.
// Each client gets its own store; stores idle past the session TTL are
// evicted on the next sweep.
type Manager struct {
	mu        sync.Mutex
	cookies   sessions.Store
	stores    map[string]*sessionEntry
	factory   StoreFactory
	lastSweep time.Time
}

// NewManager creates a session manager over the given cookie store.
func NewManager(cookies sessions.Store, factory StoreFactory) *Manager {
	return &Manager{
		cookies:   cookies,
		stores:    make(map[string]*sessionEntry),
		factory:   factory,
		lastSweep: time.Now(),
	}
}

// StoreFor returns the workbench store for the request's session,
// creating the session cookie and store on first contact. A cookie that
// fails to decode is replaced rather than rejected.
func (m *Manager) StoreFor(w http.ResponseWriter, r *http.Request) *wsession.Store {
	sess, _ := m.cookies.Get(r, sessionCookie)

	id, ok := sess.Values[sessionIDKey].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		sess.Values[sessionIDKey] = id
		_ = sess.Save(r, w)
	}

	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweepLocked(now)
	}

	entry, ok := m.stores[id]
	if !ok {
		entry = &sessionEntry{store: m.factory()}
		m.stores[id] = entry
	}
	entry.lastSeen = now
	return entry.store
}

// sweepLocked drops stores not seen within the session TTL. Caller
// holds m.mu.
func (m *Manager) sweepLocked(now time.Time) {
	for id, entry := range m.stores {
		if now.Sub(entry.lastSeen) > sessionTTL {
			delete(m.stores, id)
		}
	}
	m.lastSweep = now
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}
