package api

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/tailquest/internal/session"
	"github.com/google/uuid"
)

// sessionTTL is how long a session may sit untouched before add evicts it.
const sessionTTL = 30 * time.Minute

// entry pairs a session with the lock that serializes requests to it.
type entry struct {
	mu       sync.Mutex
	session  *session.Session
	lastSeen atomic.Int64 // unix nanos
}

// registry holds live API sessions by id. Idle sessions are swept on add.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func newRegistry() *registry {
	return &registry{sessions: map[string]*entry{}, ttl: sessionTTL, now: time.Now}
}

func (r *registry) add(s *session.Session) string {
	id := uuid.NewString()
	e := &entry{session: s}
	now := r.now()
	e.lastSeen.Store(now.UnixNano())

	r.mu.Lock()
	r.sweepLocked(now)
	r.sessions[id] = e
	r.mu.Unlock()
	return id
}

func (r *registry) get(id string) (*entry, bool) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		e.lastSeen.Store(r.now().UnixNano())
	}
	return e, ok
}

// remove drops id and reports whether it was live.
func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// sweepLocked evicts sessions idle for longer than ttl. Caller must hold r.mu.
func (r *registry) sweepLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	cutoff := now.Add(-r.ttl).UnixNano()
	for id, e := range r.sessions {
		if e.lastSeen.Load() < cutoff {
			delete(r.sessions, id)
		}
	}
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
