package web

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

// entry is one live session. mu serialises requests for the session.
type entry struct {
	mu      sync.Mutex
	session *session.Session

	// lastSeen is guarded by the registry's mutex, not the entry's.
	lastSeen time.Time
}

// errRegistryFull is returned by Create once the registry holds its maximum
// number of sessions.
var errRegistryFull = errors.New("too many live sessions")

// registry holds the live sessions of the HTTP host, keyed by session ID.
// Sessions idle for longer than the TTL are dropped by Sweep. A positive
// limit caps the number of live sessions.
type registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	limit    int

	newSource func() questions.Source
	now       func() time.Time
}

// newRegistry returns an empty registry. newSource supplies each new session's
// randomness.
func newRegistry(ttl time.Duration, limit int, newSource func() questions.Source) *registry {
	return &registry{
		sessions:  make(map[string]*entry),
		ttl:       ttl,
		limit:     limit,
		newSource: newSource,
		now:       time.Now,
	}
}

// Get returns the live session with id and marks it as seen.
func (r *registry) Get(id string) (*entry, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	now := r.now()
	if now.Sub(e.lastSeen) > r.ttl {
		delete(r.sessions, id)
		return nil, false
	}
	e.lastSeen = now
	return e, true
}

// Create starts a new session under a fresh ID. When the registry is full it
// first drops expired sessions, then fails with errRegistryFull.
func (r *registry) Create() (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.limit > 0 && len(r.sessions) >= r.limit {
		r.sweepLocked(now)
		if len(r.sessions) >= r.limit {
			return nil, errRegistryFull
		}
	}

	state := session.NewState(uuid.New().String(), now)
	e := &entry{
		session:  session.NewWithState(state, r.newSource()),
		lastSeen: now,
	}
	r.sessions[state.ID] = e
	return e, nil
}

// Len returns the number of live sessions.
func (r *registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops the sessions idle for longer than the TTL and returns how many
// it removed.
func (r *registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(r.now())
}

func (r *registry) sweepLocked(now time.Time) int {
	n := 0
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done. onSweep, if set, is called
// with the number of sessions each sweep removed.
func (r *registry) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := r.Sweep()
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}
