// Package session owns the lifecycle of all chat sessions: creation,
// lookup, and eviction by idle timeout or LRU cap. The registry is the
// sole long-lived owner of agents; turn serialization itself lives on the
// agent's own lock.
package session

import (
	"sync"
	"time"

	"jobhunter-backend/internal/agent"
	"jobhunter-backend/internal/shared/telemetry"
)

// Session binds an opaque id to its agent.
type Session struct {
	ID        string
	Agent     *agent.Agent
	CreatedAt time.Time
}

type entry struct {
	session    *Session
	lastActive time.Time
}

// Registry is a process-wide map of live sessions. The registry mutex
// guards only the map; it is never held across a chat turn, so sessions
// proceed fully in parallel.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewRegistry constructs a Registry. ttl bounds idle time before a sweep
// evicts a session; capacity caps live sessions, evicting least-recently
// used on overflow. Zero values disable the respective rule.
func NewRegistry(ttl time.Duration, capacity int) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

// Create registers a new session for the agent. It fails with
// ErrDuplicate when the id is already live. When the registry is at
// capacity the least-recently-used session is evicted first.
func (r *Registry) Create(id string, ag *agent.Agent) (*Session, error) {
	var victims []*Session

	r.mu.Lock()
	if _, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		return nil, ErrDuplicate
	}
	if r.capacity > 0 {
		for len(r.sessions) >= r.capacity {
			victim := r.oldestLocked()
			if victim == nil {
				break
			}
			delete(r.sessions, victim.session.ID)
			victims = append(victims, victim.session)
		}
	}
	now := r.now()
	sess := &Session{ID: id, Agent: ag, CreatedAt: now}
	r.sessions[id] = &entry{session: sess, lastActive: now}
	r.mu.Unlock()

	// Expire outside the map lock: it waits on each victim's turn lock
	// and must not stall unrelated sessions.
	for _, v := range victims {
		v.Agent.Expire()
		telemetry.Info("session.evicted", map[string]any{"session_id": v.ID, "reason": "capacity"})
	}
	return sess, nil
}

// Get returns a live session and refreshes its activity clock.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.lastActive = r.now()
	return e.session, nil
}

// Delete removes a session if present. Idempotent.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if ok {
		e.session.Agent.Expire()
	}
}

// Sweep evicts sessions idle longer than the ttl and reports how many it
// removed. It runs independently of turn processing; an eviction racing a
// turn waits on that turn's lock inside Expire.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	var victims []*Session
	r.mu.Lock()
	for id, e := range r.sessions {
		if e.lastActive.Before(cutoff) {
			delete(r.sessions, id)
			victims = append(victims, e.session)
		}
	}
	r.mu.Unlock()

	for _, v := range victims {
		v.Agent.Expire()
		telemetry.Info("session.evicted", map[string]any{"session_id": v.ID, "reason": "idle"})
	}
	return len(victims)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) oldestLocked() *entry {
	var oldest *entry
	for _, e := range r.sessions {
		if oldest == nil || e.lastActive.Before(oldest.lastActive) {
			oldest = e
		}
	}
	return oldest
}
