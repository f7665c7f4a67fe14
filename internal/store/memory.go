// internal/store/memory.go
//
// In-memory session store for hosts that run many games at once (HTTP).
//
// Characteristics:
//   - Sessions keyed by a random UUID.
//   - Map guarded by RWMutex; each entry has its own mutex so a session is
//     only ever driven by one request at a time (Update).
//   - Idle entries older than the TTL are evicted by Sweep / Janitor.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned for unknown or evicted session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store holds live game sessions.
type Store interface {
	// Create stores s under a new ID.
	Create(ctx context.Context, s *game.Session) (string, error)

	// Update runs fn with exclusive access to the session stored under id.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Replace swaps the session under id for s, discarding the old one.
	Replace(ctx context.Context, id string, s *game.Session) error

	// Snapshot copies the session stored under id.
	Snapshot(ctx context.Context, id string) (game.Snapshot, error)

	// Delete drops the session under id.
	Delete(ctx context.Context, id string) error
}

type entry struct {
	mu      sync.Mutex
	session *game.Session
	touched time.Time
}

// Memory is a map-based Store.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore constructs a Memory store. A ttl <= 0 disables eviction.
func NewMemoryStore(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) get(id string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Create(ctx context.Context, s *game.Session) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	m.mu.Lock()
	m.entries[id] = &entry{session: s, touched: m.now()}
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	e.touched = m.now()
	return fn(e.session)
}

func (m *Memory) Replace(ctx context.Context, id string, s *game.Session) error {
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	e.session = s
	e.touched = m.now()
	return nil
}

func (m *Memory) Snapshot(ctx context.Context, id string) (game.Snapshot, error) {
	var snap game.Snapshot
	err := m.Update(ctx, id, func(s *game.Session) error {
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Memory) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		e.mu.Lock()
		idle := e.touched.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(m.entries, id)
			n++
		}
	}
	return n
}

// Janitor calls Sweep every interval until ctx is done.
func (m *Memory) Janitor(ctx context.Context, interval time.Duration) {
	if m.ttl <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 {
				log.Debug().Int("evicted", n).Int("live", m.Len()).Msg("session sweep")
			}
		}
	}
}
