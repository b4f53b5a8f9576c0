// Package session keeps the last-generated dataset for each browser session
// in memory. Nothing is persisted: state disappears when the session expires
// or the process restarts.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"sync"
	"time"

	"github.com/divyakansara2385/solarcalc/internal/dataset"
	"github.com/divyakansara2385/solarcalc/internal/metrics"
	"github.com/divyakansara2385/solarcalc/internal/season"
)

// State is everything remembered per browser: the current dataset and the
// range override in effect, if any. Each generation overwrites the previous
// dataset.
type State struct {
	Dataset *dataset.Dataset
	Ranges  *season.Ranges // nil means season defaults
}

type entry struct {
	state     State
	expiresAt time.Time
}

// Store is a TTL-bounded in-memory session map.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*entry
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*entry),
	}
}

// NewID returns a fresh random session identifier.
func NewID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// Get returns the state for a session and extends its lifetime.
func (s *Store) Get(id string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return State{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, id)
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
		return State{}, false
	}
	e.expiresAt = time.Now().Add(s.ttl)
	return e.state, true
}

// Put stores session state, replacing whatever was there.
func (s *Store) Put(id string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &entry{state: st, expiresAt: time.Now().Add(s.ttl)}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return removed
}

// Run sweeps expired sessions periodically until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("session: swept %d expired sessions", n)
			}
		}
	}
}
