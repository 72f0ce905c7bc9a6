// Package session holds the latest calculation per visitor session so
// the presentation layer can branch between "show form" and "show
// results" without the engine keeping any state.
package session

import (
	"log/slog"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/kahua-labs/malama/internal/advisor"
	"github.com/kahua-labs/malama/internal/scoring"
	"github.com/kahua-labs/malama/internal/trip"
)

// Entry is one session's stored calculation.
type Entry struct {
	Params          trip.Parameters      `json:"params"`
	Result          scoring.ImpactResult `json:"result"`
	Recommendations []advisor.Advisory   `json:"recommendations"`
	ComputedAt      time.Time            `json:"computed_at"`
	ExpiresAt       time.Time            `json:"-"`
}

// Store holds at most one entry per session ID.
type Store interface {
	Put(sessionID string, e Entry)
	Get(sessionID string) (Entry, bool)
	Delete(sessionID string)
	Len() int
}

// MemoryStore is an in-process Store with TTL and capacity eviction.
type MemoryStore struct {
	cache  *otter.Cache[string, Entry]
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a MemoryStore that evicts entries ttl after their last
// write and caps the session count at capacity.
func New(capacity int, ttl time.Duration, logger *slog.Logger) *MemoryStore {
	cache := otter.Must(&otter.Options[string, Entry]{
		MaximumSize:      capacity,
		InitialCapacity:  256,
		ExpiryCalculator: otter.ExpiryWriting[string, Entry](ttl),
	})

	return &MemoryStore{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Put stores the session's latest calculation, replacing any previous one.
func (s *MemoryStore) Put(sessionID string, e Entry) {
	e.ExpiresAt = time.Now().Add(s.ttl)
	s.cache.Set(sessionID, e)
	s.logger.Debug("session stored", "session", sessionID, "expires_at", e.ExpiresAt)
}

// Get returns the session's stored calculation if present and fresh.
// Expiry is re-checked on read so a stale entry is never served.
func (s *MemoryStore) Get(sessionID string) (Entry, bool) {
	e, ok := s.cache.GetIfPresent(sessionID)
	if !ok {
		return Entry{}, false
	}
	if time.Now().After(e.ExpiresAt) {
		s.cache.Invalidate(sessionID)
		s.logger.Debug("session expired", "session", sessionID, "expired_at", e.ExpiresAt)
		return Entry{}, false
	}
	return e, true
}

// Delete clears the session's slot.
func (s *MemoryStore) Delete(sessionID string) {
	s.cache.Invalidate(sessionID)
}

// Len reports the approximate number of live sessions.
func (s *MemoryStore) Len() int {
	return int(s.cache.EstimatedSize())
}
