package history

import (
	"sync"
	"time"

	"github.com/majestic/ai-backend/internal/entity"
	"github.com/patrickmn/go-cache"
)

// Store keeps per-conversation turn history in memory. Each record expires
// after maxAge of inactivity; expired records are only removed when
// SweepExpired is called, which callers do opportunistically at the start of
// each chat request. Individual appends are atomic per record, but the
// read-generate-append sequence of a whole request is deliberately not
// serialized across concurrent requests for the same key.
type Store struct {
	records  *cache.Cache
	maxTurns int
}

type record struct {
	mu    sync.Mutex
	turns []entity.Turn
}

// New creates a store retaining at most maxTurns turns per conversation and
// expiring conversations idle for longer than maxAge. The cache janitor is
// disabled; expiry is driven by SweepExpired.
func New(maxTurns int, maxAge time.Duration) *Store {
	return &Store{
		records:  cache.New(maxAge, 0),
		maxTurns: maxTurns,
	}
}

// Append pushes a turn onto the conversation, evicting the oldest turns when
// the retention cap is exceeded, and refreshes the last-touched timestamp.
func (s *Store) Append(key string, turn entity.Turn) {
	for {
		if v, ok := s.records.Get(key); ok {
			rec := v.(*record)
			rec.mu.Lock()
			rec.turns = append(rec.turns, turn)
			if over := len(rec.turns) - s.maxTurns; over > 0 {
				rec.turns = rec.turns[over:]
			}
			rec.mu.Unlock()

			// Re-set to refresh the expiration timestamp.
			s.records.SetDefault(key, rec)
			return
		}

		rec := &record{turns: []entity.Turn{turn}}
		if err := s.records.Add(key, rec, cache.DefaultExpiration); err == nil {
			return
		}
		// Lost a creation race, retry against the winner's record.
	}
}

// Recent returns up to the last limit turns in insertion order.
func (s *Store) Recent(key string, limit int) []entity.Turn {
	v, ok := s.records.Get(key)
	if !ok || limit <= 0 {
		return nil
	}

	rec := v.(*record)
	rec.mu.Lock()
	defer rec.mu.Unlock()

	start := len(rec.turns) - limit
	if start < 0 {
		start = 0
	}
	out := make([]entity.Turn, len(rec.turns)-start)
	copy(out, rec.turns[start:])
	return out
}

// Reset deletes the conversation entirely.
func (s *Store) Reset(key string) {
	s.records.Delete(key)
}

// SweepExpired removes every conversation whose last-touched timestamp is
// older than the configured max age.
func (s *Store) SweepExpired() {
	s.records.DeleteExpired()
}

// Len reports the number of live conversations.
func (s *Store) Len() int {
	return s.records.ItemCount()
}
