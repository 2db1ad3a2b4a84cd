// Package store keeps the latest decoded update per feed for the serving
// layer. The codec itself never caches; this is caller-side state.
package store

import (
	"sync"

	"github.com/danmuck/feedctl/internal/feed"
)

// Store holds the most recent update per feed id. Latest wins by posted
// slot. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	updates map[feed.FeedID]feed.PriceUpdate
}

func New() *Store {
	return &Store{updates: make(map[feed.FeedID]feed.PriceUpdate)}
}

// Put records u unless a strictly newer slot is already held for the same
// feed. Reports whether u was kept.
func (s *Store) Put(u feed.PriceUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.updates[u.Message.FeedID]; ok && cur.PostedSlot > u.PostedSlot {
		return false
	}
	s.updates[u.Message.FeedID] = u
	return true
}

// Latest returns the newest update held for id.
func (s *Store) Latest(id feed.FeedID) (feed.PriceUpdate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.updates[id]
	return u, ok
}

// Len reports how many feeds currently have an update.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.updates)
}
