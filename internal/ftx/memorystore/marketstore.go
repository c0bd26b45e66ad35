package memorystore

import (
	"sort"
	"sync"
)

// MarketStore is the set of market names the collector works on. A refresh
// replaces the whole set.
type MarketStore struct {
	mu      sync.RWMutex
	markets map[string]struct{}
}

func NewMarketStore() *MarketStore {
	return &MarketStore{
		markets: make(map[string]struct{}),
	}
}

func (s *MarketStore) Add(market string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markets[market] = struct{}{}
}

func (s *MarketStore) Has(market string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.markets[market]
	return ok
}

// Replace drains ch into a fresh set and swaps it in once ch is closed.
// Readers see either the old or the new set, never a partial one. An empty
// load (usually a failed fetch) keeps the current set and returns 0.
func (s *MarketStore) Replace(ch <-chan string) int {
	next := make(map[string]struct{})
	for market := range ch {
		next[market] = struct{}{}
	}
	if len(next) == 0 {
		return 0
	}

	s.mu.Lock()
	s.markets = next
	s.mu.Unlock()
	return len(next)
}

// GetAll returns the markets sorted by name.
func (s *MarketStore) GetAll() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.markets))
	for m := range s.markets {
		out = append(out, m)
	}
	s.mu.RUnlock()

	sort.Strings(out)
	return out
}

func (s *MarketStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.markets)
}
