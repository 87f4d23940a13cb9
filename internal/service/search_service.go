package service

import (
	"github.com/SohamNaik26/wealth-management/internal/search"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// SearchService answers free-text queries against the latest store
// snapshot. The index is rebuilt per query; with session-sized collections
// that is cheaper than keeping an incremental index consistent.
type SearchService struct {
	store *store.Store
}

// NewSearchService creates a new SearchService over the given store.
func NewSearchService(s *store.Store) *SearchService {
	return &SearchService{store: s}
}

// Search returns ranked matches for query across assets, portfolios, and goals.
func (s *SearchService) Search(query string) []search.Item {
	snap := s.store.Snapshot()
	index := search.NewIndex(search.Collect(snap.Assets, snap.Portfolios, snap.Goals))
	return index.Query(query)
}
