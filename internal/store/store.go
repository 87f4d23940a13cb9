// Package store holds the in-memory session state: the four entity
// collections every page of the dashboard reads from and writes to.
// Collections are insertion-ordered slices; every mutation is a total
// replacement of the underlying collection, either with a new slice or
// with the result of a reducer-style update function applied to a copy
// of the previous one.
package store

import (
	"sync"

	"github.com/SohamNaik26/wealth-management/internal/model"
)

// Store is the single owner of all entity collections for the session.
// It is injected explicitly at application root; consumers hold a
// reference and never reach for ambient state.
type Store struct {
	mu           sync.RWMutex
	portfolios   []model.Portfolio
	assets       []model.Asset
	transactions []model.Transaction
	goals        []model.Goal
	version      uint64
}

// New creates a Store with all collections empty.
func New() *Store {
	return &Store{}
}

// Snapshot is a point-in-time copy of every collection. Mutating a
// snapshot never affects the store.
type Snapshot struct {
	Portfolios   []model.Portfolio
	Assets       []model.Asset
	Transactions []model.Transaction
	Goals        []model.Goal
	Version      uint64
}

// Snapshot returns copies of all four collections under a single read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Portfolios:   clone(s.portfolios),
		Assets:       clone(s.assets),
		Transactions: clone(s.transactions),
		Goals:        clone(s.goals),
		Version:      s.version,
	}
}

// Version returns a counter that increases on every mutation. Consumers
// that cache derived values can compare versions to detect staleness,
// though the dashboard recomputes on every read.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Portfolios returns a copy of the portfolio collection in insertion order.
func (s *Store) Portfolios() []model.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.portfolios)
}

// ReplacePortfolios swaps in a full replacement collection.
func (s *Store) ReplacePortfolios(portfolios []model.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolios = clone(portfolios)
	s.version++
}

// UpdatePortfolios applies fn to a copy of the previous collection and
// stores the result. fn must be pure; it must not retain its argument.
func (s *Store) UpdatePortfolios(fn func(prev []model.Portfolio) []model.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolios = fn(clone(s.portfolios))
	s.version++
}

// Assets returns a copy of the asset collection in insertion order.
func (s *Store) Assets() []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.assets)
}

// ReplaceAssets swaps in a full replacement collection.
func (s *Store) ReplaceAssets(assets []model.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = clone(assets)
	s.version++
}

// UpdateAssets applies fn to a copy of the previous collection and stores
// the result.
func (s *Store) UpdateAssets(fn func(prev []model.Asset) []model.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = fn(clone(s.assets))
	s.version++
}

// Transactions returns a copy of the transaction collection in insertion order.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.transactions)
}

// ReplaceTransactions swaps in a full replacement collection.
func (s *Store) ReplaceTransactions(transactions []model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = clone(transactions)
	s.version++
}

// UpdateTransactions applies fn to a copy of the previous collection and
// stores the result.
func (s *Store) UpdateTransactions(fn func(prev []model.Transaction) []model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = fn(clone(s.transactions))
	s.version++
}

// Goals returns a copy of the goal collection in insertion order.
func (s *Store) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.goals)
}

// ReplaceGoals swaps in a full replacement collection.
func (s *Store) ReplaceGoals(goals []model.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = clone(goals)
	s.version++
}

// UpdateGoals applies fn to a copy of the previous collection and stores
// the result.
func (s *Store) UpdateGoals(fn func(prev []model.Goal) []model.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = fn(clone(s.goals))
	s.version++
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
