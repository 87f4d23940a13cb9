// Package simulator emulates live market movement: a recurring job
// perturbs the current price of whitelisted tickers in the session store.
package simulator

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// PriceSimulator replaces the asset collection on a fixed interval,
// nudging whitelisted current prices by a pseudo-random delta in
// [-1.0, +1.0] rounded to two decimal places. Assets outside the
// whitelist pass through unchanged.
type PriceSimulator struct {
	store     *store.Store
	interval  time.Duration
	whitelist map[string]struct{}
	rng       *rand.Rand

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// New creates a PriceSimulator over the given store. tickers is the fixed
// whitelist of symbols eligible for price movement.
func New(s *store.Store, interval time.Duration, tickers []string) *PriceSimulator {
	whitelist := make(map[string]struct{}, len(tickers))
	for _, t := range tickers {
		whitelist[t] = struct{}{}
	}
	return &PriceSimulator{
		store:     s,
		interval:  interval,
		whitelist: whitelist,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start schedules the recurring price update. Calling Start on a running
// simulator is a no-op.
func (s *PriceSimulator) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), s.Tick); err != nil {
		return fmt.Errorf("failed to schedule price updates: %w", err)
	}
	c.Start()

	s.cron = c
	s.running = true
	log.Printf("Price simulator started (every %s, %d tickers)", s.interval, len(s.whitelist))
	return nil
}

// Stop cancels the recurring update. The registration is released exactly
// once; further calls are no-ops, so Stop is safe to defer unconditionally.
func (s *PriceSimulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = nil
	s.running = false
	log.Println("Price simulator stopped")
}

// Tick performs one price update pass. It is exported so tests can fire
// updates deterministically without waiting on the schedule.
func (s *PriceSimulator) Tick() {
	s.store.UpdateAssets(func(prev []model.Asset) []model.Asset {
		for i := range prev {
			if _, ok := s.whitelist[prev[i].TickerSymbol]; !ok {
				continue
			}
			delta := (s.rng.Float64() - 0.5) * 2
			price := math.Round((prev[i].CurrentPrice+delta)*100) / 100
			prev[i].CurrentPrice = math.Max(0, price)
		}
		return prev
	})
}
