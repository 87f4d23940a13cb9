package simulator

import (
	"math"
	"testing"
	"time"

	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

func setupStore() *store.Store {
	st := store.New()
	st.ReplaceAssets([]model.Asset{
		{ID: "a1", Name: "Apple Inc.", TickerSymbol: "AAPL", CurrentPrice: 175},
		{ID: "a2", Name: "Reliance", TickerSymbol: "RELIANCE.NS", CurrentPrice: 2800},
		{ID: "a3", Name: "Rental Property", TickerSymbol: "", CurrentPrice: 250000},
		{ID: "a4", Name: "Obscure Fund", TickerSymbol: "XYZ", CurrentPrice: 42},
	})
	return st
}

func TestPriceSimulator_Tick(t *testing.T) {
	tickers := []string{"AAPL", "RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS"}

	t.Run("only whitelisted tickers move", func(t *testing.T) {
		st := setupStore()
		sim := New(st, time.Second, tickers)

		// Run enough passes that a whitelisted price moving is
		// overwhelmingly likely despite the random delta.
		for i := 0; i < 50; i++ {
			sim.Tick()
		}

		assets := st.Assets()
		if assets[2].CurrentPrice != 250000 {
			t.Errorf("Expected unlisted asset untouched, got %v", assets[2].CurrentPrice)
		}
		if assets[3].CurrentPrice != 42 {
			t.Errorf("Expected non-whitelisted ticker untouched, got %v", assets[3].CurrentPrice)
		}
		if assets[0].CurrentPrice == 175 && assets[1].CurrentPrice == 2800 {
			t.Error("Expected whitelisted prices to move after 50 ticks")
		}
	})

	t.Run("prices stay rounded to two decimals", func(t *testing.T) {
		st := setupStore()
		sim := New(st, time.Second, tickers)

		for i := 0; i < 20; i++ {
			sim.Tick()
		}

		for _, a := range st.Assets() {
			cents := a.CurrentPrice * 100
			if math.Abs(cents-math.Round(cents)) > 1e-9 {
				t.Errorf("Expected 2-decimal price for %s, got %v", a.ID, a.CurrentPrice)
			}
		}
	})

	t.Run("each pass moves a price by at most one unit", func(t *testing.T) {
		st := setupStore()
		sim := New(st, time.Second, tickers)

		before := st.Assets()[0].CurrentPrice
		sim.Tick()
		after := st.Assets()[0].CurrentPrice

		if math.Abs(after-before) > 1.0 {
			t.Errorf("Expected delta within [-1, 1], got %v", after-before)
		}
	})

	t.Run("prices never go negative", func(t *testing.T) {
		st := store.New()
		st.ReplaceAssets([]model.Asset{
			{ID: "a1", TickerSymbol: "AAPL", CurrentPrice: 0.01},
		})
		sim := New(st, time.Second, tickers)

		for i := 0; i < 100; i++ {
			sim.Tick()
		}

		if price := st.Assets()[0].CurrentPrice; price < 0 {
			t.Errorf("Expected non-negative price, got %v", price)
		}
	})

	t.Run("tick bumps the store version", func(t *testing.T) {
		st := setupStore()
		sim := New(st, time.Second, tickers)

		before := st.Version()
		sim.Tick()

		if st.Version() != before+1 {
			t.Errorf("Expected version %d, got %d", before+1, st.Version())
		}
	})
}

func TestPriceSimulator_StartStop(t *testing.T) {
	t.Run("start is idempotent", func(t *testing.T) {
		sim := New(setupStore(), time.Hour, nil)
		defer sim.Stop()

		if err := sim.Start(); err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if err := sim.Start(); err != nil {
			t.Fatalf("Second Start failed: %v", err)
		}
	})

	t.Run("stop is safe to call repeatedly", func(t *testing.T) {
		sim := New(setupStore(), time.Hour, nil)

		if err := sim.Start(); err != nil {
			t.Fatalf("Start failed: %v", err)
		}

		sim.Stop()
		sim.Stop()
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		sim := New(setupStore(), time.Hour, nil)
		sim.Stop()
	})
}
