package service

import (
	"testing"
	"time"

	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

func TestDashboardService_Summary(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	setup := func() *store.Store {
		st := store.New()
		st.ReplacePortfolios([]model.Portfolio{{ID: "p1", Name: "Retirement"}})
		st.ReplaceAssets([]model.Asset{
			{ID: "a1", Name: "Apple Inc.", AssetType: "Stock", Quantity: 10, PurchasePrice: 150, CurrentPrice: 175},
			{ID: "a2", Name: "Treasury Bond", AssetType: "Bond", Quantity: 5, PurchasePrice: 95, CurrentPrice: 100},
		})
		st.ReplaceGoals([]model.Goal{
			{ID: "g1", Name: "Emergency Fund", CurrentAmount: 2000, TargetAmount: 5000, TargetDate: now.AddDate(0, 0, 365*3), Priority: model.PriorityHigh},
			{ID: "g2", Name: "Unbounded", CurrentAmount: 100, TargetAmount: 0, TargetDate: now.AddDate(0, 0, 10), Priority: model.PriorityLow},
		})
		return st
	}

	t.Run("aggregates totals and counts", func(t *testing.T) {
		svc := NewDashboardService(setup())

		summary := svc.Summary(now)

		if summary.TotalValue != 2250 {
			t.Errorf("Expected total value 2250, got %v", summary.TotalValue)
		}
		if summary.AssetCount != 2 || summary.PortfolioCount != 1 || summary.GoalCount != 2 {
			t.Errorf("Expected counts 2/1/2, got %d/%d/%d", summary.AssetCount, summary.PortfolioCount, summary.GoalCount)
		}
	})

	t.Run("derives goal progress rows", func(t *testing.T) {
		svc := NewDashboardService(setup())

		summary := svc.Summary(now)

		if len(summary.Goals) != 2 {
			t.Fatalf("Expected 2 goal rows, got %d", len(summary.Goals))
		}

		first := summary.Goals[0]
		if first.Progress == nil || *first.Progress != 40 {
			t.Errorf("Expected progress 40, got %v", first.Progress)
		}
		if first.TimeRemaining != "3 yrs" {
			t.Errorf("Expected time remaining %q, got %q", "3 yrs", first.TimeRemaining)
		}

		if summary.Goals[1].Progress != nil {
			t.Errorf("Expected nil progress for zero target, got %v", *summary.Goals[1].Progress)
		}
	})

	t.Run("is idempotent for an unchanged store", func(t *testing.T) {
		svc := NewDashboardService(setup())

		a := svc.Summary(now)
		b := svc.Summary(now)

		if a.TotalValue != b.TotalValue || len(a.Distribution) != len(b.Distribution) {
			t.Errorf("Expected identical summaries, got %v and %v", a, b)
		}
	})

	t.Run("limits recent transactions to five", func(t *testing.T) {
		st := setup()
		st.UpdateTransactions(func(prev []model.Transaction) []model.Transaction {
			for i := 0; i < 7; i++ {
				prev = append(prev, model.Transaction{ID: string(rune('a' + i))})
			}
			return prev
		})
		svc := NewDashboardService(st)

		summary := svc.Summary(now)

		if len(summary.RecentTransactions) != 5 {
			t.Fatalf("Expected 5 recent transactions, got %d", len(summary.RecentTransactions))
		}
		if summary.RecentTransactions[0].ID != "g" {
			t.Errorf("Expected most recent first, got %q", summary.RecentTransactions[0].ID)
		}
	})
}
