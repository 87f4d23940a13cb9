package service

import (
	"time"

	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// DashboardService computes the aggregate views backing the dashboard page.
// It holds no state of its own; every call derives from a fresh store
// snapshot.
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new DashboardService over the given store.
func NewDashboardService(s *store.Store) *DashboardService {
	return &DashboardService{store: s}
}

// GoalProgressRow is one row of the goal progress chart. Progress is nil
// when the target amount is zero and the percentage is undefined.
type GoalProgressRow struct {
	ID            string
	Name          string
	CurrentAmount float64
	TargetAmount  float64
	Progress      *float64
	TimeRemaining string
	Priority      string
}

// Summary aggregates everything the dashboard renders in one pass.
type Summary struct {
	TotalValue         float64
	AssetCount         int
	PortfolioCount     int
	GoalCount          int
	Distribution       []TypeBucket
	Goals              []GoalProgressRow
	RecentTransactions []model.Transaction
}

// Summary derives the dashboard aggregate view as of now.
func (s *DashboardService) Summary(now time.Time) Summary {
	snap := s.store.Snapshot()

	goals := make([]GoalProgressRow, len(snap.Goals))
	for i, g := range snap.Goals {
		row := GoalProgressRow{
			ID:            g.ID,
			Name:          g.Name,
			CurrentAmount: g.CurrentAmount,
			TargetAmount:  g.TargetAmount,
			TimeRemaining: TimeRemaining(now, g.TargetDate),
			Priority:      g.Priority,
		}
		if progress, ok := GoalProgress(g.CurrentAmount, g.TargetAmount); ok {
			row.Progress = &progress
		}
		goals[i] = row
	}

	return Summary{
		TotalValue:         round2(TotalValue(snap.Assets)),
		AssetCount:         len(snap.Assets),
		PortfolioCount:     len(snap.Portfolios),
		GoalCount:          len(snap.Goals),
		Distribution:       TypeDistribution(snap.Assets),
		Goals:              goals,
		RecentTransactions: RecentTransactions(snap.Transactions, RecentTransactionLimit),
	}
}
