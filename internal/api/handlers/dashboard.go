package handlers

import (
	"net/http"
	"time"

	"github.com/SohamNaik26/wealth-management/internal/service"
)

// DashboardHandler serves the aggregate views backing the dashboard page
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// DistributionSliceResponse is one slice of the allocation pie chart
type DistributionSliceResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// GoalProgressResponse is one row of the goal progress chart. Progress is
// nil when the target amount is zero.
type GoalProgressResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CurrentAmount float64  `json:"current_amount"`
	TargetAmount  float64  `json:"target_amount"`
	Progress      *float64 `json:"progress"`
	TimeRemaining string   `json:"time_remaining"`
	Priority      string   `json:"priority"`
}

// SummaryResponse represents the dashboard summary
type SummaryResponse struct {
	TotalValue         float64                     `json:"totalValue"`
	AssetCount         int                         `json:"assetCount"`
	PortfolioCount     int                         `json:"portfolioCount"`
	GoalCount          int                         `json:"goalCount"`
	Distribution       []DistributionSliceResponse `json:"distribution"`
	Goals              []GoalProgressResponse      `json:"goals"`
	RecentTransactions []TransactionResponse       `json:"recentTransactions"`
}

// Summary handles GET /api/dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.dashboardService.Summary(time.Now())

	distribution := make([]DistributionSliceResponse, len(summary.Distribution))
	for i, bucket := range summary.Distribution {
		distribution[i] = DistributionSliceResponse{Label: bucket.Label, Value: bucket.Value}
	}

	goals := make([]GoalProgressResponse, len(summary.Goals))
	for i, row := range summary.Goals {
		goals[i] = GoalProgressResponse{
			ID:            row.ID,
			Name:          row.Name,
			CurrentAmount: row.CurrentAmount,
			TargetAmount:  row.TargetAmount,
			Progress:      row.Progress,
			TimeRemaining: row.TimeRemaining,
			Priority:      row.Priority,
		}
	}

	recent := make([]TransactionResponse, len(summary.RecentTransactions))
	for i, tx := range summary.RecentTransactions {
		recent[i] = toTransactionResponse(tx)
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		TotalValue:         summary.TotalValue,
		AssetCount:         summary.AssetCount,
		PortfolioCount:     summary.PortfolioCount,
		GoalCount:          summary.GoalCount,
		Distribution:       distribution,
		Goals:              goals,
		RecentTransactions: recent,
	})
}
