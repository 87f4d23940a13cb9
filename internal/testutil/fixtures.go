// Package testutil provides shared fixtures and helpers for tests.
package testutil

import (
	"time"

	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// Date builds a midnight-UTC time for fixture literals.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SamplePortfolio returns a portfolio fixture with sensible defaults.
func SamplePortfolio(id, name string) model.Portfolio {
	return model.Portfolio{
		ID:          id,
		Name:        name,
		Description: "Long-term holdings",
		TotalValue:  10000,
		CreatedAt:   Date(2024, time.January, 15),
	}
}

// SampleAsset returns an asset fixture with sensible defaults.
func SampleAsset(id, name, assetType string) model.Asset {
	return model.Asset{
		ID:            id,
		Name:          name,
		AssetType:     assetType,
		TickerSymbol:  "AAPL",
		Quantity:      10,
		PurchasePrice: 150,
		CurrentPrice:  175,
		PurchaseDate:  Date(2024, time.March, 1),
		PortfolioID:   "portfolio-1",
	}
}

// SampleGoal returns a goal fixture with sensible defaults.
func SampleGoal(id, name string) model.Goal {
	return model.Goal{
		ID:            id,
		Name:          name,
		Description:   "Emergency fund",
		TargetAmount:  5000,
		CurrentAmount: 2000,
		TargetDate:    Date(2027, time.June, 1),
		Priority:      model.PriorityHigh,
	}
}

// SampleTransaction returns a transaction fixture with sensible defaults.
func SampleTransaction(id, transactionType string, amount float64) model.Transaction {
	return model.Transaction{
		ID:              id,
		TransactionType: transactionType,
		Amount:          amount,
		Date:            Date(2024, time.May, 10),
		AssetID:         "asset-1",
		AssetName:       "Apple Inc.",
	}
}

// NewPopulatedStore returns a store loaded with one portfolio, two assets,
// one goal, and one transaction for tests that need a realistic state.
func NewPopulatedStore() *store.Store {
	st := store.New()
	st.ReplacePortfolios([]model.Portfolio{SamplePortfolio("portfolio-1", "Retirement")})
	st.ReplaceAssets([]model.Asset{
		SampleAsset("asset-1", "Apple Inc.", "Stock"),
		SampleAsset("asset-2", "Treasury Bond", "Bond"),
	})
	st.ReplaceGoals([]model.Goal{SampleGoal("goal-1", "Emergency Fund")})
	st.ReplaceTransactions([]model.Transaction{SampleTransaction("tx-1", model.TransactionPurchase, 1500)})
	return st
}
