package store

import (
	"time"

	"github.com/SohamNaik26/wealth-management/internal/model"
)

// SeedDemoTransactions lazily populates the transaction collection with
// sample data when it is empty. Other collections are never seeded.
func SeedDemoTransactions(s *Store) {
	s.UpdateTransactions(func(prev []model.Transaction) []model.Transaction {
		if len(prev) > 0 {
			return prev
		}
		return demoTransactions()
	})
}

func demoTransactions() []model.Transaction {
	date := func(value string) time.Time {
		d, _ := time.Parse("2006-01-02", value)
		return d
	}
	return []model.Transaction{
		{
			ID:              "1",
			TransactionType: model.TransactionPurchase,
			Amount:          6793.50,
			Date:            date("2023-04-15"),
			AssetID:         "1",
			AssetName:       "Apple Inc.",
			Notes:           "Initial purchase of 50 shares",
		},
		{
			ID:              "2",
			TransactionType: model.TransactionPurchase,
			Amount:          7605.00,
			Date:            date("2023-03-10"),
			AssetID:         "2",
			AssetName:       "S&P 500 ETF",
			Notes:           "Monthly retirement contribution",
		},
		{
			ID:              "3",
			TransactionType: model.TransactionDividend,
			Amount:          320.75,
			Date:            date("2023-06-30"),
			AssetID:         "2",
			AssetName:       "S&P 500 ETF",
			Notes:           "Quarterly dividend payment",
		},
		{
			ID:              "4",
			TransactionType: model.TransactionSale,
			Amount:          2500.00,
			Date:            date("2023-05-22"),
			AssetID:         "1",
			AssetName:       "Apple Inc.",
			Notes:           "Partial sale of 15 shares",
		},
		{
			ID:              "5",
			TransactionType: model.TransactionIncome,
			Amount:          1200.00,
			Date:            date("2023-07-01"),
			AssetID:         "3",
			AssetName:       "Rental Property",
			Notes:           "Monthly rental income",
		},
	}
}
