package model

import "time"

// Well-known transaction types. The set is open: user-supplied types
// outside this list are accepted as-is.
const (
	TransactionPurchase = "Purchase"
	TransactionSale     = "Sale"
	TransactionDividend = "Dividend"
	TransactionIncome   = "Income"
	TransactionDeposit  = "Deposit"
)

// Transaction represents a single money movement. The collection is
// insertion-ordered; "recent" views rely on that order rather than on Date.
// AssetName is a denormalized display copy resolved at read time while the
// referenced asset exists.
type Transaction struct {
	ID              string    `json:"id"`
	TransactionType string    `json:"transaction_type"`
	Amount          float64   `json:"amount"`
	Date            time.Time `json:"date"`
	AssetID         string    `json:"asset_id,omitempty"`
	AssetName       string    `json:"asset_name,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}
