package request

// CreateTransactionRequest represents the request body for recording a
// transaction. Date uses the YYYY-MM-DD layout.
type CreateTransactionRequest struct {
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Date            string  `json:"date"`
	AssetID         string  `json:"asset_id,omitempty"`
	AssetName       string  `json:"asset_name,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents a partial transaction edit. Omitted
// fields are left unchanged.
type UpdateTransactionRequest struct {
	TransactionType *string  `json:"transaction_type,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Date            *string  `json:"date,omitempty"`
	AssetID         *string  `json:"asset_id,omitempty"`
	AssetName       *string  `json:"asset_name,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}
