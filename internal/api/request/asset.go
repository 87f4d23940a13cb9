package request

// CreateAssetRequest represents the request body for creating an asset.
// PurchaseDate uses the YYYY-MM-DD layout.
type CreateAssetRequest struct {
	Name          string  `json:"name"`
	AssetType     string  `json:"asset_type"`
	TickerSymbol  string  `json:"ticker_symbol,omitempty"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
	PurchaseDate  string  `json:"purchase_date"`
	PortfolioID   string  `json:"portfolio_id"`
	PortfolioName string  `json:"portfolio_name,omitempty"`
}

// UpdateAssetRequest represents a partial asset edit. Omitted fields are
// left unchanged.
type UpdateAssetRequest struct {
	Name          *string  `json:"name,omitempty"`
	AssetType     *string  `json:"asset_type,omitempty"`
	TickerSymbol  *string  `json:"ticker_symbol,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	CurrentPrice  *float64 `json:"current_price,omitempty"`
	PurchaseDate  *string  `json:"purchase_date,omitempty"`
	PortfolioID   *string  `json:"portfolio_id,omitempty"`
	PortfolioName *string  `json:"portfolio_name,omitempty"`
}
