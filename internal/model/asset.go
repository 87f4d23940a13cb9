package model

import "time"

// Asset represents a holding tracked by the dashboard.
// CurrentPrice is mutated by the price simulator for whitelisted tickers.
// PortfolioName is a denormalized display copy; the authoritative name is
// resolved from the referenced portfolio when it still exists.
type Asset struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AssetType     string    `json:"asset_type"`
	TickerSymbol  string    `json:"ticker_symbol,omitempty"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentPrice  float64   `json:"current_price"`
	PurchaseDate  time.Time `json:"purchase_date"`
	PortfolioID   string    `json:"portfolio_id"`
	PortfolioName string    `json:"portfolio_name,omitempty"`
}

// MarketValue returns the current market value of the holding.
func (a Asset) MarketValue() float64 {
	return a.Quantity * a.CurrentPrice
}
