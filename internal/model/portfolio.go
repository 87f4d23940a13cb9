package model

import "time"

// Portfolio represents a named grouping of assets owned by the user.
// Deleting a portfolio does not cascade to its assets; asset references
// to a deleted portfolio become dangling and are resolved at read time
// via the denormalized PortfolioName fallback.
type Portfolio struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalValue  float64   `json:"totalValue"`
	CreatedAt   time.Time `json:"createdAt"`
}
