package request

// CreatePortfolioRequest represents the request body for creating a portfolio
type CreatePortfolioRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TotalValue  float64 `json:"totalValue"`
}

// UpdatePortfolioRequest represents a partial portfolio edit. Omitted
// fields are left unchanged.
type UpdatePortfolioRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	TotalValue  *float64 `json:"totalValue,omitempty"`
}
