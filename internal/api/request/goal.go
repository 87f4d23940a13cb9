package request

// CreateGoalRequest represents the request body for creating a financial
// goal. TargetDate uses the YYYY-MM-DD layout.
type CreateGoalRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    string  `json:"target_date"`
	Priority      string  `json:"priority"`
}

// UpdateGoalRequest represents a partial goal edit. Omitted fields are left
// unchanged.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty"`
	CurrentAmount *float64 `json:"current_amount,omitempty"`
	TargetDate    *string  `json:"target_date,omitempty"`
	Priority      *string  `json:"priority,omitempty"`
}
