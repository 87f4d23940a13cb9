package request

// CreateSessionRequest represents the request body for minting a session token.
type CreateSessionRequest struct {
	User string `json:"user"`
}
