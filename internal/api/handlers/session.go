package handlers

import (
	"net/http"
	"strings"

	"github.com/SohamNaik26/wealth-management/internal/api/request"
	"github.com/SohamNaik26/wealth-management/internal/auth"
)

// SessionHandler mints the bearer tokens gating portfolio mutations
type SessionHandler struct {
	tokens *auth.TokenService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(tokens *auth.TokenService) *SessionHandler {
	return &SessionHandler{
		tokens: tokens,
	}
}

// SessionResponse carries the minted token back to the client
type SessionResponse struct {
	Token string `json:"token"`
	User  string `json:"user"`
}

// CreateSession handles POST /api/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := strings.TrimSpace(req.User)
	if user == "" {
		respondFieldErrors(w, map[string]string{
			"user": "user is required",
		})
		return
	}

	token, err := h.tokens.Mint(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create session", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, SessionResponse{Token: token, User: user})
}
