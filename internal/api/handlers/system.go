package handlers

import (
	"net/http"

	"github.com/SohamNaik26/wealth-management/internal/store"
)

// Version is the application version
const Version = "1.0.0"

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	store *store.Store
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(st *store.Store) *SystemHandler {
	return &SystemHandler{
		store: st,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string `json:"status"`
	StateVersion uint64 `json:"state_version"`
}

// Health handles GET /api/system/health. The state version is the store's
// mutation counter, so consecutive calls reveal whether live updates are
// flowing.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		StateVersion: h.store.Version(),
	})
}

// VersionResponse represents the version information response
type VersionResponse struct {
	Version string `json:"version"`
}

// SystemVersion handles GET /api/system/version
func (h *SystemHandler) SystemVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{Version: Version})
}
