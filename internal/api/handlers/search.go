package handlers

import (
	"net/http"

	"github.com/SohamNaik26/wealth-management/internal/service"
)

// SearchHandler serves the smart search bar
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search handles GET /api/search?q=. An empty query returns an empty
// result set, never the full collection.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results := h.searchService.Search(r.URL.Query().Get("q"))
	respondJSON(w, http.StatusOK, results)
}
