package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/SohamNaik26/wealth-management/internal/api/middleware"
	"github.com/SohamNaik26/wealth-management/internal/api/request"
	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/service"
	"github.com/SohamNaik26/wealth-management/internal/validation"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// PortfolioResponse represents a portfolio in API responses
type PortfolioResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TotalValue  float64 `json:"totalValue"`
	CreatedAt   string  `json:"createdAt"`
}

func toPortfolioResponse(p model.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TotalValue:  p.TotalValue,
		CreatedAt:   p.CreatedAt.Format(dateLayout),
	}
}

// Portfolios handles GET /api/portfolios
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, r *http.Request) {
	portfolios := h.portfolioService.List()

	response := make([]PortfolioResponse, len(portfolios))
	for i, p := range portfolios {
		response[i] = toPortfolioResponse(p)
	}

	respondJSON(w, http.StatusOK, response)
}

// Portfolio handles GET /api/portfolios/{portfolioId}
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	portfolio, err := h.portfolioService.Get(chi.URLParam(r, "portfolioId"))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve portfolio")
		return
	}

	respondJSON(w, http.StatusOK, toPortfolioResponse(portfolio))
}

// CreatePortfolio handles POST /api/portfolios. The bearer credential of
// the session is forwarded to the remote backend; on remote failure the
// store is left untouched and the error surfaces as a page banner.
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreatePortfolio(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	token := custommiddleware.TokenFromContext(r.Context())
	created, err := h.portfolioService.Create(r.Context(), token, model.Portfolio{
		Name:        req.Name,
		Description: req.Description,
		TotalValue:  req.TotalValue,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to create portfolio")
		return
	}

	respondJSON(w, http.StatusCreated, toPortfolioResponse(created))
}

// UpdatePortfolio handles PUT /api/portfolios/{portfolioId}
func (h *PortfolioHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdatePortfolio(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	token := custommiddleware.TokenFromContext(r.Context())
	updated, err := h.portfolioService.Update(r.Context(), token, chi.URLParam(r, "portfolioId"), service.PortfolioUpdate{
		Name:        req.Name,
		Description: req.Description,
		TotalValue:  req.TotalValue,
	})
	if err != nil {
		respondServiceError(w, err, "Failed to update portfolio")
		return
	}

	respondJSON(w, http.StatusOK, toPortfolioResponse(updated))
}

// DeletePortfolio handles DELETE /api/portfolios/{portfolioId}
func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	token := custommiddleware.TokenFromContext(r.Context())
	if err := h.portfolioService.Delete(r.Context(), token, chi.URLParam(r, "portfolioId")); err != nil {
		respondServiceError(w, err, "Failed to delete portfolio")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
