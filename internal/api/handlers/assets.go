package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SohamNaik26/wealth-management/internal/api/request"
	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/service"
	"github.com/SohamNaik26/wealth-management/internal/validation"
)

// AssetHandler handles asset-related HTTP requests
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// AssetResponse represents an asset in API responses. TotalValue is the
// derived market value; GainLossPercent is nil when the purchase price is
// zero and the percentage is undefined.
type AssetResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AssetType       string   `json:"asset_type"`
	TickerSymbol    string   `json:"ticker_symbol,omitempty"`
	Quantity        float64  `json:"quantity"`
	PurchasePrice   float64  `json:"purchase_price"`
	CurrentPrice    float64  `json:"current_price"`
	PurchaseDate    string   `json:"purchase_date"`
	PortfolioID     string   `json:"portfolio_id"`
	PortfolioName   string   `json:"portfolio_name,omitempty"`
	TotalValue      float64  `json:"total_value"`
	GainLossPercent *float64 `json:"gain_loss_percent"`
}

func toAssetResponse(a model.Asset) AssetResponse {
	resp := AssetResponse{
		ID:            a.ID,
		Name:          a.Name,
		AssetType:     a.AssetType,
		TickerSymbol:  a.TickerSymbol,
		Quantity:      a.Quantity,
		PurchasePrice: a.PurchasePrice,
		CurrentPrice:  a.CurrentPrice,
		PurchaseDate:  a.PurchaseDate.Format(dateLayout),
		PortfolioID:   a.PortfolioID,
		PortfolioName: a.PortfolioName,
		TotalValue:    a.MarketValue(),
	}
	if percent, ok := service.GainLossPercent(a.PurchasePrice, a.CurrentPrice); ok {
		resp.GainLossPercent = &percent
	}
	return resp
}

// Assets handles GET /api/assets
func (h *AssetHandler) Assets(w http.ResponseWriter, r *http.Request) {
	assets := h.assetService.List()

	response := make([]AssetResponse, len(assets))
	for i, a := range assets {
		response[i] = toAssetResponse(a)
	}

	respondJSON(w, http.StatusOK, response)
}

// Asset handles GET /api/assets/{assetId}
func (h *AssetHandler) Asset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.assetService.Get(chi.URLParam(r, "assetId"))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve asset")
		return
	}

	respondJSON(w, http.StatusOK, toAssetResponse(asset))
}

// CreateAsset handles POST /api/assets
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreateAsset(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	// Already validated against the date layout
	purchaseDate, _ := time.Parse(dateLayout, req.PurchaseDate)

	created := h.assetService.Create(model.Asset{
		Name:          req.Name,
		AssetType:     req.AssetType,
		TickerSymbol:  req.TickerSymbol,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
		PurchaseDate:  purchaseDate,
		PortfolioID:   req.PortfolioID,
		PortfolioName: req.PortfolioName,
	})

	respondJSON(w, http.StatusCreated, toAssetResponse(created))
}

// UpdateAsset handles PUT /api/assets/{assetId}
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateAsset(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	update := service.AssetUpdate{
		Name:          req.Name,
		AssetType:     req.AssetType,
		TickerSymbol:  req.TickerSymbol,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
		PortfolioID:   req.PortfolioID,
		PortfolioName: req.PortfolioName,
	}
	if req.PurchaseDate != nil {
		// Already validated against the date layout
		purchaseDate, _ := time.Parse(dateLayout, *req.PurchaseDate)
		update.PurchaseDate = &purchaseDate
	}

	updated, err := h.assetService.Update(chi.URLParam(r, "assetId"), update)
	if err != nil {
		respondServiceError(w, err, "Failed to update asset")
		return
	}

	respondJSON(w, http.StatusOK, toAssetResponse(updated))
}

// DeleteAsset handles DELETE /api/assets/{assetId}
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := h.assetService.Delete(chi.URLParam(r, "assetId")); err != nil {
		respondServiceError(w, err, "Failed to delete asset")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
