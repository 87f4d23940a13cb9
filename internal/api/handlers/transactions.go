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

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID              string  `json:"id"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Date            string  `json:"date"`
	AssetID         string  `json:"asset_id,omitempty"`
	AssetName       string  `json:"asset_name,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

func toTransactionResponse(tx model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		TransactionType: tx.TransactionType,
		Amount:          tx.Amount,
		Date:            tx.Date.Format(dateLayout),
		AssetID:         tx.AssetID,
		AssetName:       tx.AssetName,
		Notes:           tx.Notes,
	}
}

// Transactions handles GET /api/transactions
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	transactions := h.transactionService.List()

	response := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		response[i] = toTransactionResponse(tx)
	}

	respondJSON(w, http.StatusOK, response)
}

// Transaction handles GET /api/transactions/{transactionId}
func (h *TransactionHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.transactionService.Get(chi.URLParam(r, "transactionId"))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve transaction")
		return
	}

	respondJSON(w, http.StatusOK, toTransactionResponse(tx))
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	// Already validated against the date layout
	date, _ := time.Parse(dateLayout, req.Date)

	created := h.transactionService.Create(model.Transaction{
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Date:            date,
		AssetID:         req.AssetID,
		AssetName:       req.AssetName,
		Notes:           req.Notes,
	})

	respondJSON(w, http.StatusCreated, toTransactionResponse(created))
}

// UpdateTransaction handles PUT /api/transactions/{transactionId}
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	update := service.TransactionUpdate{
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		AssetID:         req.AssetID,
		AssetName:       req.AssetName,
		Notes:           req.Notes,
	}
	if req.Date != nil {
		// Already validated against the date layout
		date, _ := time.Parse(dateLayout, *req.Date)
		update.Date = &date
	}

	updated, err := h.transactionService.Update(chi.URLParam(r, "transactionId"), update)
	if err != nil {
		respondServiceError(w, err, "Failed to update transaction")
		return
	}

	respondJSON(w, http.StatusOK, toTransactionResponse(updated))
}

// DeleteTransaction handles DELETE /api/transactions/{transactionId}
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.transactionService.Delete(chi.URLParam(r, "transactionId")); err != nil {
		respondServiceError(w, err, "Failed to delete transaction")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
