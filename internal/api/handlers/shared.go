package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SohamNaik26/wealth-management/internal/api/response"
	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
	"github.com/SohamNaik26/wealth-management/internal/validation"
)

// dateLayout is the wire format for calendar dates in responses.
const dateLayout = "2006-01-02"

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}

func respondError(w http.ResponseWriter, status int, message, details string) {
	response.RespondError(w, status, message, details)
}

func respondFieldErrors(w http.ResponseWriter, fields map[string]string) {
	response.RespondFieldErrors(w, fields)
}

// decodeJSON decodes the request body into dst, responding 400 on failure.
// Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// respondServiceError maps service-layer errors onto HTTP statuses:
// validation failures are 400 with the field map, missing entities 404,
// remote backend failures 502, anything else 500.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		respondFieldErrors(w, validationErr.Fields)
	case errors.Is(err, apperrors.ErrPortfolioNotFound),
		errors.Is(err, apperrors.ErrAssetNotFound),
		errors.Is(err, apperrors.ErrTransactionNotFound),
		errors.Is(err, apperrors.ErrGoalNotFound):
		respondError(w, http.StatusNotFound, message, err.Error())
	case errors.Is(err, apperrors.ErrRemoteUnavailable):
		respondError(w, http.StatusBadGateway, message, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, message, err.Error())
	}
}
