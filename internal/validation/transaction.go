package validation

import (
	"strings"
	"time"

	"github.com/SohamNaik26/wealth-management/internal/api/request"
)

// Transaction types form an open set: known values get constants in the
// model package, but user-defined types are accepted as long as they are
// non-empty.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.TransactionType) == "" {
		errors["transaction_type"] = "transaction type is required"
	}
	if req.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}
	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse(DateLayout, req.Date); err != nil {
		errors["date"] = "date must use the YYYY-MM-DD format"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.TransactionType != nil && strings.TrimSpace(*req.TransactionType) == "" {
		errors["transaction_type"] = "transaction type cannot be empty"
	}
	if req.Amount != nil && *req.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}
	if req.Date != nil {
		if _, err := time.Parse(DateLayout, *req.Date); err != nil {
			errors["date"] = "date must use the YYYY-MM-DD format"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
