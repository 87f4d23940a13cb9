package validation

import (
	"strings"
	"time"

	"github.com/SohamNaik26/wealth-management/internal/api/request"
)

func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.AssetType) == "" {
		errors["asset_type"] = "asset type is required"
	}
	if req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.PurchasePrice < 0 {
		errors["purchase_price"] = "purchase price cannot be negative"
	}
	if req.CurrentPrice < 0 {
		errors["current_price"] = "current price cannot be negative"
	}
	if strings.TrimSpace(req.PortfolioID) == "" {
		errors["portfolio_id"] = "portfolio is required"
	}
	if strings.TrimSpace(req.PurchaseDate) == "" {
		errors["purchase_date"] = "purchase date is required"
	} else if _, err := time.Parse(DateLayout, req.PurchaseDate); err != nil {
		errors["purchase_date"] = "purchase date must use the YYYY-MM-DD format"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateAsset(req request.UpdateAssetRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.AssetType != nil && strings.TrimSpace(*req.AssetType) == "" {
		errors["asset_type"] = "asset type cannot be empty"
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.PurchasePrice != nil && *req.PurchasePrice < 0 {
		errors["purchase_price"] = "purchase price cannot be negative"
	}
	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		errors["current_price"] = "current price cannot be negative"
	}
	if req.PurchaseDate != nil {
		if _, err := time.Parse(DateLayout, *req.PurchaseDate); err != nil {
			errors["purchase_date"] = "purchase date must use the YYYY-MM-DD format"
		}
	}
	if req.PortfolioID != nil && strings.TrimSpace(*req.PortfolioID) == "" {
		errors["portfolio_id"] = "portfolio cannot be empty"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
