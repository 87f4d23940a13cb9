package validation

import (
	"strings"
	"time"

	"github.com/SohamNaik26/wealth-management/internal/api/request"
	"github.com/SohamNaik26/wealth-management/internal/model"
)

func validPriority(priority string) bool {
	switch priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return true
	}
	return false
}

func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.TargetAmount <= 0 {
		errors["target_amount"] = "target amount must be greater than zero"
	}
	if req.CurrentAmount < 0 {
		errors["current_amount"] = "current amount cannot be negative"
	}
	if !validPriority(req.Priority) {
		errors["priority"] = "priority must be Low, Medium, or High"
	}
	if strings.TrimSpace(req.TargetDate) == "" {
		errors["target_date"] = "target date is required"
	} else if _, err := time.Parse(DateLayout, req.TargetDate); err != nil {
		errors["target_date"] = "target date must use the YYYY-MM-DD format"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.TargetAmount != nil && *req.TargetAmount <= 0 {
		errors["target_amount"] = "target amount must be greater than zero"
	}
	if req.CurrentAmount != nil && *req.CurrentAmount < 0 {
		errors["current_amount"] = "current amount cannot be negative"
	}
	if req.Priority != nil && !validPriority(*req.Priority) {
		errors["priority"] = "priority must be Low, Medium, or High"
	}
	if req.TargetDate != nil {
		if _, err := time.Parse(DateLayout, *req.TargetDate); err != nil {
			errors["target_date"] = "target date must use the YYYY-MM-DD format"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
