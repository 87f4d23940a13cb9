package validation

import (
	"errors"
	"testing"

	"github.com/SohamNaik26/wealth-management/internal/api/request"
	"github.com/SohamNaik26/wealth-management/internal/model"
)

func fieldError(t *testing.T, err error, field string) string {
	t.Helper()
	var validationErr *Error
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	msg, ok := validationErr.Fields[field]
	if !ok {
		t.Fatalf("Expected error for field %q, got %v", field, validationErr.Fields)
	}
	return msg
}

func TestValidateCreatePortfolio(t *testing.T) {
	t.Run("accepts a minimal valid request", func(t *testing.T) {
		err := ValidateCreatePortfolio(request.CreatePortfolioRequest{Name: "Retirement"})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		err := ValidateCreatePortfolio(request.CreatePortfolioRequest{Name: "  "})
		fieldError(t, err, "name")
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'x'
		}
		err := ValidateCreatePortfolio(request.CreatePortfolioRequest{Name: string(long)})
		fieldError(t, err, "name")
	})

	t.Run("rejects negative total value", func(t *testing.T) {
		err := ValidateCreatePortfolio(request.CreatePortfolioRequest{Name: "Retirement", TotalValue: -1})
		fieldError(t, err, "totalValue")
	})
}

func TestValidateUpdatePortfolio(t *testing.T) {
	t.Run("ignores absent fields", func(t *testing.T) {
		if err := ValidateUpdatePortfolio(request.UpdatePortfolioRequest{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects provided empty name", func(t *testing.T) {
		empty := ""
		err := ValidateUpdatePortfolio(request.UpdatePortfolioRequest{Name: &empty})
		fieldError(t, err, "name")
	})
}

func TestValidateCreateGoal(t *testing.T) {
	valid := request.CreateGoalRequest{
		Name:         "Emergency Fund",
		TargetAmount: 5000,
		TargetDate:   "2027-06-01",
		Priority:     model.PriorityHigh,
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := ValidateCreateGoal(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects zero target amount", func(t *testing.T) {
		req := valid
		req.TargetAmount = 0
		fieldError(t, ValidateCreateGoal(req), "target_amount")
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		req := valid
		req.Priority = "Urgent"
		fieldError(t, ValidateCreateGoal(req), "priority")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		req := valid
		req.TargetDate = "01/06/2027"
		fieldError(t, ValidateCreateGoal(req), "target_date")
	})
}

func TestValidateCreateTransaction(t *testing.T) {
	t.Run("accepts user-defined transaction types", func(t *testing.T) {
		err := ValidateCreateTransaction(request.CreateTransactionRequest{
			TransactionType: "Gift",
			Amount:          100,
			Date:            "2026-05-10",
		})
		if err != nil {
			t.Errorf("Expected open type set, got %v", err)
		}
	})

	t.Run("rejects empty type", func(t *testing.T) {
		err := ValidateCreateTransaction(request.CreateTransactionRequest{Amount: 100, Date: "2026-05-10"})
		fieldError(t, err, "transaction_type")
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		err := ValidateCreateTransaction(request.CreateTransactionRequest{
			TransactionType: model.TransactionPurchase,
			Amount:          -5,
			Date:            "2026-05-10",
		})
		fieldError(t, err, "amount")
	})
}

func TestValidateUpdateTransaction(t *testing.T) {
	t.Run("accepts a provided date", func(t *testing.T) {
		date := "2030-01-01"
		if err := ValidateUpdateTransaction(request.UpdateTransactionRequest{Date: &date}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		date := "01/01/2030"
		err := ValidateUpdateTransaction(request.UpdateTransactionRequest{Date: &date})
		fieldError(t, err, "date")
	})
}

func TestValidateUpdateAsset(t *testing.T) {
	t.Run("accepts a provided purchase date", func(t *testing.T) {
		date := "2023-11-20"
		if err := ValidateUpdateAsset(request.UpdateAssetRequest{PurchaseDate: &date}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a malformed purchase date", func(t *testing.T) {
		date := "20-11-2023"
		err := ValidateUpdateAsset(request.UpdateAssetRequest{PurchaseDate: &date})
		fieldError(t, err, "purchase_date")
	})
}

func TestValidateUUID(t *testing.T) {
	t.Run("accepts a canonical UUID", func(t *testing.T) {
		if err := ValidateUUID("d9f1b5a0-1c2d-4e3f-8a9b-0c1d2e3f4a5b"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a non-UUID", func(t *testing.T) {
		if err := ValidateUUID("1"); !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("Expected ErrInvalidUUID, got %v", err)
		}
	})
}
