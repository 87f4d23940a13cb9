package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/service"
	"github.com/SohamNaik26/wealth-management/internal/store"
	"github.com/SohamNaik26/wealth-management/internal/testutil"
)

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	setupHandler := func() (*TransactionHandler, *store.Store) {
		st := store.New()
		st.ReplaceTransactions([]model.Transaction{testutil.SampleTransaction("tx-1", model.TransactionPurchase, 1500)})
		return NewTransactionHandler(service.NewTransactionService(st)), st
	}

	t.Run("merges a submitted date", func(t *testing.T) {
		handler, st := setupHandler()

		body := map[string]interface{}{"date": "2030-01-01", "amount": 100}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/transactions/tx-1", body, map[string]string{"transactionId": "tx-1"})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response TransactionResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Date != "2030-01-01" {
			t.Errorf("Expected date 2030-01-01, got %q", response.Date)
		}
		if response.Amount != 100 {
			t.Errorf("Expected amount 100, got %v", response.Amount)
		}

		stored := st.Transactions()[0]
		if stored.Date.Format(dateLayout) != "2030-01-01" {
			t.Errorf("Expected stored date 2030-01-01, got %s", stored.Date.Format(dateLayout))
		}
	})

	t.Run("leaves the date untouched when absent", func(t *testing.T) {
		handler, st := setupHandler()

		body := map[string]interface{}{"notes": "rebalanced"}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/transactions/tx-1", body, map[string]string{"transactionId": "tx-1"})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		stored := st.Transactions()[0]
		if stored.Date.Format(dateLayout) != "2024-05-10" {
			t.Errorf("Expected original date 2024-05-10, got %s", stored.Date.Format(dateLayout))
		}
		if stored.Notes != "rebalanced" {
			t.Errorf("Expected merged notes, got %q", stored.Notes)
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		handler, st := setupHandler()

		body := map[string]interface{}{"date": "01/01/2030"}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/transactions/tx-1", body, map[string]string{"transactionId": "tx-1"})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}

		stored := st.Transactions()[0]
		if stored.Date.Format(dateLayout) != "2024-05-10" {
			t.Errorf("Expected date unchanged after rejection, got %s", stored.Date.Format(dateLayout))
		}
	})

	t.Run("returns 404 for a missing transaction", func(t *testing.T) {
		handler, _ := setupHandler()

		body := map[string]interface{}{"amount": 100}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/transactions/missing", body, map[string]string{"transactionId": "missing"})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
