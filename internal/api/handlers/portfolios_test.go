package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/remote"
	"github.com/SohamNaik26/wealth-management/internal/service"
	"github.com/SohamNaik26/wealth-management/internal/store"
	"github.com/SohamNaik26/wealth-management/internal/testutil"
)

func TestPortfolioHandler_Portfolios(t *testing.T) {
	t.Run("returns empty array when no portfolios exist", func(t *testing.T) {
		handler := NewPortfolioHandler(service.NewPortfolioService(store.New(), nil))

		req := httptest.NewRequest(http.MethodGet, "/api/portfolios", nil)
		w := httptest.NewRecorder()

		handler.Portfolios(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []PortfolioResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response == nil {
			t.Error("Expected non-nil array, got nil")
		}
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d portfolios", len(response))
		}
	})
}

func TestPortfolioHandler_CreatePortfolio(t *testing.T) {
	t.Run("creates a portfolio without a remote backend", func(t *testing.T) {
		st := store.New()
		handler := NewPortfolioHandler(service.NewPortfolioService(st, nil))

		body := map[string]interface{}{"name": "Retirement", "description": "Long-term"}
		req := testutil.NewJSONRequest(http.MethodPost, "/api/portfolios", body, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response PortfolioResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID == "" {
			t.Error("Expected generated ID")
		}
		if len(st.Portfolios()) != 1 {
			t.Errorf("Expected 1 portfolio in store, got %d", len(st.Portfolios()))
		}
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		handler := NewPortfolioHandler(service.NewPortfolioService(store.New(), nil))

		body := map[string]interface{}{"name": "", "totalValue": -5}
		req := testutil.NewJSONRequest(http.MethodPost, "/api/portfolios", body, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("remote failure yields 502 and no store change", func(t *testing.T) {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer backend.Close()

		st := store.New()
		handler := NewPortfolioHandler(service.NewPortfolioService(st, remote.NewClient(backend.URL)))

		body := map[string]interface{}{"name": "Retirement"}
		req := testutil.NewJSONRequest(http.MethodPost, "/api/portfolios", body, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d: %s", w.Code, w.Body.String())
		}
		if len(st.Portfolios()) != 0 {
			t.Errorf("Expected store untouched, got %d portfolios", len(st.Portfolios()))
		}
	})
}

func TestPortfolioHandler_UpdatePortfolio(t *testing.T) {
	t.Run("updates in place", func(t *testing.T) {
		st := store.New()
		st.ReplacePortfolios([]model.Portfolio{
			{ID: "p1", Name: "Retirement"},
			{ID: "p2", Name: "Brokerage"},
		})
		handler := NewPortfolioHandler(service.NewPortfolioService(st, nil))

		body := map[string]interface{}{"name": "Pension"}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/portfolios/p1", body, map[string]string{"portfolioId": "p1"})
		w := httptest.NewRecorder()

		handler.UpdatePortfolio(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		portfolios := st.Portfolios()
		if portfolios[0].Name != "Pension" || portfolios[1].Name != "Brokerage" {
			t.Errorf("Expected in-place update, got %+v", portfolios)
		}
	})

	t.Run("returns 404 for unknown portfolio", func(t *testing.T) {
		handler := NewPortfolioHandler(service.NewPortfolioService(store.New(), nil))

		req := testutil.NewJSONRequest(http.MethodPut, "/api/portfolios/missing", map[string]interface{}{}, map[string]string{"portfolioId": "missing"})
		w := httptest.NewRecorder()

		handler.UpdatePortfolio(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestPortfolioHandler_DeletePortfolio(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		st := store.New()
		st.ReplacePortfolios([]model.Portfolio{{ID: "p1", Name: "Retirement"}})
		handler := NewPortfolioHandler(service.NewPortfolioService(st, nil))

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/portfolios/p1", map[string]string{"portfolioId": "p1"})
		w := httptest.NewRecorder()

		handler.DeletePortfolio(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", w.Code)
		}
		if len(st.Portfolios()) != 0 {
			t.Errorf("Expected no portfolios, got %d", len(st.Portfolios()))
		}
	})
}
