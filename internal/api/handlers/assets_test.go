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

func TestAssetHandler_UpdateAsset(t *testing.T) {
	setupHandler := func() (*AssetHandler, *store.Store) {
		st := store.New()
		st.ReplaceAssets([]model.Asset{testutil.SampleAsset("asset-1", "Apple Inc.", "Stock")})
		return NewAssetHandler(service.NewAssetService(st)), st
	}

	t.Run("merges a submitted purchase date", func(t *testing.T) {
		handler, st := setupHandler()

		body := map[string]interface{}{"purchase_date": "2023-11-20", "quantity": 25}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/assets/asset-1", body, map[string]string{"assetId": "asset-1"})
		w := httptest.NewRecorder()

		handler.UpdateAsset(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response AssetResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.PurchaseDate != "2023-11-20" {
			t.Errorf("Expected purchase date 2023-11-20, got %q", response.PurchaseDate)
		}
		if response.Quantity != 25 {
			t.Errorf("Expected quantity 25, got %v", response.Quantity)
		}

		stored := st.Assets()[0]
		if stored.PurchaseDate.Format(dateLayout) != "2023-11-20" {
			t.Errorf("Expected stored purchase date 2023-11-20, got %s", stored.PurchaseDate.Format(dateLayout))
		}
	})

	t.Run("leaves the purchase date untouched when absent", func(t *testing.T) {
		handler, st := setupHandler()

		body := map[string]interface{}{"current_price": 200}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/assets/asset-1", body, map[string]string{"assetId": "asset-1"})
		w := httptest.NewRecorder()

		handler.UpdateAsset(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		stored := st.Assets()[0]
		if stored.PurchaseDate.Format(dateLayout) != "2024-03-01" {
			t.Errorf("Expected original purchase date 2024-03-01, got %s", stored.PurchaseDate.Format(dateLayout))
		}
		if stored.CurrentPrice != 200 {
			t.Errorf("Expected merged current price, got %v", stored.CurrentPrice)
		}
	})

	t.Run("rejects a malformed purchase date", func(t *testing.T) {
		handler, st := setupHandler()

		body := map[string]interface{}{"purchase_date": "20-11-2023"}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/assets/asset-1", body, map[string]string{"assetId": "asset-1"})
		w := httptest.NewRecorder()

		handler.UpdateAsset(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}

		stored := st.Assets()[0]
		if stored.PurchaseDate.Format(dateLayout) != "2024-03-01" {
			t.Errorf("Expected purchase date unchanged after rejection, got %s", stored.PurchaseDate.Format(dateLayout))
		}
	})

	t.Run("returns 404 for a missing asset", func(t *testing.T) {
		handler, _ := setupHandler()

		body := map[string]interface{}{"quantity": 5}
		req := testutil.NewJSONRequest(http.MethodPut, "/api/assets/missing", body, map[string]string{"assetId": "missing"})
		w := httptest.NewRecorder()

		handler.UpdateAsset(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
