package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SohamNaik26/wealth-management/internal/auth"
	"github.com/SohamNaik26/wealth-management/internal/testutil"
)

func TestSessionHandler_CreateSession(t *testing.T) {
	setupHandler := func(t *testing.T) (*SessionHandler, *auth.TokenService) {
		t.Helper()
		tokens, err := auth.NewTokenService("", time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService failed: %v", err)
		}
		return NewSessionHandler(tokens), tokens
	}

	t.Run("mints a verifiable token", func(t *testing.T) {
		handler, tokens := setupHandler(t)

		body := map[string]string{"user": "alice"}
		req := testutil.NewJSONRequest(http.MethodPost, "/api/session", body, nil)
		w := httptest.NewRecorder()

		handler.CreateSession(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response SessionResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.User != "alice" {
			t.Errorf("Expected user alice, got %q", response.User)
		}
		subject, ok := tokens.Verify(response.Token)
		if !ok || subject != "alice" {
			t.Errorf("Expected verifiable token for alice, got %q/%v", subject, ok)
		}
	})

	t.Run("rejects blank user", func(t *testing.T) {
		handler, _ := setupHandler(t)

		body := map[string]string{"user": "   "}
		req := testutil.NewJSONRequest(http.MethodPost, "/api/session", body, nil)
		w := httptest.NewRecorder()

		handler.CreateSession(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
		w := httptest.NewRecorder()

		handler.CreateSession(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
