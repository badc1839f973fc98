package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/osse101/RouletteCampaign_Go/mocks"
)

var expectedSecurityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "SAMEORIGIN",
	"X-XSS-Protection":       "1; mode=block",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	middleware := SecurityHeadersMiddleware()

	// Create a simple handler that does nothing
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	for header, expected := range expectedSecurityHeaders {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("expected header %s to be %q, got %q", header, expected, got)
		}
	}
}

func TestSecurityHeaders_OnRejectedAdminRequest(t *testing.T) {
	router := NewRouter(Dependencies{
		APIKey:          "secret-key",
		RouletteService: mocks.NewMockRouletteService(t),
		SpinService:     mocks.NewMockSpinService(t),
	})

	req := httptest.NewRequest("POST", "/api/v1/admin/roulettes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	for header, expected := range expectedSecurityHeaders {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("expected header %s to be %q, got %q", header, expected, got)
		}
	}
}
