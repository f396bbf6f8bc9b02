package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("handles OPTIONS preflight request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/airplanes", nil)
		rec := httptest.NewRecorder()

		Cors("*")(handler).ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}

		if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
			t.Errorf("expected wildcard origin, got %q", origin)
		}

		if methods := rec.Header().Get("Access-Control-Allow-Methods"); methods == "" {
			t.Error("expected Access-Control-Allow-Methods header to be set")
		}
	})

	t.Run("passes POST request to next handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/airplanes/select", nil)
		rec := httptest.NewRecorder()

		Cors("https://app.example.com")(handler).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "https://app.example.com" {
			t.Errorf("expected configured origin, got %q", origin)
		}
	})

	t.Run("empty origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		Cors("")(handler).ServeHTTP(rec, req)

		if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
			t.Errorf("expected wildcard origin, got %q", origin)
		}
	})

	t.Run("sets CORS headers on all requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		Cors("*")(handler).ServeHTTP(rec, req)

		headers := []string{
			"Access-Control-Allow-Origin",
			"Access-Control-Allow-Methods",
			"Access-Control-Allow-Headers",
			"Access-Control-Max-Age",
		}

		for _, header := range headers {
			if rec.Header().Get(header) == "" {
				t.Errorf("expected %s header to be set", header)
			}
		}
	})
}
