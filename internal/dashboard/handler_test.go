//go:build !dev

package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_ServesPreview(t *testing.T) {
	handler := Handler()

	tests := []struct {
		name      string
		path      string
		wantBody  string
		wantCache string
	}{
		{"root path", "/", "authdeck appearance", "no-cache"},
		{"deep link", "/settings/appearance", "authdeck appearance", "no-cache"},
		{"script asset", "/assets/app.js", "startViewTransition", "public, max-age=3600"},
		{"style asset", "/assets/app.css", "--brand-primary", "public, max-age=3600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
			if got := rec.Header().Get("Cache-Control"); got != tt.wantCache {
				t.Errorf("Cache-Control = %q, want %q", got, tt.wantCache)
			}
		})
	}
}

func TestHandler_ExcludesAPIRoutes(t *testing.T) {
	handler := Handler()

	apiPaths := []string{
		"/api/v1/health",
		"/api/v1/appearance",
		"/api/v1/appearance/theme.css",
		"/api/v1/ws/appearance",
		"/swagger/index.html",
		"/healthz",
		"/readyz",
		"/metrics",
	}

	for _, path := range apiPaths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			// The API mux owns these, so the catch-all must not answer them.
			if rec.Code != http.StatusNotFound {
				t.Errorf("expected 404 for API route %s, got %d", path, rec.Code)
			}
		})
	}
}
