package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type claimsKey struct{}

// ClaimsFromContext returns the claims AuthMiddleware attached, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	c, _ := ctx.Value(claimsKey{}).(*Claims)
	return c
}

// ProfileFromRequest resolves the profile from the token claims, or returns
// fallback for unauthenticated requests.
func ProfileFromRequest(fallback string) func(r *http.Request) string {
	return func(r *http.Request) string {
		if c := ClaimsFromContext(r.Context()); c != nil {
			return c.Profile()
		}
		return fallback
	}
}

// Catalog reads that any visitor may make.
var publicReads = map[string]bool{
	"/api/v1/health":                  true,
	"/api/v1/appearance/presets":      true,
	"/api/v1/appearance/radii":        true,
	"/api/v1/appearance/brand-colors": true,
}

// wsPrefix is authenticated by the WebSocket handler, since browsers cannot
// set headers on the upgrade request.
const wsPrefix = "/api/v1/ws/"

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthMiddleware requires a valid access token on /api/ routes other than
// the public catalog reads and the WebSocket endpoint.
func AuthMiddleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresAuth(r) {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := BearerToken(r)
			if !ok {
				writeAuthError(w, "missing or invalid authorization header")
				return
			}
			claims, err := tokens.ValidateAccessToken(raw)
			if err != nil {
				writeAuthError(w, "invalid or expired access token")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

func requiresAuth(r *http.Request) bool {
	p := r.URL.Path
	switch {
	case !strings.HasPrefix(p, "/api/"), strings.HasPrefix(p, wsPrefix):
		return false
	case publicReads[p]:
		return r.Method != http.MethodGet && r.Method != http.MethodHead
	}
	return true
}

// writeAuthError writes a 401 problem response.
func writeAuthError(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="authdeck"`)
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://authdeck.dev/problems/auth-error",
		"title":  http.StatusText(http.StatusUnauthorized),
		"status": http.StatusUnauthorized,
		"detail": detail,
	})
}
