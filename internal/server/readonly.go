package server

import "net/http"

// ReadOnlyMiddleware lets through GET, HEAD and OPTIONS requests and rejects
// everything else with 405. The server runs this way when it only showcases
// the appearance engine.
func ReadOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
		default:
			w.Header().Set("Allow", "GET, HEAD, OPTIONS")
			ReadOnly(w, "server is in read-only mode", r.URL.Path)
		}
	})
}
