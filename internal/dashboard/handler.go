// Package dashboard serves the embedded appearance preview page.
package dashboard

import (
	"io/fs"
	"net/http"
	"strings"
)

// reserved prefixes belong to the API and operational endpoints.
var reserved = []string{"/api/", "/swagger/", "/healthz", "/readyz", "/metrics"}

// Handler returns an http.Handler that serves the preview page and its assets.
// Unknown paths fall back to index.html so deep links load the page.
func Handler() http.Handler {
	if distFS == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "dashboard not available (dev mode)", http.StatusNotFound)
		})
	}

	subFS, err := fs.Sub(distFS, "dist")
	if err != nil {
		panic("dashboard: failed to create sub filesystem: " + err.Error())
	}

	fileServer := http.FileServer(http.FS(subFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range reserved {
			if strings.HasPrefix(r.URL.Path, p) {
				http.NotFound(w, r)
				return
			}
		}

		path := strings.TrimPrefix(r.URL.Path, "/")
		if path != "" {
			if f, err := subFS.Open(path); err == nil {
				f.Close()
				w.Header().Set("Cache-Control", "public, max-age=3600")
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		// The page reads the live theme on load, so it must not be cached.
		w.Header().Set("Cache-Control", "no-cache")
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
