package handlers

import (
	"net/http"
	"strings"
)

// StaticHandler serves the landing page assets and converts every miss into
// the JSON 404 envelope instead of the stdlib plain-text response.
func StaticHandler(dir string) http.Handler {
	fs := http.Dir(dir)
	fileServer := http.FileServer(fs)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			path := r.URL.Path
			if path == "/" {
				path = "/index.html"
			}
			if !strings.Contains(path, "..") {
				if f, err := fs.Open(path); err == nil {
					f.Close()
					fileServer.ServeHTTP(w, r)
					return
				}
			}
		}

		respondError(r.Context(), w, http.StatusNotFound, "Endpoint not found")
	})
}
