package handlers

import (
	"net/http"

	"github.com/vidresolve/backend/internal/middleware"
)

// RegisterRoutes wires HTTP handlers into the provided ServeMux. The rate
// limiter guards the /api/ prefix only; the landing page stays unmetered.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{}
	videos := VideoHandler{Resolver: deps.Resolver}

	api := http.NewServeMux()
	api.HandleFunc("/api/health", health.Handle)
	api.HandleFunc("/api/video-info", videos.Info)
	api.HandleFunc("/api/download", videos.Download)
	api.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		respondError(r.Context(), w, http.StatusNotFound, "Endpoint not found")
	})

	mux.Handle("/api/", middleware.RateLimit(deps.Limiter)(api))
	mux.Handle("/", StaticHandler(deps.StaticDir))
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Resolver  VideoResolver
	Limiter   middleware.RateLimiter
	StaticDir string
}
