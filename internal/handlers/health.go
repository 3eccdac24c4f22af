package handlers

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler responds with service health information.
type HealthHandler struct {
	NowFunc func() time.Time
}

// Handle implements GET /api/health.
func (h HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		respondError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	now := time.Now
	if h.NowFunc != nil {
		now = h.NowFunc
	}

	respondJSON(ctx, w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Video resolver API is running",
		Timestamp: now().UTC().Format(time.RFC3339),
	})
}
