package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vidresolve/backend/internal/logging"
	"github.com/vidresolve/backend/internal/models"
	"github.com/vidresolve/backend/internal/platform"
	"github.com/vidresolve/backend/internal/providers"
)

const (
	defaultQuality = "720"
	defaultType    = "video"
)

const unsupportedPlatformMessage = "Unsupported platform. Supported: YouTube, Instagram, Facebook, TikTok, Twitter/X, Snapchat"

// VideoHandler implements the video-info and download endpoints. Each request
// walks the same stages: validate the body, detect the platform, dispatch to
// the provider chains, respond with the normalized result.
type VideoHandler struct {
	Resolver VideoResolver
}

type videoRequest struct {
	URL     string `json:"url"`
	Quality string `json:"quality"`
	Type    string `json:"type"`
}

type infoResponse struct {
	Success  bool              `json:"success"`
	Platform platform.Platform `json:"platform"`
	Data     models.VideoInfo  `json:"data"`
}

type downloadResponse struct {
	Success     bool              `json:"success"`
	DownloadURL string            `json:"downloadUrl"`
	Platform    platform.Platform `json:"platform"`
}

// Info handles POST /api/video-info requests.
func (h VideoHandler) Info(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if r.Method != http.MethodPost {
		respondError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.Resolver == nil {
		logger.Error("video resolver dependency unavailable")
		respondError(ctx, w, http.StatusInternalServerError, "Failed to fetch video information")
		return
	}

	req, ok := decodeVideoRequest(w, r)
	if !ok {
		return
	}

	p, detected := platform.Detect(req.URL)
	if !detected {
		respondError(ctx, w, http.StatusBadRequest, unsupportedPlatformMessage)
		return
	}

	info, err := h.Resolver.Info(ctx, p, params(req))
	if err != nil {
		logger.Error("video info resolution failed", "platform", string(p), "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "Failed to fetch video information")
		return
	}

	respondJSON(ctx, w, http.StatusOK, infoResponse{Success: true, Platform: p, Data: info})
}

// Download handles POST /api/download requests.
func (h VideoHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if r.Method != http.MethodPost {
		respondError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.Resolver == nil {
		logger.Error("video resolver dependency unavailable")
		respondError(ctx, w, http.StatusInternalServerError, "Failed to download video")
		return
	}

	req, ok := decodeVideoRequest(w, r)
	if !ok {
		return
	}

	p, detected := platform.Detect(req.URL)
	if !detected {
		respondError(ctx, w, http.StatusBadRequest, "Unsupported platform")
		return
	}

	result, err := h.Resolver.Download(ctx, p, params(req))
	if err != nil {
		logger.Error("download resolution failed", "platform", string(p), "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "Failed to download video")
		return
	}

	respondJSON(ctx, w, http.StatusOK, downloadResponse{
		Success:     true,
		DownloadURL: result.DownloadURL,
		Platform:    result.Platform,
	})
}

// decodeVideoRequest parses the shared request body. Validation failures are
// answered directly; the second return value reports whether processing may
// continue.
func decodeVideoRequest(w http.ResponseWriter, r *http.Request) (videoRequest, bool) {
	ctx := r.Context()

	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logging.FromContext(ctx).Warn("invalid request payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "URL is required")
		return videoRequest{}, false
	}

	if req.URL == "" {
		respondError(ctx, w, http.StatusBadRequest, "URL is required")
		return videoRequest{}, false
	}

	return req, true
}

func params(req videoRequest) providers.Params {
	quality := req.Quality
	if quality == "" {
		quality = defaultQuality
	}
	mediaType := req.Type
	if mediaType == "" {
		mediaType = defaultType
	}
	return providers.Params{URL: req.URL, Quality: quality, Type: mediaType}
}
