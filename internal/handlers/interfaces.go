package handlers

import (
	"context"

	"github.com/vidresolve/backend/internal/models"
	"github.com/vidresolve/backend/internal/platform"
	"github.com/vidresolve/backend/internal/providers"
)

// VideoResolver resolves canonical metadata and download links for a
// classified URL.
type VideoResolver interface {
	Info(ctx context.Context, p platform.Platform, params providers.Params) (models.VideoInfo, error)
	Download(ctx context.Context, p platform.Platform, params providers.Params) (models.DownloadResult, error)
}
