package providers

import (
	"github.com/vidresolve/backend/internal/models"
	"github.com/vidresolve/backend/internal/platform"
)

// NormalizeInfo converts a raw provider payload into the canonical VideoInfo.
// Required fields the provider left empty are filled from the platform's
// fallback literals, so callers always receive a fully populated record.
func NormalizeInfo(p platform.Platform, payload Payload) models.VideoInfo {
	fb := platform.FallbackFor(p)

	info := models.VideoInfo{
		Title:     payload.Title,
		Thumbnail: payload.Thumbnail,
		Author:    payload.Author,
		Duration:  payload.Duration,
	}

	if info.Title == "" {
		info.Title = fb.Title
	}
	if info.Thumbnail == "" {
		info.Thumbnail = fb.Thumbnail
	}
	if info.Author == "" {
		info.Author = fb.Author
	}

	return info
}

// NormalizeDownload converts a raw provider payload into the canonical
// DownloadResult. Template providers already produced the final URL, so this
// is a pass-through plus the platform tag.
func NormalizeDownload(p platform.Platform, payload Payload) models.DownloadResult {
	return models.DownloadResult{
		DownloadURL: payload.DownloadURL,
		Platform:    p,
	}
}
