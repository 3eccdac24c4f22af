package models

import "github.com/vidresolve/backend/internal/platform"

// VideoInfo is the canonical metadata record returned to API callers. Title,
// Thumbnail and Author are always populated; providers that yield nothing for
// a field have it replaced by the platform fallback literal.
type VideoInfo struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Author    string `json:"author"`
	Duration  string `json:"duration,omitempty"`
}

// DownloadResult is the canonical outcome of a download resolution.
type DownloadResult struct {
	DownloadURL string            `json:"downloadUrl"`
	Platform    platform.Platform `json:"platform"`
}
