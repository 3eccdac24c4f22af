package providers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/vidresolve/backend/internal/platform"
)

// ChainKey addresses one provider chain.
type ChainKey struct {
	Platform  platform.Platform
	Operation Operation
}

// DefaultChains builds the provider chain table. Endpoints here are public
// third-party integrations whose contracts are not under our control; each
// descriptor is an integration point, and the chain ordering is the fallback
// policy. timeout bounds each network attempt.
func DefaultChains(timeout time.Duration) map[ChainKey][]Descriptor {
	return map[ChainKey][]Descriptor{
		{platform.YouTube, OpInfo}: {
			{
				Name:   "youtube-oembed",
				Kind:   KindRequest,
				Method: "GET",
				Endpoint: func(p Params) string {
					return "https://www.youtube.com/oembed?url=" + url.QueryEscape(p.URL) + "&format=json"
				},
				Extract: oembedExtract,
				Timeout: timeout,
			},
			{
				Name:   "noembed",
				Kind:   KindRequest,
				Method: "GET",
				Endpoint: func(p Params) string {
					return "https://noembed.com/embed?url=" + url.QueryEscape(p.URL)
				},
				Extract: oembedExtract,
				Timeout: timeout,
			},
		},
		{platform.Instagram, OpInfo}: {
			{
				Name:   "instagram-oembed",
				Kind:   KindRequest,
				Method: "POST",
				Endpoint: func(Params) string {
					return "https://api.instagram.com/oembed"
				},
				Body: func(p Params) any {
					return map[string]string{"url": p.URL}
				},
				Extract: oembedExtract,
				Timeout: timeout,
			},
			{Name: "instagram-static", Kind: KindStatic},
		},
		{platform.Facebook, OpInfo}: {
			{Name: "facebook-static", Kind: KindStatic},
		},
		{platform.TikTok, OpInfo}: {
			{
				Name:   "tiktok-oembed",
				Kind:   KindRequest,
				Method: "GET",
				Endpoint: func(p Params) string {
					return "https://www.tiktok.com/oembed?url=" + url.QueryEscape(p.URL)
				},
				Extract: oembedExtract,
				Timeout: timeout,
			},
			{Name: "tiktok-static", Kind: KindStatic},
		},
		{platform.Twitter, OpInfo}: {
			{Name: "twitter-static", Kind: KindStatic},
		},
		{platform.Snapchat, OpInfo}: {
			{Name: "snapchat-static", Kind: KindStatic},
		},

		{platform.YouTube, OpDownload}: {
			{
				Name:   "cobalt",
				Kind:   KindRequest,
				Method: "POST",
				Endpoint: func(Params) string {
					return "https://api.cobalt.tools/api/json"
				},
				Body: func(p Params) any {
					return map[string]string{"url": p.URL, "vQuality": p.Quality}
				},
				Extract: directURLExtract,
				Timeout: timeout,
			},
			{
				Name: "vevioz",
				Kind: KindTemplate,
				Template: func(p Params) string {
					return "https://api.vevioz.com/api/button/videos/" + url.QueryEscape(p.URL)
				},
			},
		},
		{platform.Instagram, OpDownload}: {
			{
				Name:   "downloadgram",
				Kind:   KindRequest,
				Method: "POST",
				Endpoint: func(Params) string {
					return "https://api.downloadgram.org/media"
				},
				Body: func(p Params) any {
					return map[string]string{"url": p.URL}
				},
				Extract: downloadURLExtract,
				Timeout: timeout,
			},
			{
				Name:   "instagram-media",
				Kind:   KindRequest,
				Method: "GET",
				Endpoint: func(p Params) string {
					return "https://www.instagram.com/api/v1/media/download/?url=" + url.QueryEscape(p.URL)
				},
				Extract: downloadURLExtract,
				Timeout: timeout,
			},
			{
				Name: "snapinsta",
				Kind: KindTemplate,
				Template: func(p Params) string {
					return "https://snapinsta.app/download?url=" + url.QueryEscape(p.URL)
				},
			},
		},
		{platform.Facebook, OpDownload}: {
			{
				Name: "fdown",
				Kind: KindTemplate,
				Template: func(p Params) string {
					return fmt.Sprintf("https://fdown.net/download.php?url=%s&quality=%s", url.QueryEscape(p.URL), url.QueryEscape(p.Quality))
				},
			},
		},
		{platform.TikTok, OpDownload}: {
			{
				Name: "tikmate",
				Kind: KindTemplate,
				Template: func(p Params) string {
					return "https://tikmate.app/download?url=" + url.QueryEscape(p.URL)
				},
			},
		},
		{platform.Twitter, OpDownload}: {
			{
				Name: "twitsave",
				Kind: KindTemplate,
				Template: func(p Params) string {
					return "https://twitsave.com/download?url=" + url.QueryEscape(p.URL)
				},
			},
		},
		{platform.Snapchat, OpDownload}: {
			{
				Name: "snapdownloader",
				Kind: KindTemplate,
				Template: func(p Params) string {
					return "https://snapdownloader.com/download?url=" + url.QueryEscape(p.URL)
				},
			},
		},
	}
}
