package providers

import (
	"encoding/json"
	"errors"
	"fmt"
)

// oembedExtract handles the oEmbed response shape shared by the YouTube,
// TikTok and Instagram metadata endpoints, plus noembed.com. The minimum
// requirement is a non-empty title or thumbnail; an upstream that returns a
// 200 with neither is treated as a failed attempt.
func oembedExtract(raw []byte, _ Params) (Payload, error) {
	var body struct {
		Title        string     `json:"title"`
		ThumbnailURL string     `json:"thumbnail_url"`
		AuthorName   string     `json:"author_name"`
		AuthorURL    string     `json:"author_url"`
		Duration     lenientStr `json:"duration"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Payload{}, fmt.Errorf("parse oembed response: %w", err)
	}

	if body.Title == "" && body.ThumbnailURL == "" {
		return Payload{}, errors.New("oembed response carried no usable fields")
	}

	author := body.AuthorName
	if author == "" {
		author = body.AuthorURL
	}

	return Payload{
		Title:     body.Title,
		Thumbnail: body.ThumbnailURL,
		Author:    author,
		Duration:  string(body.Duration),
	}, nil
}

// lenientStr accepts a JSON string, number, or null. Upstreams disagree on
// whether duration is a string or a number of seconds.
type lenientStr string

func (s *lenientStr) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = lenientStr(v)
		return nil
	}
	*s = lenientStr(b)
	return nil
}

// directURLExtract handles download APIs that answer with a top-level "url"
// field (e.g. cobalt).
func directURLExtract(raw []byte, _ Params) (Payload, error) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Payload{}, fmt.Errorf("parse download response: %w", err)
	}
	if body.URL == "" {
		return Payload{}, errors.New("download response carried no url")
	}
	return Payload{DownloadURL: body.URL}, nil
}

// downloadURLExtract handles download APIs that answer with a "download_url"
// field (e.g. downloadgram and the Instagram media endpoint).
func downloadURLExtract(raw []byte, _ Params) (Payload, error) {
	var body struct {
		DownloadURL string `json:"download_url"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Payload{}, fmt.Errorf("parse download response: %w", err)
	}
	if body.DownloadURL == "" {
		return Payload{}, errors.New("download response carried no download_url")
	}
	return Payload{DownloadURL: body.DownloadURL}, nil
}
