// Package providers implements the upstream dispatch layer: for each
// (platform, operation) pair an ordered chain of provider descriptors is
// attempted until one yields a usable payload.
package providers

import "time"

// Operation selects which chain family a request targets.
type Operation string

const (
	OpInfo     Operation = "info"
	OpDownload Operation = "download"
)

// Params carries the caller-supplied inputs forwarded to providers. Quality
// and Type are passed through untouched; providers that have no use for them
// ignore them.
type Params struct {
	URL     string
	Quality string
	Type    string
}

// Kind distinguishes how a descriptor produces its payload.
type Kind int

const (
	// KindRequest performs a live HTTP call and runs the extraction rule
	// over the response body.
	KindRequest Kind = iota
	// KindTemplate deterministically constructs a redirect-style URL with
	// no network traffic. A legitimate terminal provider, not a stub.
	KindTemplate
	// KindStatic yields an empty payload; the normalizer fills every field
	// from the platform fallback literals.
	KindStatic
)

// Payload is the provider-agnostic result of one successful attempt. Info
// attempts populate the metadata fields, download attempts populate
// DownloadURL. Empty fields are filled in by normalization.
type Payload struct {
	Title       string
	Thumbnail   string
	Author      string
	Duration    string
	DownloadURL string
}

// ExtractFunc maps one upstream's raw response body to a Payload. Returning
// an error marks the attempt as failed and advances the chain.
type ExtractFunc func(raw []byte, params Params) (Payload, error)

// Descriptor describes a single provider attempt within a chain.
type Descriptor struct {
	Name string
	Kind Kind

	// KindRequest fields.
	Method   string
	Endpoint func(params Params) string
	Body     func(params Params) any
	Extract  ExtractFunc

	// KindTemplate field.
	Template func(params Params) string

	// Timeout bounds a single network attempt. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds a single upstream attempt when the descriptor does
// not set its own.
const DefaultTimeout = 10 * time.Second

func (d Descriptor) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return DefaultTimeout
}
