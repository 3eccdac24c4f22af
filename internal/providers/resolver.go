package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vidresolve/backend/internal/logging"
	"github.com/vidresolve/backend/internal/models"
	"github.com/vidresolve/backend/internal/platform"
)

// maxResponseBytes caps how much of an upstream response body is read.
const maxResponseBytes = 1 << 20

// Resolver walks provider chains in declaration order and returns the first
// payload that satisfies its descriptor's extraction rule. Attempts are
// strictly sequential; a failed attempt is logged and the chain advances.
type Resolver struct {
	client *http.Client
	chains map[ChainKey][]Descriptor
}

// NewResolver constructs a Resolver over the given chain table. A nil client
// falls back to a plain http.Client; per-attempt deadlines come from the
// descriptors, not the client.
func NewResolver(client *http.Client, chains map[ChainKey][]Descriptor) *Resolver {
	if client == nil {
		client = &http.Client{}
	}
	return &Resolver{client: client, chains: chains}
}

// Info resolves canonical video metadata for the platform.
func (r *Resolver) Info(ctx context.Context, p platform.Platform, params Params) (models.VideoInfo, error) {
	payload, err := r.resolve(ctx, p, OpInfo, params)
	if err != nil {
		return models.VideoInfo{}, err
	}
	return NormalizeInfo(p, payload), nil
}

// Download resolves a download link for the platform.
func (r *Resolver) Download(ctx context.Context, p platform.Platform, params Params) (models.DownloadResult, error) {
	payload, err := r.resolve(ctx, p, OpDownload, params)
	if err != nil {
		return models.DownloadResult{}, err
	}
	return NormalizeDownload(p, payload), nil
}

func (r *Resolver) resolve(ctx context.Context, p platform.Platform, op Operation, params Params) (Payload, error) {
	chain, ok := r.chains[ChainKey{Platform: p, Operation: op}]
	if !ok || len(chain) == 0 {
		return Payload{}, fmt.Errorf("%w for %s/%s", ErrChainNotDefined, p, op)
	}

	logger := logging.FromContext(ctx)

	for _, d := range chain {
		start := time.Now()
		payload, err := r.attempt(ctx, d, params)
		if err != nil {
			logger.Warn("provider attempt failed",
				slog.String("provider", d.Name),
				slog.String("platform", string(p)),
				slog.String("operation", string(op)),
				slog.Duration("elapsed", time.Since(start)),
				"error", err,
			)
			continue
		}
		logger.Info("provider attempt succeeded",
			slog.String("provider", d.Name),
			slog.String("platform", string(p)),
			slog.String("operation", string(op)),
			slog.Duration("elapsed", time.Since(start)),
		)
		return payload, nil
	}

	return Payload{}, fmt.Errorf("%w for %s/%s", ErrChainExhausted, p, op)
}

func (r *Resolver) attempt(ctx context.Context, d Descriptor, params Params) (Payload, error) {
	switch d.Kind {
	case KindTemplate:
		return Payload{DownloadURL: d.Template(params)}, nil
	case KindStatic:
		return Payload{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout())
	defer cancel()

	var body io.Reader
	if d.Body != nil {
		encoded, err := json.Marshal(d.Body(params))
		if err != nil {
			return Payload{}, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, d.Endpoint(params), body)
	if err != nil {
		return Payload{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if d.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := r.client.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("call %s: %w", d.Name, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Payload{}, fmt.Errorf("%s responded with status %d", d.Name, res.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return Payload{}, fmt.Errorf("read %s response: %w", d.Name, err)
	}

	return d.Extract(raw, params)
}
