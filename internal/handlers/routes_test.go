package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type rejectAll struct{}

func (rejectAll) Allow(string) bool { return false }

func newTestMux(t *testing.T, deps Dependencies) *http.ServeMux {
	t.Helper()
	if deps.StaticDir == "" {
		deps.StaticDir = t.TempDir()
	}
	mux := http.NewServeMux()
	RegisterRoutes(mux, deps)
	return mux
}

func TestRoutesUnknownAPIPathReturnsJSON404(t *testing.T) {
	mux := newTestMux(t, Dependencies{Resolver: &stubResolver{}})

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Success || resp.Message != "Endpoint not found" {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}

func TestRoutesUnknownRootPathReturnsJSON404(t *testing.T) {
	mux := newTestMux(t, Dependencies{Resolver: &stubResolver{}})

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Success || resp.Message != "Endpoint not found" {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}

func TestRoutesServeStaticLandingPage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>landing</html>"), 0o600); err != nil {
		t.Fatalf("write landing page: %v", err)
	}

	mux := newTestMux(t, Dependencies{Resolver: &stubResolver{}, StaticDir: dir})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "landing") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestRoutesRateLimiterGuardsAPIOnly(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>landing</html>"), 0o600); err != nil {
		t.Fatalf("write landing page: %v", err)
	}

	mux := newTestMux(t, Dependencies{Resolver: &stubResolver{}, Limiter: rejectAll{}, StaticDir: dir})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 on the API prefix got %d", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || !strings.Contains(body.Message, "Too many requests") {
		t.Fatalf("unexpected envelope %+v", body)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("static content should not be rate limited, got %d", rec.Code)
	}
}

func TestRoutesHealthEndpoint(t *testing.T) {
	mux := newTestMux(t, Dependencies{Resolver: &stubResolver{}})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
}
