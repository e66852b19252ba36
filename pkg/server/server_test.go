package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestHandleHealth(t *testing.T) {
	s := New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestHandleHealthRejectsNonGet(t *testing.T) {
	s := New()
	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleReady(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	s.handleReady(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.setReady(true)
	rec = httptest.NewRecorder()
	s.handleReady(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleDefault(t *testing.T) {
	s := New(
		WithName("test-server"),
		WithVersion("1.2.3"),
		WithHandler(map[string]http.HandlerFunc{
			"/v1/validate": func(w http.ResponseWriter, r *http.Request) {},
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.handleDefault(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Name    string   `json:"name"`
		Version string   `json:"version"`
		Routes  []string `json:"routes"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "test-server", resp.Name)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Contains(t, resp.Routes, "/v1/validate")
	assert.Contains(t, resp.Routes, "/metrics")
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	WriteError(rec, req, http.StatusBadRequest, ErrCodeInvalidRequest, "bad input", false, map[string]any{"field": "bundle"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrCodeInvalidRequest, resp.Code)
	assert.Equal(t, "bad input", resp.Message)
	assert.False(t, resp.Retryable)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, "bundle", resp.Details["field"])
}

func TestMiddlewareSetsRequestID(t *testing.T) {
	s := New()
	s.setReady(true)
	h := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/validate", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMiddlewarePreservesRequestID(t *testing.T) {
	s := New()
	s.setReady(true)
	h := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/v1/validate", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}

func TestMiddlewareRejectsWhenNotReady(t *testing.T) {
	s := New()

	h := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run before the server is ready")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/validate", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrCodeServiceUnavailable)

	s.setReady(true)
	ok := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	rec = httptest.NewRecorder()
	ok(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMiddlewareRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = rate.Limit(0)
	cfg.RateLimitBurst = 0
	s := New(WithConfig(cfg))
	s.setReady(true)

	h := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when rate limited")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/validate", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrCodeRateLimitExceeded)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, rate.Limit(100), cfg.RateLimit)
	assert.Equal(t, 200, cfg.RateLimitBurst)
}
