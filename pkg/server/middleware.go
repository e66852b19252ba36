package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// withMiddleware wraps an API handler with request identification,
// readiness gating, rate limiting and access logging.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))

		s.mu.RLock()
		ready := s.ready
		s.mu.RUnlock()
		if !ready {
			// Initializing or draining.
			WriteError(w, r, http.StatusServiceUnavailable,
				ErrCodeServiceUnavailable, "service is not ready", true, nil)
			return
		}

		if !s.limiter.Allow() {
			WriteError(w, r, http.StatusTooManyRequests,
				ErrCodeRateLimitExceeded, "rate limit exceeded", true, nil)
			return
		}

		start := time.Now()
		next(w, r)
		slog.Debug("handled request",
			"path", r.URL.Path,
			"method", r.Method,
			"request_id", requestID,
			"duration", time.Since(start),
		)
	}
}
