package server

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds server configuration.
type Config struct {
	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Server is an HTTP server hosting the validation API alongside the
// health and metrics endpoints.
type Server struct {
	name     string
	version  string
	config   *Config
	handlers map[string]http.HandlerFunc
	limiter  *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// Option is a functional option for configuring Server instances.
type Option func(*Server)

// WithName returns an Option that sets the service name reported on
// the default route.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion returns an Option that sets the service version reported
// on the default route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithConfig returns an Option that replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		s.config = cfg
	}
}

// WithHandler returns an Option that registers API handlers by route.
// Registered handlers run behind the standard middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		for route, h := range handlers {
			s.handlers[route] = h
		}
	}
}

// contextKey is a private type for request-scoped context values.
type contextKey string

const contextKeyRequestID contextKey = "request-id"
