// Package api exposes the discovery service over HTTP.
package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saviobatista/svc-discovery/internal/stats"
	"github.com/saviobatista/svc-discovery/internal/types"
)

// FlightService answers flight and health queries
type FlightService interface {
	Standard(ctx context.Context, view string, duration float64) (*types.GetFlightsResponse, error)
	Demo(ctx context.Context, view string, duration float64) (*types.GetFlightsResponse, error)
	Healthy(ctx context.Context) bool
}

// RateLimiter decides whether a client may make another request
type RateLimiter interface {
	Allow(ctx context.Context, client string, limit int) (bool, error)
}

// Config holds configuration for the API server.
type Config struct {
	AllowedOrigin      string
	RateLimitPerSecond int
	RequestTimeout     time.Duration
}

// Server serves the discovery HTTP API
type Server struct {
	flights FlightService
	limiter RateLimiter
	stats   *stats.Stats
	logger  *slog.Logger
	cfg     Config
}

// NewServer creates a new API server. A nil limiter disables rate limiting.
func NewServer(flights FlightService, limiter RateLimiter, st *stats.Stats, logger *slog.Logger, cfg Config) *Server {
	if st == nil {
		st = stats.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	return &Server{
		flights: flights,
		limiter: limiter,
		stats:   st,
		logger:  logger,
		cfg:     cfg,
	}
}

// Router returns the configured chi router
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	r.Use(cors(s.cfg.AllowedOrigin))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(authorize)
		r.Use(s.rateLimit)

		r.Get("/uss/flights", s.handleFlights(false))
		r.Get("/uss/demo/flights", s.handleFlights(true))
	})

	return r
}
