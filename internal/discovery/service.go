// Package discovery answers "which aircraft are in this area" queries by
// validating the caller's window, asking the GIS backend for flights and
// translating them into RID records.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/saviobatista/svc-discovery/internal/gis"
	"github.com/saviobatista/svc-discovery/internal/stats"
	"github.com/saviobatista/svc-discovery/internal/translator"
	"github.com/saviobatista/svc-discovery/internal/types"
	"github.com/saviobatista/svc-discovery/internal/window"
)

// Backend is the GIS backend as seen by the service
type Backend interface {
	GetFlights(ctx context.Context, req gis.FlightsRequest) ([]gis.Flight, error)
	IsReady(ctx context.Context) error
}

// ISAChecker reports whether identification service areas intersect a query
type ISAChecker interface {
	ISAsPresent(ctx context.Context, w window.Window, tr window.TimeRange) (bool, error)
}

// noISAs is the ISA check used until the backend serves one. It never finds any.
type noISAs struct{}

func (noISAs) ISAsPresent(context.Context, window.Window, window.TimeRange) (bool, error) {
	return false, nil
}

// Service runs flight queries and health checks against a Backend
type Service struct {
	backend     Backend
	isas        ISAChecker
	maxDiagonal float64
	stats       *stats.Stats
	logger      *slog.Logger
	now         func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithMaxDiagonal sets the largest diagonal in meters a standard query may cover
func WithMaxDiagonal(meters float64) Option {
	return func(s *Service) { s.maxDiagonal = meters }
}

// WithStats records query outcomes in st
func WithStats(st *stats.Stats) Option {
	return func(s *Service) { s.stats = st }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithISAChecker replaces the default ISA check
func WithISAChecker(c ISAChecker) Option {
	return func(s *Service) { s.isas = c }
}

// New creates a Service using backend
func New(backend Backend, opts ...Option) *Service {
	s := &Service{
		backend:     backend,
		isas:        noISAs{},
		maxDiagonal: window.DefaultMaxDiagonalMeters,
		stats:       stats.New(),
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the statistics the service records into
func (s *Service) Stats() *stats.Stats {
	return s.stats
}

// Standard runs a flight query with the configured area limit
func (s *Service) Standard(ctx context.Context, view string, duration float64) (*types.GetFlightsResponse, error) {
	maxDiagonal := s.maxDiagonal
	return s.Query(ctx, view, duration, &maxDiagonal)
}

// Demo runs a flight query without an area limit
func (s *Service) Demo(ctx context.Context, view string, duration float64) (*types.GetFlightsResponse, error) {
	s.stats.IncrementDemoRequests()
	return s.Query(ctx, view, duration, nil)
}

// Query validates view and duration, fetches the flights seen in the window
// during the last duration seconds and translates them. A nil maxDiagonal
// skips the area check.
func (s *Service) Query(ctx context.Context, view string, duration float64, maxDiagonal *float64) (*types.GetFlightsResponse, error) {
	start := time.Now()
	resp, err := s.query(ctx, view, duration, maxDiagonal)
	s.stats.AddProcessingTime(time.Since(start))
	s.stats.UpdateLastRequestTime()
	s.record(resp, err)
	return resp, err
}

func (s *Service) query(ctx context.Context, view string, duration float64, maxDiagonal *float64) (*types.GetFlightsResponse, error) {
	if err := window.ValidateDuration(duration); err != nil {
		return nil, err
	}

	w, err := window.Parse(view)
	if err != nil {
		return nil, err
	}

	if err := w.CheckArea(maxDiagonal); err != nil {
		return nil, err
	}

	tr := window.Lookback(s.now(), duration)

	var (
		flights     []gis.Flight
		isasPresent bool
	)

	eg, egctx := errgroup.WithContext(ctx)
	if duration > 0 {
		eg.Go(func() error {
			var err error
			flights, err = s.backend.GetFlights(egctx, flightsRequest(w, tr))
			if err != nil {
				s.logger.Error("flight query failed", "error", err, "view", view)
				return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
			}
			return nil
		})
	}
	eg.Go(func() error {
		var err error
		isasPresent, err = s.isas.ISAsPresent(egctx, w, tr)
		if err != nil {
			s.logger.Error("ISA check failed", "error", err, "view", view)
			return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ridFlights, err := translator.Flights(flights, s.logger)
	if err != nil {
		s.logger.Error("flight translation failed", "error", err)
		return nil, err
	}

	return &types.GetFlightsResponse{
		Timestamp:     types.NewTime(s.now()),
		Flights:       ridFlights,
		NoISAsPresent: !isasPresent,
	}, nil
}

// flightsRequest builds the backend request for a window and time range
func flightsRequest(w window.Window, tr window.TimeRange) gis.FlightsRequest {
	b := w.Bound()
	return gis.FlightsRequest{
		WindowMinX: b.Min.Lon(),
		WindowMinY: b.Min.Lat(),
		WindowMaxX: b.Max.Lon(),
		WindowMaxY: b.Max.Lat(),
		TimeStart:  tr.Start,
		TimeEnd:    tr.End,
	}
}

func (s *Service) record(resp *types.GetFlightsResponse, err error) {
	switch {
	case err == nil:
		if len(resp.Flights) == 0 {
			s.stats.IncrementEmptyQueries()
		}
		s.stats.AddFlightsReturned(len(resp.Flights))
	case errors.Is(err, ErrInvalidInput):
		s.stats.IncrementInvalidRequests()
	case errors.Is(err, ErrAreaTooLarge):
		s.stats.IncrementAreaTooLarge()
	case errors.Is(err, ErrBackendUnavailable):
		s.stats.IncrementBackendFailures()
	case errors.Is(err, ErrInternalTranslation):
		s.stats.IncrementTranslationFailures()
	}
}

// Healthy reports whether the backend answers its liveness probe
func (s *Service) Healthy(ctx context.Context) bool {
	if err := s.backend.IsReady(ctx); err != nil {
		s.logger.Warn("backend not ready", "error", err)
		return false
	}
	return true
}
