package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Stats tracks flight query statistics
type Stats struct {
	// Request counts
	TotalRequests       uint64
	DemoRequests        uint64
	InvalidRequests     uint64
	AreaTooLarge        uint64
	BackendFailures     uint64
	TranslationFailures uint64
	RateLimited         uint64

	// Result counts
	FlightsReturned uint64
	EmptyQueries    uint64

	// Timing
	StartTime       time.Time
	LastRequestTime time.Time
	ProcessingTime  time.Duration

	mu sync.RWMutex
}

// New creates a new Stats instance
func New() *Stats {
	now := time.Now()
	return &Stats{
		StartTime:       now,
		LastRequestTime: now,
	}
}

// IncrementTotalRequests increments the total requests counter
func (s *Stats) IncrementTotalRequests() {
	atomic.AddUint64(&s.TotalRequests, 1)
}

// IncrementDemoRequests increments the demo requests counter
func (s *Stats) IncrementDemoRequests() {
	atomic.AddUint64(&s.DemoRequests, 1)
}

// IncrementInvalidRequests increments the rejected input counter
func (s *Stats) IncrementInvalidRequests() {
	atomic.AddUint64(&s.InvalidRequests, 1)
}

// IncrementAreaTooLarge increments the oversized area counter
func (s *Stats) IncrementAreaTooLarge() {
	atomic.AddUint64(&s.AreaTooLarge, 1)
}

// IncrementBackendFailures increments the backend failures counter
func (s *Stats) IncrementBackendFailures() {
	atomic.AddUint64(&s.BackendFailures, 1)
}

// IncrementTranslationFailures increments the translation failures counter
func (s *Stats) IncrementTranslationFailures() {
	atomic.AddUint64(&s.TranslationFailures, 1)
}

// IncrementRateLimited increments the rate limited requests counter
func (s *Stats) IncrementRateLimited() {
	atomic.AddUint64(&s.RateLimited, 1)
}

// IncrementEmptyQueries counts successful queries that returned no flights
func (s *Stats) IncrementEmptyQueries() {
	atomic.AddUint64(&s.EmptyQueries, 1)
}

// AddFlightsReturned adds to the number of flights sent to callers
func (s *Stats) AddFlightsReturned(n int) {
	if n > 0 {
		atomic.AddUint64(&s.FlightsReturned, uint64(n))
	}
}

// UpdateLastRequestTime updates the last request time
func (s *Stats) UpdateLastRequestTime() {
	s.mu.Lock()
	s.LastRequestTime = time.Now()
	s.mu.Unlock()
}

// AddProcessingTime adds to the total processing time
func (s *Stats) AddProcessingTime(duration time.Duration) {
	s.mu.Lock()
	s.ProcessingTime += duration
	s.mu.Unlock()
}

// GetStats returns a copy of the current statistics
func (s *Stats) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"total_requests":       atomic.LoadUint64(&s.TotalRequests),
		"demo_requests":        atomic.LoadUint64(&s.DemoRequests),
		"invalid_requests":     atomic.LoadUint64(&s.InvalidRequests),
		"area_too_large":       atomic.LoadUint64(&s.AreaTooLarge),
		"backend_failures":     atomic.LoadUint64(&s.BackendFailures),
		"translation_failures": atomic.LoadUint64(&s.TranslationFailures),
		"rate_limited":         atomic.LoadUint64(&s.RateLimited),
		"flights_returned":     atomic.LoadUint64(&s.FlightsReturned),
		"empty_queries":        atomic.LoadUint64(&s.EmptyQueries),
		"last_request_time":    s.LastRequestTime,
		"processing_time":      s.ProcessingTime,
		"uptime":               time.Since(s.StartTime),
	}
}

// String returns a string representation of the statistics
func (s *Stats) String() string {
	stats := s.GetStats()
	return fmt.Sprintf(
		"Total Requests: %d\n"+
			"Demo Requests: %d\n"+
			"Invalid Requests: %d\n"+
			"Area Too Large: %d\n"+
			"Backend Failures: %d\n"+
			"Translation Failures: %d\n"+
			"Rate Limited: %d\n"+
			"Flights Returned: %d\n"+
			"Empty Queries: %d\n"+
			"Last Request Time: %s\n"+
			"Processing Time: %s\n"+
			"Uptime: %s",
		stats["total_requests"],
		stats["demo_requests"],
		stats["invalid_requests"],
		stats["area_too_large"],
		stats["backend_failures"],
		stats["translation_failures"],
		stats["rate_limited"],
		stats["flights_returned"],
		stats["empty_queries"],
		stats["last_request_time"],
		stats["processing_time"],
		stats["uptime"],
	)
}

// LogValue lets a Stats be passed directly as a slog attribute
func (s *Stats) LogValue() slog.Value {
	stats := s.GetStats()
	attrs := make([]slog.Attr, 0, len(stats))
	for k, v := range stats {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

// StartLogging periodically logs the statistics until ctx is done
func (s *Stats) StartLogging(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("final statistics", "stats", s)
			return
		case <-ticker.C:
			logger.Info("statistics", "stats", s)
		}
	}
}
