package stats

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	stats := New()

	if stats == nil {
		t.Fatal("New() returned nil")
	}

	if stats.TotalRequests != 0 {
		t.Errorf("Expected TotalRequests to be 0, got %d", stats.TotalRequests)
	}

	if stats.FlightsReturned != 0 {
		t.Errorf("Expected FlightsReturned to be 0, got %d", stats.FlightsReturned)
	}

	if time.Since(stats.StartTime) > 5*time.Second {
		t.Error("StartTime should be recent")
	}
}

func TestCounters(t *testing.T) {
	tests := []struct {
		name      string
		increment func(s *Stats)
		value     func(s *Stats) uint64
	}{
		{"total", (*Stats).IncrementTotalRequests, func(s *Stats) uint64 { return s.TotalRequests }},
		{"demo", (*Stats).IncrementDemoRequests, func(s *Stats) uint64 { return s.DemoRequests }},
		{"invalid", (*Stats).IncrementInvalidRequests, func(s *Stats) uint64 { return s.InvalidRequests }},
		{"too large", (*Stats).IncrementAreaTooLarge, func(s *Stats) uint64 { return s.AreaTooLarge }},
		{"backend", (*Stats).IncrementBackendFailures, func(s *Stats) uint64 { return s.BackendFailures }},
		{"translation", (*Stats).IncrementTranslationFailures, func(s *Stats) uint64 { return s.TranslationFailures }},
		{"rate limited", (*Stats).IncrementRateLimited, func(s *Stats) uint64 { return s.RateLimited }},
		{"empty", (*Stats).IncrementEmptyQueries, func(s *Stats) uint64 { return s.EmptyQueries }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.increment(s)
			tt.increment(s)
			tt.increment(s)

			if got := tt.value(s); got != 3 {
				t.Errorf("Expected 3, got %d", got)
			}
		})
	}
}

func TestAddFlightsReturned(t *testing.T) {
	s := New()

	s.AddFlightsReturned(3)
	s.AddFlightsReturned(0)
	s.AddFlightsReturned(-2)
	s.AddFlightsReturned(4)

	if s.FlightsReturned != 7 {
		t.Errorf("Expected FlightsReturned to be 7, got %d", s.FlightsReturned)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.IncrementTotalRequests()
			s.AddProcessingTime(time.Millisecond)
			s.UpdateLastRequestTime()
		}()
	}
	wg.Wait()

	if s.TotalRequests != 50 {
		t.Errorf("Expected TotalRequests to be 50, got %d", s.TotalRequests)
	}
	if s.ProcessingTime != 50*time.Millisecond {
		t.Errorf("Expected ProcessingTime to be 50ms, got %v", s.ProcessingTime)
	}
}

func TestUpdateLastRequestTime(t *testing.T) {
	s := New()
	before := s.LastRequestTime

	time.Sleep(5 * time.Millisecond)
	s.UpdateLastRequestTime()

	if !s.LastRequestTime.After(before) {
		t.Error("LastRequestTime should advance")
	}
}

func TestGetStats(t *testing.T) {
	s := New()
	s.IncrementTotalRequests()
	s.IncrementInvalidRequests()
	s.AddFlightsReturned(2)

	stats := s.GetStats()

	expectedKeys := []string{
		"total_requests", "demo_requests", "invalid_requests", "area_too_large",
		"backend_failures", "translation_failures", "rate_limited",
		"flights_returned", "empty_queries", "last_request_time",
		"processing_time", "uptime",
	}
	for _, key := range expectedKeys {
		if _, exists := stats[key]; !exists {
			t.Errorf("Expected key %s in stats", key)
		}
	}

	if stats["total_requests"] != uint64(1) {
		t.Errorf("Expected total_requests 1, got %v", stats["total_requests"])
	}
	if stats["flights_returned"] != uint64(2) {
		t.Errorf("Expected flights_returned 2, got %v", stats["flights_returned"])
	}
}

func TestString(t *testing.T) {
	s := New()
	s.IncrementTotalRequests()

	str := s.String()
	for _, want := range []string{"Total Requests: 1", "Flights Returned: 0", "Uptime:"} {
		if !strings.Contains(str, want) {
			t.Errorf("Expected %q in String() output:\n%s", want, str)
		}
	}
}

func TestStartLogging_ContextCancellation(t *testing.T) {
	s := New()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.StartLogging(ctx, time.Hour, logger)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StartLogging did not return after cancellation")
	}

	if !strings.Contains(buf.String(), "final statistics") {
		t.Errorf("Expected final statistics log, got %q", buf.String())
	}
}

func TestStartLogging_Ticker(t *testing.T) {
	s := New()
	var mu sync.Mutex
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&lockedWriter{mu: &mu, w: &buf}, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.StartLogging(ctx, 10*time.Millisecond, logger)

	mu.Lock()
	defer mu.Unlock()
	if !strings.Contains(buf.String(), "msg=statistics") {
		t.Errorf("Expected periodic statistics log, got %q", buf.String())
	}
}

type lockedWriter struct {
	mu *sync.Mutex
	w  *bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
