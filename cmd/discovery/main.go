package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saviobatista/svc-discovery/internal/api"
	"github.com/saviobatista/svc-discovery/internal/config"
	"github.com/saviobatista/svc-discovery/internal/discovery"
	"github.com/saviobatista/svc-discovery/internal/logging"
	"github.com/saviobatista/svc-discovery/internal/nats"
	"github.com/saviobatista/svc-discovery/internal/redis"
	"github.com/saviobatista/svc-discovery/internal/stats"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "discovery failed: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic and can be tested
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFile, os.Stderr)
	defer logger.Close()
	logger.LogStartup("discovery")

	gisClient, err := nats.New(cfg.NatsURL, cfg.GISSubjectPrefix, cfg.GISRequestTimeout, logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to create NATS client: %w", err)
	}
	defer gisClient.Close()

	sub, err := gisClient.ServeReady(cfg.ReadySubject)
	if err != nil {
		return fmt.Errorf("failed to serve ready probes: %w", err)
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("failed to stop ready responder", "error", err)
		}
	}()

	var limiter api.RateLimiter
	redisClient := newRateLimiter(cfg.RedisAddr, logger.Logger)
	if redisClient != nil {
		limiter = redisClient
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("error closing redis client", "error", err)
			}
		}()
	}

	st := stats.New()
	svc := discovery.New(gisClient,
		discovery.WithMaxDiagonal(cfg.MaxDiagonalMeters),
		discovery.WithStats(st),
		discovery.WithLogger(logger.Logger),
	)
	server := api.NewServer(svc, limiter, st, logger.Logger, api.Config{
		AllowedOrigin:      cfg.CORSAllowedOrigin,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go st.StartLogging(ctx, cfg.StatsLogInterval, logger.Logger)

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}

	logger.Info("discovery API listening",
		"addr", ln.Addr().String(),
		"gis_prefix", cfg.GISSubjectPrefix,
		"rate_limit", limiter != nil,
	)

	return serve(ctx, ln, &http.Server{
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}, logger.Logger)
}

// newRateLimiter connects to Redis when addr is set. Without Redis the
// API runs unlimited.
func newRateLimiter(addr string, logger *slog.Logger) *redis.Client {
	if addr == "" {
		logger.Info("rate limiting disabled, REDIS_ADDR not set")
		return nil
	}

	client, err := redis.New(addr)
	if err != nil {
		logger.Warn("rate limiting disabled, Redis unavailable", "addr", addr, "error", err)
		return nil
	}
	return client
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully
func serve(ctx context.Context, ln net.Listener, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
