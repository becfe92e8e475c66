package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port              int
	NatsURL           string
	GISSubjectPrefix  string
	ReadySubject      string
	GISRequestTimeout time.Duration

	RedisAddr          string
	RateLimitPerSecond int
	CORSAllowedOrigin  string

	MaxDiagonalMeters float64

	LogLevel         string
	LogFile          string
	StatsLogInterval time.Duration
}

// Load loads the configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	port, err := intEnv("DOCKER_PORT_REST", 8000)
	if err != nil {
		return nil, err
	}

	timeoutMS, err := intEnv("GIS_REQUEST_TIMEOUT_MS", 5000)
	if err != nil {
		return nil, err
	}

	rate, err := intEnv("REST_REQUEST_LIMIT_PER_SECOND", 2)
	if err != nil {
		return nil, err
	}

	statsInterval, err := intEnv("STATS_LOG_INTERVAL_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	maxDiagonal, err := floatEnv("MAX_DISPLAY_AREA_DIAGONAL_METERS", 7000)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:               port,
		NatsURL:            stringEnv("NATS_URL", "nats://nats:4222"),
		GISSubjectPrefix:   stringEnv("GIS_SUBJECT_PREFIX", "gis"),
		ReadySubject:       stringEnv("DISCOVERY_READY_SUBJECT", "discovery.ready"),
		GISRequestTimeout:  time.Duration(timeoutMS) * time.Millisecond,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RateLimitPerSecond: rate,
		CORSAllowedOrigin:  stringEnv("REST_CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		MaxDiagonalMeters:  maxDiagonal,
		LogLevel:           strings.ToLower(stringEnv("LOG_LEVEL", "info")),
		LogFile:            os.Getenv("LOG_FILE"),
		StatsLogInterval:   time.Duration(statsInterval) * time.Second,
	}, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.NatsURL == "" {
		return fmt.Errorf("NATS_URL must not be empty")
	}
	if c.GISSubjectPrefix == "" {
		return fmt.Errorf("GIS_SUBJECT_PREFIX must not be empty")
	}
	if c.GISRequestTimeout <= 0 {
		return fmt.Errorf("GIS_REQUEST_TIMEOUT_MS must be positive")
	}
	if c.RateLimitPerSecond <= 0 {
		return fmt.Errorf("REST_REQUEST_LIMIT_PER_SECOND must be positive")
	}
	if c.MaxDiagonalMeters <= 0 {
		return fmt.Errorf("MAX_DISPLAY_AREA_DIAGONAL_METERS must be positive")
	}
	if c.StatsLogInterval <= 0 {
		return fmt.Errorf("STATS_LOG_INTERVAL_SECONDS must be positive")
	}
	return nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}
