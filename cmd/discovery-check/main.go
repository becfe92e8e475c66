package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// probe is a single endpoint check
type probe struct {
	name       string
	path       string
	wantStatus int
	wantKeys   []string
}

var probes = []probe{
	{
		name:       "health",
		path:       "/health",
		wantStatus: http.StatusOK,
		wantKeys:   []string{"status"},
	},
	{
		name:       "flights",
		path:       "/uss/flights?view=0.0,0.0,0.0,0.0&recent_positions_duration=10",
		wantStatus: http.StatusOK,
		wantKeys:   []string{"timestamp", "flights", "no_isas_present"},
	},
}

func main() {
	_ = godotenv.Load()

	defaultURL := "http://localhost:8000"
	if port := os.Getenv("DOCKER_PORT_REST"); port != "" {
		defaultURL = "http://localhost:" + port
	}

	baseURL := flag.String("url", defaultURL, "base URL of the discovery service")
	timeout := flag.Duration("timeout", 10*time.Second, "timeout per request")
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	if failed := check(context.Background(), client, *baseURL, os.Stdout); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d check(s) failed\n", failed)
		os.Exit(1)
	}
}

// check runs every probe against baseURL, reports to out and returns the
// number of failed probes
func check(ctx context.Context, client *http.Client, baseURL string, out io.Writer) int {
	baseURL = strings.TrimRight(baseURL, "/")
	failed := 0
	for _, p := range probes {
		status, err := runProbe(ctx, client, baseURL, p)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %-8s %s: %v\n", p.name, p.path, err)
			continue
		}
		fmt.Fprintf(out, "OK   %-8s %s (%d)\n", p.name, p.path, status)
	}
	return failed
}

func runProbe(ctx context.Context, client *http.Client, baseURL string, p probe) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+p.path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != p.wantStatus {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode, fmt.Errorf("status %d, want %d: %s", resp.StatusCode, p.wantStatus, strings.TrimSpace(string(body)))
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.StatusCode, fmt.Errorf("invalid JSON body: %w", err)
	}
	for _, k := range p.wantKeys {
		if _, ok := body[k]; !ok {
			return resp.StatusCode, fmt.Errorf("response missing %q", k)
		}
	}

	return resp.StatusCode, nil
}
