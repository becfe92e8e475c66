package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/saviobatista/svc-discovery/internal/gis"
)

const (
	// HeaderRequestID carries the correlation id of a backend request
	HeaderRequestID = "Request-Id"

	DefaultTimeout = 5 * time.Second
)

// ErrBackend is returned when the backend answers with an error message
var ErrBackend = errors.New("gis backend error")

// Client represents a NATS client for the GIS backend
type Client struct {
	conn    *nats.Conn
	prefix  string
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a new NATS client
func New(url, prefix string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	nc, err := nats.Connect(url,
		nats.Name("svc-discovery"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return NewWithConn(nc, prefix, timeout, logger), nil
}

// NewWithConn wraps an existing connection
func NewWithConn(nc *nats.Conn, prefix string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		conn:    nc,
		prefix:  prefix,
		timeout: timeout,
		logger:  logger,
	}
}

// Subject returns the full backend subject for name
func (c *Client) Subject(name string) string {
	if c.prefix == "" {
		return name
	}
	return c.prefix + "." + name
}

// GetFlights asks the backend for the flights inside a bounding box and time range
func (c *Client) GetFlights(ctx context.Context, req gis.FlightsRequest) ([]gis.Flight, error) {
	var resp gis.FlightsResponse
	if err := c.request(ctx, c.Subject(gis.SubjectFlights), req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrBackend, resp.Error)
	}
	return resp.Flights, nil
}

// IsReady probes the backend; a nil error means the backend answered ready
func (c *Client) IsReady(ctx context.Context) error {
	var resp gis.ReadyResponse
	if err := c.request(ctx, c.Subject(gis.SubjectReady), gis.ReadyRequest{}, &resp); err != nil {
		return err
	}
	if !resp.Ready {
		return fmt.Errorf("%w: not ready", ErrBackend)
	}
	return nil
}

// ServeReady answers readiness probes for this service on subject
func (c *Client) ServeReady(subject string) (*nats.Subscription, error) {
	data, err := msgpack.Marshal(gis.ReadyResponse{Ready: true})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ready response: %w", err)
	}

	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		if msg.Reply == "" {
			return
		}
		if err := msg.Respond(data); err != nil {
			c.logger.Warn("failed to answer ready probe", "subject", subject, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	return sub, nil
}

func (c *Client) request(ctx context.Context, subject string, in, out any) error {
	if c.conn == nil {
		return nats.ErrConnectionClosed
	}

	data, err := msgpack.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	msg := nats.NewMsg(subject)
	msg.Data = data
	id := uuid.NewString()
	msg.Header.Set(HeaderRequestID, id)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	reply, err := c.conn.RequestMsgWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("request %s (%s): %w", subject, id, err)
	}
	c.logger.Debug("backend request", "subject", subject, "request_id", id, "duration", time.Since(start))

	if err := msgpack.Unmarshal(reply.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal reply from %s: %w", subject, err)
	}
	return nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
