package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitWindow is the length of one counting window
const RateLimitWindow = time.Second

// RedisClientInterface defines the Redis operations used by our client
type RedisClientInterface interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Close() error
}

// Client manages Redis connections and operations
type Client struct {
	client RedisClientInterface
	now    func() time.Time
}

// New creates a new Redis client
func New(addr string) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(client), nil
}

// NewWithClient creates a new Redis client with a custom RedisClientInterface (useful for testing)
func NewWithClient(client RedisClientInterface) *Client {
	return &Client{client: client, now: time.Now}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Ping checks the Redis connection
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// windowKey returns the counter key of the window containing t
func windowKey(client string, t time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", client, t.Unix())
}

// Allow counts one request for client in the current one second window
// and reports whether it is within limit.
func (c *Client) Allow(ctx context.Context, client string, limit int) (bool, error) {
	key := windowKey(client, c.now())

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count request: %w", err)
	}

	if count == 1 {
		// Keep the key a little past its window so late increments still expire
		if err := c.client.Expire(ctx, key, 2*RateLimitWindow).Err(); err != nil {
			return false, fmt.Errorf("failed to expire counter: %w", err)
		}
	}

	return count <= int64(limit), nil
}
