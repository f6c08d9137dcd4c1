// internal/common/camunda/client.go
package camunda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"takeout-recommender/internal/common/errors"

	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Client owns the gateway connection shared by the chat-recommend and
// filter-restaurants job workers.
type Client struct {
	client zbc.Client
	config *ClientConfig
}

type ClientConfig struct {
	GatewayAddress         string
	UsePlaintextConnection bool
	ConnectionTimeout      time.Duration
	Backoff                Backoff
}

// Backoff doubles Base per attempt up to Max.
type Backoff struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
}

func (b Backoff) delay(attempt int) time.Duration {
	d := b.Base << attempt
	if d <= 0 || d > b.Max {
		return b.Max
	}
	return d
}

var DefaultBackoff = Backoff{Attempts: 3, Base: time.Second, Max: 10 * time.Second}

func NewClient(address string) (*Client, error) {
	return NewClientWithConfig(&ClientConfig{
		GatewayAddress:         address,
		UsePlaintextConnection: true,
		ConnectionTimeout:      10 * time.Second,
		Backoff:                DefaultBackoff,
	})
}

// NewClientWithConfig dials the gateway and fails unless a topology request
// succeeds within the backoff budget.
func NewClientWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg.Backoff.Attempts <= 0 {
		cfg.Backoff = DefaultBackoff
	}

	zeebeClient, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         cfg.GatewayAddress,
		UsePlaintextConnection: cfg.UsePlaintextConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("create zeebe client: %w", err)
	}

	c := &Client{client: zeebeClient, config: cfg}
	if _, err := c.topology(context.Background()); err != nil {
		zeebeClient.Close()
		return nil, fmt.Errorf("zeebe gateway %s unreachable: %w", cfg.GatewayAddress, err)
	}
	return c, nil
}

func (c *Client) GetClient() zbc.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}

// HealthCheck backs the zeebe readiness check.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectionTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}

func (c *Client) topology(ctx context.Context) (*pb.TopologyResponse, error) {
	return withBackoff(ctx, c.config.Backoff, "topology", func(ctx context.Context) (*pb.TopologyResponse, error) {
		ctx, cancel := context.WithTimeout(ctx, c.config.ConnectionTimeout)
		defer cancel()
		return c.client.NewTopologyCommand().Send(ctx)
	})
}

// withBackoff retries transient gateway failures. Other failures return at once.
func withBackoff[T any](ctx context.Context, b Backoff, operation string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !transient(err) || attempt+1 >= b.Attempts {
			return zero, gatewayError(err, operation, attempt+1)
		}

		select {
		case <-time.After(b.delay(attempt)):
		case <-ctx.Done():
			return zero, gatewayError(ctx.Err(), operation, attempt+1)
		}
	}
}

var transientPhrases = []string{
	"connection refused",
	"connection reset",
	"timeout",
	"deadline exceeded",
	"unavailable",
	"unreachable",
	"broken pipe",
}

func transient(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, phrase := range transientPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

func gatewayError(err error, operation string, attempts int) error {
	stdErr := errors.NewInternalError(fmt.Errorf("zeebe %s failed after %d attempt(s): %w", operation, attempts, err))
	stdErr.Retryable = transient(err)
	return stdErr.WithMetadata("operation", operation)
}
