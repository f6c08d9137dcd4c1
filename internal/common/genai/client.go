// Package genai is the narrow client for the chat-completion collaborator.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"takeout-recommender/internal/common/config"
	commonhttp "takeout-recommender/internal/common/http"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/common/metrics"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrNotConfigured = errors.New("AI credential is not configured")
	ErrTransport     = errors.New("AI completion failed")
	ErrTimeout       = errors.New("AI completion timed out")
	ErrCircuitOpen   = errors.New("AI circuit breaker open")
	ErrEmptyReply    = errors.New("AI returned an empty completion")
)

// Purpose labels a completion call in metrics and logs.
type Purpose string

const (
	PurposeChat   Purpose = "chat"
	PurposeReason Purpose = "reason"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Purpose     Purpose
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Completer returns the completion text or an error wrapping ErrTransport.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type Config struct {
	BaseURL            string
	APIKey             string
	Model              string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

func ConfigFrom(cfg config.AIConfig) Config {
	return Config{
		BaseURL:            cfg.BaseURL,
		APIKey:             cfg.APIKey,
		Model:              cfg.Model,
		Timeout:            cfg.AITimeout(),
		BreakerMaxFailures: cfg.Breaker.MaxFailures,
		BreakerOpenTimeout: config.GetDuration(cfg.Breaker.OpenTimeout),
	}
}

// Client keeps one circuit breaker per Purpose so that failing reason calls
// never short-circuit a chat turn.
type Client struct {
	cfg    Config
	http   *commonhttp.Client
	logger logger.Logger

	mu       sync.Mutex
	breakers map[Purpose]*gobreaker.CircuitBreaker[string]
}

// NewClient fails with ErrNotConfigured when no API key is set.
func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = 5
	}
	if cfg.BreakerOpenTimeout <= 0 {
		cfg.BreakerOpenTimeout = 30 * time.Second
	}

	c := &Client{
		cfg:      cfg,
		http:     commonhttp.NewClient(cfg.Timeout),
		logger:   log.With(map[string]interface{}{"component": "genai"}),
		breakers: make(map[Purpose]*gobreaker.CircuitBreaker[string]),
	}
	c.breakerFor(PurposeChat)
	c.breakerFor(PurposeReason)
	return c, nil
}

func (c *Client) breakerFor(p Purpose) *gobreaker.CircuitBreaker[string] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[p]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "ai-completion-" + string(p),
		MaxRequests: 1,
		Timeout:     c.cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= c.cfg.BreakerMaxFailures
		},
		// Caller cancellations count neither way.
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})
	c.breakers[p] = cb
	return cb
}

type completionBody struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues one request bounded by the configured timeout. No retries.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	text, err := c.breakerFor(req.Purpose).Execute(func() (string, error) {
		return c.send(ctx, req)
	})
	metrics.AICallDuration.WithLabelValues(string(req.Purpose)).Observe(time.Since(start).Seconds())

	if err != nil {
		err = c.classify(ctx, err)
		metrics.AICalls.WithLabelValues(string(req.Purpose), outcomeOf(err)).Inc()
		return "", err
	}

	metrics.AICalls.WithLabelValues(string(req.Purpose), "success").Inc()
	return text, nil
}

func (c *Client) send(ctx context.Context, req CompletionRequest) (string, error) {
	payload, err := json.Marshal(completionBody{
		Model:       c.cfg.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", ErrTransport, err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	var resp completionResponse
	if err := c.http.DoJSON(ctx, httpReq, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: %w", ErrTransport, ErrEmptyReply)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) classify(ctx context.Context, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrTransport, ErrCircuitOpen)
	}

	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	if !errors.Is(err, ErrTransport) {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return err
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	default:
		return "error"
	}
}

// Answered reports whether err came from a reply the collaborator did send,
// a non-2xx status or an empty completion, rather than a failed exchange.
func Answered(err error) bool {
	var statusErr *commonhttp.StatusError
	return errors.As(err, &statusErr) || errors.Is(err, ErrEmptyReply)
}
