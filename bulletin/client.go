package bulletin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
	"gopkg.in/resty.v1"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/config"
)

// StatusError reports a non-retryable HTTP status from the bulletin endpoint
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.Code, e.URL)
}

// Client fetches the alert bulletin envelope over HTTP
type Client struct {
	url             string
	httpClient      *resty.Client
	maxRetries      int
	initialInterval time.Duration
	limiter         *rate.Limiter
}

// Option configures a Client
type Option func(*Client)

// WithTimeout bounds each HTTP attempt
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.SetTimeout(d)
		}
	}
}

// WithMaxRetries sets how many times a transient failure is retried
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithInitialInterval sets the first backoff delay
func WithInitialInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.initialInterval = d
		}
	}
}

// WithRateLimit allows at most perMinute fetches per minute; 0 disables the limit
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
	}
}

// NewClient creates a bulletin client for url
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:             url,
		httpClient:      resty.New().SetTimeout(10*time.Second).SetHeader("Accept", "application/json"),
		maxRetries:      3,
		initialInterval: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a bulletin client from the bulletin section of the config
func NewClientFromConfig(cfg config.BulletinConfig) *Client {
	return NewClient(cfg.URL,
		WithTimeout(time.Duration(cfg.TimeoutMS)*time.Millisecond),
		WithMaxRetries(cfg.MaxRetries),
		WithRateLimit(cfg.RequestsPerMinute),
	)
}

// URL returns the bulletin endpoint
func (c *Client) URL() string { return c.url }

// Fetch returns the raw envelope bytes, retrying transient failures
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	b := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(c.initialInterval),
				backoff.WithMaxInterval(30*time.Second),
			),
			uint64(c.maxRetries),
		),
		ctx,
	)
	return backoff.RetryNotifyWithData(
		func() ([]byte, error) { return c.fetchOnce(ctx) },
		b,
		func(err error, d time.Duration) {
			log.Printf("bulletin: fetch failed, retrying in %s: %v", d, err)
		},
	)
}

func (c *Client) fetchOnce(ctx context.Context) ([]byte, error) {
	resp, err := c.httpClient.R().SetContext(ctx).Get(c.url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", c.url, err)
	}
	code := resp.StatusCode()
	switch {
	case code == http.StatusOK:
		return resp.Body(), nil
	case code == http.StatusTooManyRequests || code >= 500:
		return nil, &StatusError{URL: c.url, Code: code}
	default:
		return nil, backoff.Permanent(&StatusError{URL: c.url, Code: code})
	}
}

// FetchContent fetches the envelope and returns the bulletin HTML
func (c *Client) FetchContent(ctx context.Context) (string, error) {
	data, err := c.Fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("bulletin: fetch: %w", err)
	}
	return DecodeEnvelope(data)
}
