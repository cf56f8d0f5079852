// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the paced HTTP client used for API requests.
package httputil

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethgrid/pester"
	"golang.org/x/time/rate"

	"github.com/pdiddy/starter-export/pkg/types"
)

// Defaults applied when HTTPConfig leaves a field zero.
const (
	DefaultTimeout   = 60 * time.Second
	DefaultRateLimit = 5.0
	DefaultUserAgent = "starter-export"
)

// Backoff is the wait between attempts when MaxAttempts > 1. Tests override
// this to avoid real sleeps.
var Backoff pester.BackoffStrategy = pester.ExponentialBackoff

// Client sends requests one at a time, paced by a token bucket, and hands
// them to pester for the configured number of attempts. 4xx responses
// other than 429 are never retried.
type Client struct {
	hc        *pester.Client
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the underlying round tripper (for testing).
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.hc.Transport = rt
	}
}

// WithLogger reports failed attempts at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.hc.LogHook = func(e pester.ErrEntry) {
			logger.Debug().
				Int("attempt", e.Attempt).
				Str("url", e.URL).
				Err(e.Err).
				Msg("request attempt failed")
		}
	}
}

// NewClient creates a Client from cfg. A RateLimit of zero or less uses
// DefaultRateLimit; MaxAttempts below 1 means a single attempt.
func NewClient(cfg types.HTTPConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	perSecond := cfg.RateLimit
	if perSecond <= 0 {
		perSecond = DefaultRateLimit
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	hc := pester.New()
	hc.Concurrency = 1
	hc.MaxRetries = max(1, cfg.MaxAttempts)
	hc.Backoff = Backoff
	hc.RetryOnHTTP429 = true
	hc.Timeout = timeout

	c := &Client{
		hc:        hc,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), 1),
		userAgent: ua,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do waits for a pacing token and sends req. The wait honours the
// request's context.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.hc.Do(req)
}
