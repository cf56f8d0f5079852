// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wos retrieves documents from the Web of Science Starter API.
//
// Retrieval is sequential: one request in flight, pages fetched in order.
// The first page decides whether the run continues; an empty result set or
// a total above the record ceiling stops it before any further request.
package wos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/segmentio/encoding/json"

	"github.com/pdiddy/starter-export/internal/httputil"
	"github.com/pdiddy/starter-export/pkg/types"
)

const (
	// DefaultBaseURL is the Starter API root.
	DefaultBaseURL = "https://api.clarivate.com/apis/wos-starter/v1"

	// DefaultDatabase is the Web of Science Core Collection.
	DefaultDatabase = "WOS"

	// PageSize is the number of records requested per page.
	PageSize = 50

	// MaxRecords is the largest result set the exporter accepts.
	MaxRecords = 50000

	documentsPath = "/documents"
	apiKeyHeader  = "X-ApiKey"
)

// Doer sends HTTP requests. *httputil.Client and *http.Client satisfy it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client queries the documents endpoint.
type Client struct {
	doer       Doer
	apiKey     string
	baseURL    string
	database   string
	pageSize   int
	maxRecords int
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API root (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithDoer sets the HTTP client.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithDatabase sets the db parameter.
func WithDatabase(db string) Option {
	return func(c *Client) {
		if db != "" {
			c.database = db
		}
	}
}

// WithPageSize sets the per-page record count.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMaxRecords sets the result-count ceiling.
func WithMaxRecords(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRecords = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		database:   DefaultDatabase,
		pageSize:   PageSize,
		maxRecords: MaxRecords,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = httputil.NewClient(types.HTTPConfig{})
	}
	return c
}

// NewClientFromConfig creates a client from the api section of the export
// configuration, sending requests through a paced httputil.Client.
func NewClientFromConfig(cfg types.APIConfig, logger zerolog.Logger) *Client {
	return NewClient(cfg.APIKey,
		WithBaseURL(cfg.BaseURL),
		WithDatabase(cfg.Database),
		WithPageSize(cfg.PageSize),
		WithMaxRecords(cfg.MaxRecords),
		WithLogger(logger),
		WithDoer(httputil.NewClient(cfg.HTTPConfig, httputil.WithLogger(logger))),
	)
}

// PageSize returns the per-page record count.
func (c *Client) PageSize() int { return c.pageSize }

// Page is one page of results.
type Page struct {
	// Number is the 1-based page index.
	Number int
	// Total is the result count the API reported for the query.
	Total   int
	Records []types.Record
}

type documentsResponse struct {
	Metadata struct {
		Total *int `json:"total"`
		Page  int  `json:"page"`
		Limit int  `json:"limit"`
	} `json:"metadata"`
	Hits []types.Record `json:"hits"`
}

// FetchPage requests one page of results for query.
func (c *Client) FetchPage(ctx context.Context, query string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("db", c.database)
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(c.pageSize))
	params.Set("page", strconv.Itoa(page))

	reqURL := c.baseURL + documentsPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Int("page", page).Str("query", query).Msg("fetching page")

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, &TransientNetworkError{Page: page, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest:
		return nil, &UnsupportedFieldError{Query: query, Message: errorMessage(resp.Body)}
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, &AuthorizationError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	default:
		return nil, &TransientNetworkError{
			Page:       page,
			StatusCode: resp.StatusCode,
			Err:        errors.New(errorMessage(resp.Body)),
		}
	}

	var body documentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &TransientNetworkError{Page: page, Err: fmt.Errorf("decoding response: %w", err)}
	}

	total := len(body.Hits)
	if body.Metadata.Total != nil {
		total = *body.Metadata.Total
	}
	return &Page{Number: page, Total: total, Records: body.Hits}, nil
}

// errorMessage reads a short excerpt of an error body.
func errorMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	msg := strings.TrimSpace(string(b))
	if msg == "" {
		return "empty response body"
	}
	return msg
}
