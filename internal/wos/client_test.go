// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves total synthetic records in pages of the requested limit.
type fakeAPI struct {
	mu       sync.Mutex
	total    int
	short    int // when > 0, stop returning hits after this many records
	requests []apiRequest
	status   int
	body     string
}

type apiRequest struct {
	page  int
	limit int
	q     string
	db    string
	key   string
}

func (f *fakeAPI) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		assert.Equal(t, "/documents", r.URL.Path)
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))
		f.requests = append(f.requests, apiRequest{page: page, limit: limit, q: q.Get("q"), db: q.Get("db"), key: r.Header.Get("X-ApiKey")})

		if f.status != 0 {
			w.WriteHeader(f.status)
			fmt.Fprint(w, f.body)
			return
		}

		available := f.total
		if f.short > 0 {
			available = f.short
		}
		start := (page - 1) * limit
		end := min(start+limit, available)
		hits := []map[string]any{}
		for i := start; i < end; i++ {
			hits = append(hits, map[string]any{
				"uid":    fmt.Sprintf("WOS:%015d", i+1),
				"title":  fmt.Sprintf("Record %d", i+1),
				"source": map[string]any{"publishYear": 2000 + i%20, "volume": "86A"},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"metadata": map[string]any{"total": f.total, "page": page, "limit": limit},
			"hits":     hits,
		})
	}
}

func newTestClient(t *testing.T, f *fakeAPI, opts ...Option) *Client {
	t.Helper()
	ts := httptest.NewServer(f.handler(t))
	t.Cleanup(ts.Close)
	opts = append([]Option{WithBaseURL(ts.URL), WithDoer(ts.Client())}, opts...)
	return NewClient("test-key", opts...)
}

func TestFetchPage(t *testing.T) {
	f := &fakeAPI{total: 3}
	c := newTestClient(t, f)

	page, err := c.FetchPage(context.Background(), "TS=(graphs)", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Records, 3)
	assert.Equal(t, "86A", page.Records[0].Source.Volume.String())

	require.Len(t, f.requests, 1)
	got := f.requests[0]
	assert.Equal(t, apiRequest{page: 1, limit: PageSize, q: "TS=(graphs)", db: "WOS", key: "test-key"}, got)
}

func TestFetchPageMissingTotal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"hits": [{"uid": "WOS:1"}, {"uid": "WOS:2"}]}`)
	}))
	defer ts.Close()

	c := NewClient("k", WithBaseURL(ts.URL), WithDoer(ts.Client()))
	page, err := c.FetchPage(context.Background(), "TI=x", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestFetchPageIrregularLists(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"metadata": {"total": 2}, "hits": [
		  {"uid": "WOS:1", "names": {"authors": [{"displayName": "Doe, Jane"}]}},
		  {"uid": "WOS:2",
		   "names": {"authors": {"displayName": "Solo, Author", "wosStandard": "Solo, A"}},
		   "keywords": {"authorKeywords": "single keyword"},
		   "sourceTypes": "Article"}
		]}`)
	}))
	defer ts.Close()

	c := NewClient("k", WithBaseURL(ts.URL), WithDoer(ts.Client()))
	page, err := c.FetchPage(context.Background(), "TI=x", 1)
	require.NoError(t, err)
	require.Len(t, page.Records, 2)

	solo := page.Records[1]
	require.Len(t, solo.Names.Authors, 1)
	assert.Equal(t, "Solo, A", solo.Names.Authors[0].WOSStandard)
	assert.Equal(t, []string{"single keyword"}, []string(solo.Keywords.AuthorKeywords))
	assert.Equal(t, []string{"Article"}, []string(solo.SourceTypes))
}

func TestFetchPageErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"bad request", http.StatusBadRequest, `{"message":"bad field XX"}`, IsUnsupportedField},
		{"unauthorized", http.StatusUnauthorized, `{"message":"invalid key"}`, IsAuthError},
		{"forbidden", http.StatusForbidden, "", IsAuthError},
		{"server error", http.StatusInternalServerError, "boom", IsTransient},
		{"not found", http.StatusNotFound, "", IsTransient},
		{"undecodable", http.StatusOK, "<html>", IsTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAPI{status: tt.status, body: tt.body}
			c := newTestClient(t, f)
			_, err := c.FetchPage(context.Background(), "XX=foo", 1)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error type %T: %v", err, err)
		})
	}
}

func TestUnsupportedFieldListsAllowedFields(t *testing.T) {
	f := &fakeAPI{status: http.StatusBadRequest}
	c := newTestClient(t, f)
	_, err := c.Retrieve(context.Background(), "AB=pie", nil)

	var ufe *UnsupportedFieldError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, AllowedFields, ufe.AllowedFields())
	assert.Contains(t, err.Error(), "AI, AU, CS, DO, DOP")
	assert.False(t, IsAuthError(err), "field error must be distinct from auth error")
}

func TestTransportErrorIsTransient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := ts.URL
	ts.Close()

	c := NewClient("k", WithBaseURL(base), WithDoer(http.DefaultClient))
	_, err := c.FetchPage(context.Background(), "TI=x", 1)
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestFetchPageHonoursContext(t *testing.T) {
	f := &fakeAPI{total: 1}
	c := newTestClient(t, f)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchPage(ctx, "TI=x", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "empty response body", errorMessage(strings.NewReader("  ")))
	assert.Equal(t, "bad", errorMessage(strings.NewReader(" bad\n")))
}
