// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"context"
	"errors"
	"io"
	"iter"

	"github.com/pdiddy/starter-export/pkg/types"
)

// Pager walks the pages of one query in order. It is lazy and cannot be
// restarted; create a new Pager to run the query again.
type Pager struct {
	client    *Client
	query     string
	next      int
	total     int
	retrieved int
	started   bool
	done      bool
}

// Pages returns a Pager for query.
func (c *Client) Pages(query string) *Pager {
	return &Pager{client: c, query: query, next: 1}
}

// Total is the reported result count, known after the first page.
func (p *Pager) Total() int { return p.total }

// Retrieved is the number of records returned so far.
func (p *Pager) Retrieved() int { return p.retrieved }

// Batches is the expected number of pages, known after the first page.
func (p *Pager) Batches() int {
	size := p.client.pageSize
	return (p.total + size - 1) / size
}

// Next fetches the next page. It returns io.EOF once the retrieved count
// reaches the reported total or the API returns an empty page. The first
// page returns ErrEmptyResultSet when the total is zero and
// *ResultSetTooLargeError when it exceeds the ceiling; either ends the
// sequence.
func (p *Pager) Next(ctx context.Context) (*Page, error) {
	if p.done {
		return nil, io.EOF
	}

	page, err := p.client.FetchPage(ctx, p.query, p.next)
	if err != nil {
		p.done = true
		return nil, err
	}

	if !p.started {
		p.started = true
		p.total = page.Total
		switch {
		case p.total <= 0:
			p.done = true
			return nil, ErrEmptyResultSet
		case p.total > p.client.maxRecords:
			p.done = true
			return nil, &ResultSetTooLargeError{Total: p.total, Limit: p.client.maxRecords}
		}
	}

	if len(page.Records) == 0 {
		p.done = true
		return nil, io.EOF
	}

	p.retrieved += len(page.Records)
	p.next++
	if p.retrieved >= p.total {
		p.done = true
	}
	return page, nil
}

// All returns the remaining pages as a sequence. Iteration stops after the
// first error.
func (p *Pager) All(ctx context.Context) iter.Seq2[*Page, error] {
	return func(yield func(*Page, error) bool) {
		for {
			page, err := p.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(page, err) || err != nil {
				return
			}
		}
	}
}

// Progress is reported once per retrieved page.
type Progress struct {
	Batch     int
	Batches   int
	Retrieved int
	Total     int
}

// ProgressFunc observes retrieval progress. It may be nil.
type ProgressFunc func(Progress)

// Result is the outcome of a full retrieval.
type Result struct {
	Query   string
	Total   int
	Records []types.Record
}

// Retrieve fetches every page of query and returns the records in API
// order. It fails fast: any error discards what was fetched so far.
func (c *Client) Retrieve(ctx context.Context, query string, progress ProgressFunc) (*Result, error) {
	pager := c.Pages(query)
	var records []types.Record
	for page, err := range pager.All(ctx) {
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			c.logger.Info().Int("total", pager.Total()).Msg("found records for this search")
		}
		records = append(records, page.Records...)
		if progress != nil {
			progress(Progress{
				Batch:     page.Number,
				Batches:   pager.Batches(),
				Retrieved: len(records),
				Total:     pager.Total(),
			})
		}
	}

	if len(records) == 0 {
		return nil, ErrEmptyResultSet
	}
	if len(records) < pager.Total() {
		c.logger.Warn().
			Int("retrieved", len(records)).
			Int("total", pager.Total()).
			Msg("API returned an empty page before the reported total was reached")
	}
	return &Result{Query: query, Total: pager.Total(), Records: records}, nil
}
