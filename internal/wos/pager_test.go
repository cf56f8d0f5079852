// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveAllPages(t *testing.T) {
	f := &fakeAPI{total: 120}
	c := newTestClient(t, f)

	var seen []Progress
	res, err := c.Retrieve(context.Background(), "PY=2020", func(p Progress) { seen = append(seen, p) })
	require.NoError(t, err)

	assert.Equal(t, 120, res.Total)
	require.Len(t, res.Records, 120)
	assert.Equal(t, "WOS:000000000000001", res.Records[0].UID)
	assert.Equal(t, "WOS:000000000000120", res.Records[119].UID)

	// Pages 1..3 and nothing more once the total is reached.
	require.Len(t, f.requests, 3)
	for i, r := range f.requests {
		assert.Equal(t, i+1, r.page)
	}

	assert.Equal(t, []Progress{
		{Batch: 1, Batches: 3, Retrieved: 50, Total: 120},
		{Batch: 2, Batches: 3, Retrieved: 100, Total: 120},
		{Batch: 3, Batches: 3, Retrieved: 120, Total: 120},
	}, seen)
}

func TestRetrieveExactMultiple(t *testing.T) {
	f := &fakeAPI{total: 100}
	c := newTestClient(t, f)

	res, err := c.Retrieve(context.Background(), "PY=2020", nil)
	require.NoError(t, err)
	assert.Len(t, res.Records, 100)
	assert.Len(t, f.requests, 2)
}

func TestRetrieveEmpty(t *testing.T) {
	f := &fakeAPI{total: 0}
	c := newTestClient(t, f)

	res, err := c.Retrieve(context.Background(), "TI=nothing", nil)
	assert.Nil(t, res)
	require.ErrorIs(t, err, ErrEmptyResultSet)
	assert.True(t, IsEmpty(err))
	assert.Len(t, f.requests, 1)
}

func TestRetrieveTooLarge(t *testing.T) {
	f := &fakeAPI{total: 50001}
	c := newTestClient(t, f)

	res, err := c.Retrieve(context.Background(), "PY=2020", nil)
	assert.Nil(t, res)
	require.True(t, IsTooLarge(err), "got %v", err)

	var tooLarge *ResultSetTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 50001, tooLarge.Total)
	assert.Equal(t, MaxRecords, tooLarge.Limit)

	// No page beyond the first is requested.
	assert.Len(t, f.requests, 1)
}

func TestRetrieveAtCeiling(t *testing.T) {
	f := &fakeAPI{total: 120}
	c := newTestClient(t, f, WithMaxRecords(120))

	res, err := c.Retrieve(context.Background(), "PY=2020", nil)
	require.NoError(t, err)
	assert.Len(t, res.Records, 120)
}

func TestRetrieveStopsOnEmptyPage(t *testing.T) {
	f := &fakeAPI{total: 120, short: 60}
	c := newTestClient(t, f)

	res, err := c.Retrieve(context.Background(), "PY=2020", nil)
	require.NoError(t, err)
	assert.Len(t, res.Records, 60)
	assert.Equal(t, 120, res.Total)
	assert.Len(t, f.requests, 3)
}

func TestPagerSequence(t *testing.T) {
	f := &fakeAPI{total: 7}
	c := newTestClient(t, f, WithPageSize(3))
	p := c.Pages("TI=x")

	var sizes []int
	for page, err := range p.All(context.Background()) {
		require.NoError(t, err)
		sizes = append(sizes, len(page.Records))
	}
	assert.Equal(t, []int{3, 3, 1}, sizes)
	assert.Equal(t, 7, p.Retrieved())
	assert.Equal(t, 3, p.Batches())

	// Not restartable.
	_, err := p.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Len(t, f.requests, 3)
}

func TestPagerStopsEarlyWhenConsumerBreaks(t *testing.T) {
	f := &fakeAPI{total: 10}
	c := newTestClient(t, f, WithPageSize(2))

	for range c.Pages("TI=x").All(context.Background()) {
		break
	}
	assert.Len(t, f.requests, 1)
}
