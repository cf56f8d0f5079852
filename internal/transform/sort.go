// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"cmp"
	"slices"

	"github.com/pdiddy/starter-export/pkg/types"
)

// SortDescription is the human-readable form of the SortRecords ordering.
const SortDescription = "Sorted by: Times Cited ↓, Publication Year ↓"

// SortRecords orders records in place by times cited, then publication
// year, both descending. Missing or non-numeric values sort below every
// real value. Ties keep their retrieval order.
func SortRecords(records []types.Record) {
	slices.SortStableFunc(records, func(a, b types.Record) int {
		if c := cmp.Compare(sortKey(b.TimesCited()), sortKey(a.TimesCited())); c != 0 {
			return c
		}
		return cmp.Compare(sortKey(b.PublishYear()), sortKey(a.PublishYear()))
	})
}

func sortKey(n int, ok bool) int {
	if !ok {
		return -1
	}
	return n
}
