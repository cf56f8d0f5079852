// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"strings"

	"github.com/pdiddy/starter-export/pkg/types"
)

// Separator joins multi-valued cells.
const Separator = "; "

// ellipsis marks authors dropped by an author limit.
const ellipsis = "..."

// limitIndices returns the positions kept under limit: all of them, or the
// first limit followed by the last.
func limitIndices(n int, limit types.AuthorLimit) []int {
	keep := n
	if limit > types.AllAuthors && n > int(limit) {
		keep = int(limit)
	}
	idx := make([]int, 0, keep+1)
	for i := range keep {
		idx = append(idx, i)
	}
	if keep < n {
		idx = append(idx, n-1)
	}
	return idx
}

// limitNames joins names under limit, inserting the ellipsis between the
// leading names and the last one.
func limitNames(names []string, limit types.AuthorLimit) string {
	if limit <= types.AllAuthors || len(names) <= int(limit) {
		return strings.Join(names, Separator)
	}
	head := strings.Join(names[:limit], Separator)
	return head + Separator + ellipsis + Separator + names[len(names)-1]
}

// authorNames returns the non-empty values of pick over people, trimmed and
// in order.
func authorNames(people []types.Person, pick func(types.Person) string) []string {
	var out []string
	for _, p := range people {
		if s := strings.TrimSpace(pick(p)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func wosStandard(p types.Person) string { return p.WOSStandard }
func displayName(p types.Person) string { return p.DisplayName }

// researcherIDs renders "name/rid" pairs for the authors kept under limit.
// Authors without a researcher id are skipped.
func researcherIDs(authors []types.Person, limit types.AuthorLimit) string {
	var pairs []string
	for _, i := range limitIndices(len(authors), limit) {
		a := authors[i]
		rid := strings.TrimSpace(a.ResearcherID)
		if rid == "" {
			continue
		}
		name := strings.TrimSpace(a.DisplayName)
		if name == "" {
			name = strings.TrimSpace(a.WOSStandard)
		}
		if name == "" {
			pairs = append(pairs, rid)
			continue
		}
		pairs = append(pairs, name+"/"+rid)
	}
	return strings.Join(pairs, Separator)
}

// groupNames reads display names from primary, or from fallback when
// primary is empty.
func groupNames(primary, fallback []types.Person) string {
	names := authorNames(primary, displayName)
	if len(names) == 0 {
		names = authorNames(fallback, displayName)
	}
	return strings.Join(names, Separator)
}

// dedupJoin joins values, dropping empties and repeats.
func dedupJoin(values []string) string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return strings.Join(out, Separator)
}
