// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import "github.com/pdiddy/starter-export/internal/schema"

// HyperlinkThreshold is the largest row count for which both link columns
// are written as hyperlinks. A sheet holds at most about 65,530 links, so
// two link columns reach the ceiling near half that.
const HyperlinkThreshold = 32765

// LinkPolicy is the per-run hyperlink decision. It is computed once from
// the final row count and applies to every row of both data sheets.
type LinkPolicy struct {
	Rows int
	// RecordLinks reports whether the Web of Science Record column is
	// linked. DOI Link is always linked.
	RecordLinks bool
}

// DecideLinks returns the policy for a run of rows data rows.
func DecideLinks(rows int) LinkPolicy {
	return LinkPolicy{Rows: rows, RecordLinks: rows <= HyperlinkThreshold}
}

// Linked reports whether cells under header are written as hyperlinks.
func (p LinkPolicy) Linked(header string) bool {
	switch header {
	case schema.HeaderDOILink:
		return true
	case schema.HeaderRecordLink:
		return p.RecordLinks
	}
	return false
}

// Note describes the decision for the Summary sheet.
func (p LinkPolicy) Note() string {
	if p.RecordLinks {
		return "Links: DOI + WoS record"
	}
	return "Links: DOI only (limit avoidance)"
}
