// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Summary describes one export run. It is rendered as the workbook's
// Summary sheet and stored in the run manifest.
type Summary struct {
	// Query is the query text sent to the API (a UT list becomes UT=(...)).
	Query string `json:"query" yaml:"query"`

	// RetrievedAt is the local time the run started.
	RetrievedAt time.Time `json:"retrieved_at" yaml:"retrieved_at"`

	// Reported is the total the API reported for the query.
	Reported int `json:"reported" yaml:"reported"`

	// Records is the number of rows written per data sheet.
	Records int `json:"records" yaml:"records"`

	// RecordLinks reports whether the Web of Science Record column was
	// written as hyperlinks.
	RecordLinks bool `json:"record_links" yaml:"record_links"`

	// LinkNote is the human-readable hyperlink policy decision.
	LinkNote string `json:"link_note" yaml:"link_note"`

	AuthorLimit AuthorLimit `json:"author_limit" yaml:"author_limit"`

	// CSVPath is set when the subset CSV was written.
	CSVPath string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`

	// Truncations lists cells cut to the spreadsheet text limit.
	Truncations []Truncation `json:"truncations,omitempty" yaml:"truncations,omitempty"`
}

// Truncation records which rows of one column were cut to fit a cell.
type Truncation struct {
	Column string   `json:"column" yaml:"column"`
	UTs    []string `json:"uts" yaml:"uts"`
}
