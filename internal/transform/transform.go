// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform projects Starter API records onto the Subset and Core
// column layouts and orders them for export. Everything here is pure: no
// network, no files.
package transform

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/starter-export/internal/schema"
	"github.com/pdiddy/starter-export/pkg/types"
)

// URL prefixes for the two link columns.
const (
	DOIResolver     = "https://doi.org/"
	FullRecordBase  = "https://www.webofscience.com/wos/woscc/full-record/"
	meetingAbstract = "Yes"
)

// Options configures a Transformer.
type Options struct {
	// AuthorLimit caps Authors, Author Full Names and Researcher Ids.
	AuthorLimit types.AuthorLimit

	// ExportDate fills the Date of Export column. Zero means today.
	ExportDate time.Time
}

// Transformer maps records to rows. It is safe for concurrent use.
type Transformer struct {
	limit      types.AuthorLimit
	exportDate string
	subset     []schema.Field
	core       []schema.Field
}

// New creates a Transformer for the standard Subset and Core layouts.
func New(opts Options) *Transformer {
	date := opts.ExportDate
	if date.IsZero() {
		date = time.Now()
	}
	return &Transformer{
		limit:      opts.AuthorLimit,
		exportDate: date.Format(time.DateOnly),
		subset:     schema.Subset(),
		core:       schema.Core(),
	}
}

// Rows projects every record onto both layouts, keeping record order.
func (t *Transformer) Rows(records []types.Record) (subset, core []types.Row) {
	subset = make([]types.Row, len(records))
	core = make([]types.Row, len(records))
	for i := range records {
		subset[i] = t.Row(&records[i], t.subset)
		core[i] = t.Row(&records[i], t.core)
	}
	return subset, core
}

// Row projects r onto fields. Empty values become schema.Blank so no cell
// is ever structurally empty.
func (t *Transformer) Row(r *types.Record, fields []schema.Field) types.Row {
	row := make(types.Row, len(fields))
	for i, f := range fields {
		var v string
		switch f.Kind {
		case schema.Direct:
			v = schema.Value(r, f.Path)
		case schema.Derived:
			v = t.derive(r, f.Header)
		}
		if strings.TrimSpace(v) == "" {
			v = schema.Blank
		}
		row[i] = v
	}
	return row
}

func (t *Transformer) derive(r *types.Record, header string) string {
	n := &r.Names
	switch header {
	case schema.HeaderPublicationType:
		return PublicationType(r.SourceTypes)
	case schema.HeaderAuthors:
		return limitNames(authorNames(n.Authors, wosStandard), t.limit)
	case "Author Full Names":
		return limitNames(authorNames(n.Authors, displayName), t.limit)
	case "Book Authors", "Book Author Full Names":
		return strings.Join(authorNames(n.Books, displayName), Separator)
	case "Book Editors":
		return strings.Join(authorNames(n.BookEditors, displayName), Separator)
	case "Book Group Authors":
		return strings.Join(authorNames(n.BookCorp, displayName), Separator)
	case "Group Authors":
		return groupNames(n.Corp, n.GroupAuthors)
	case "Researcher Ids":
		return researcherIDs(n.Authors, t.limit)
	case "Document Type":
		if len(r.SourceTypes) > 0 {
			return dedupJoin(r.SourceTypes)
		}
		return dedupJoin(r.Types)
	case "Author Keywords":
		return dedupJoin(r.Keywords.AuthorKeywords)
	case "Times Cited, WoS Core":
		cited, _ := r.TimesCited()
		return strconv.Itoa(cited)
	case "Meeting Abstract":
		if slices.Contains(r.SourceTypes, SourceTypeMeetingAbstract) {
			return meetingAbstract
		}
		return ""
	case schema.HeaderDOILink:
		return DOILink(r.Identifiers.DOI.String())
	case "Date of Export":
		return t.exportDate
	case schema.HeaderRecordLink:
		return RecordLink(r.UID)
	}
	return ""
}

// DOILink returns the resolver URL for doi, or "" when doi is empty.
func DOILink(doi string) string {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return ""
	}
	return DOIResolver + doi
}

// RecordLink returns the Web of Science full-record URL for a UT.
func RecordLink(ut string) string {
	if ut == "" {
		return ""
	}
	return FullRecordBase + ut
}
