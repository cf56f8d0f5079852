// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/starter-export/internal/schema"
	"github.com/pdiddy/starter-export/pkg/types"
)

var exportDay = time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)

func sampleRecord() types.Record {
	return types.Record{
		UID:         "WOS:000123456700001",
		Title:       "Graph neural networks for molecules",
		SourceTypes: []string{"Article", "Meeting Abstract", "Article"},
		Source: types.Source{
			SourceTitle:  "JOURNAL OF CHEMICAL PHYSICS",
			PublishYear:  "2021",
			PublishMonth: "MAR",
			Volume:       "86A",
			Issue:        "3",
			Supplement:   "+",
			Pages:        types.Pages{Begin: "1", End: "12", Count: "12"},
		},
		Names: types.Names{
			Authors: []types.Person{
				{DisplayName: "Smith, John", WOSStandard: "Smith, J", ResearcherID: "A-1234-2010"},
				{DisplayName: "Doe, Jane", WOSStandard: "Doe, J"},
				{DisplayName: "Roe, Richard", WOSStandard: "Roe, R", ResearcherID: "B-5678-2012"},
			},
			Books:        []types.Person{{DisplayName: "Book, Author"}},
			GroupAuthors: []types.Person{{DisplayName: "Consortium X"}},
		},
		Citations:   []types.Citation{{DB: "WOS", Count: "42"}},
		Identifiers: types.Identifiers{DOI: "10.1000/xyz123", ISSN: "0021-9606", PMID: "123456"},
		Keywords:    types.Keywords{AuthorKeywords: []string{"graphs", "chemistry", "graphs"}},
	}
}

// cell returns the value of header in a row laid out by fields.
func cell(t *testing.T, fields []schema.Field, row types.Row, header string) string {
	t.Helper()
	i := schema.Index(schema.Headers(fields), header)
	require.GreaterOrEqual(t, i, 0, "header %q not in layout", header)
	return row[i]
}

func TestRowCore(t *testing.T) {
	tr := New(Options{ExportDate: exportDay})
	r := sampleRecord()
	core := schema.Core()
	row := tr.Row(&r, core)
	require.Len(t, row, len(core))

	want := map[string]string{
		"Publication Type":       "J",
		"Authors":                "Smith, J; Doe, J; Roe, R",
		"Author Full Names":      "Smith, John; Doe, Jane; Roe, Richard",
		"Book Authors":           "Book, Author",
		"Book Author Full Names": "Book, Author",
		"Group Authors":          "Consortium X",
		"Researcher Ids":         "Smith, John/A-1234-2010; Roe, Richard/B-5678-2012",
		"Document Type":          "Article; Meeting Abstract",
		"Author Keywords":        "graphs; chemistry",
		"Times Cited, WoS Core":  "42",
		"Volume":                 "86A",
		"Supplement":             "+",
		"Meeting Abstract":       "Yes",
		"DOI Link":               "https://doi.org/10.1000/xyz123",
		"Date of Export":         "2026-03-14",
		"UT (Unique WOS ID)":     "WOS:000123456700001",
		"Web of Science Record":  "https://www.webofscience.com/wos/woscc/full-record/WOS:000123456700001",
		"ORCIDs":                 schema.Blank,
		"Abstract":               schema.Blank,
		"Book Editors":           schema.Blank,
	}
	for header, v := range want {
		assert.Equal(t, v, cell(t, core, row, header), header)
	}
}

func TestRowNeverEmpty(t *testing.T) {
	tr := New(Options{ExportDate: exportDay})
	var empty types.Record
	for _, fields := range [][]schema.Field{schema.Core(), schema.Subset()} {
		for i, v := range tr.Row(&empty, fields) {
			assert.NotEqual(t, "", v, "column %q", fields[i].Header)
		}
	}
}

func TestRowKeepsTextVerbatim(t *testing.T) {
	tr := New(Options{})
	r := types.Record{Source: types.Source{Volume: "86A", Issue: "007", Supplement: "+"}}
	core := schema.Core()
	row := tr.Row(&r, core)
	assert.Equal(t, "86A", cell(t, core, row, "Volume"))
	assert.Equal(t, "007", cell(t, core, row, "Issue"))
	assert.Equal(t, "+", cell(t, core, row, "Supplement"))
}

func TestRowsAligned(t *testing.T) {
	tr := New(Options{ExportDate: exportDay})
	a, b := sampleRecord(), sampleRecord()
	b.UID = "WOS:2"
	subset, core := tr.Rows([]types.Record{a, b})
	require.Len(t, subset, 2)
	require.Len(t, core, 2)

	assert.Equal(t, "WOS:000123456700001", subset[0][0], "UT is the first subset column")
	assert.Equal(t, "WOS:2", subset[1][0])
	assert.Equal(t, "WOS:2", cell(t, schema.Core(), core[1], schema.HeaderUT))
}

func TestAuthorLimit(t *testing.T) {
	r := types.Record{}
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		r.Names.Authors = append(r.Names.Authors, types.Person{
			DisplayName: n + " Full", WOSStandard: n, ResearcherID: "R-" + n,
		})
	}
	core := schema.Core()

	tests := []struct {
		limit       types.AuthorLimit
		authors     string
		researchers string
	}{
		{types.AllAuthors, "A; B; C; D; E", "A Full/R-A; B Full/R-B; C Full/R-C; D Full/R-D; E Full/R-E"},
		{2, "A; B; ...; E", "A Full/R-A; B Full/R-B; E Full/R-E"},
		{5, "A; B; C; D; E", "A Full/R-A; B Full/R-B; C Full/R-C; D Full/R-D; E Full/R-E"},
		{9, "A; B; C; D; E", "A Full/R-A; B Full/R-B; C Full/R-C; D Full/R-D; E Full/R-E"},
	}
	for _, tt := range tests {
		t.Run(tt.limit.String(), func(t *testing.T) {
			row := New(Options{AuthorLimit: tt.limit}).Row(&r, core)
			assert.Equal(t, tt.authors, cell(t, core, row, "Authors"))
			assert.Equal(t, tt.researchers, cell(t, core, row, "Researcher Ids"))
			full := cell(t, core, row, "Author Full Names")
			assert.Equal(t, strings.Count(tt.authors, ";"), strings.Count(full, ";"))
			assert.True(t, strings.HasSuffix(full, "E Full"), full)
		})
	}
}

func TestGroupAuthorsPrefersCorp(t *testing.T) {
	r := types.Record{Names: types.Names{
		Corp:         []types.Person{{DisplayName: "Corp A"}},
		GroupAuthors: []types.Person{{DisplayName: "Group B"}},
		BookCorp:     []types.Person{{DisplayName: "Book Corp"}},
		BookEditors:  []types.Person{{DisplayName: "Ed, One"}, {DisplayName: " "}, {DisplayName: "Ed, Two"}},
	}}
	core := schema.Core()
	row := New(Options{}).Row(&r, core)
	assert.Equal(t, "Corp A", cell(t, core, row, "Group Authors"))
	assert.Equal(t, "Book Corp", cell(t, core, row, "Book Group Authors"))
	assert.Equal(t, "Ed, One; Ed, Two", cell(t, core, row, "Book Editors"))
}

func TestDocumentTypeFallsBackToTypes(t *testing.T) {
	r := types.Record{Types: []string{"Article"}}
	core := schema.Core()
	row := New(Options{}).Row(&r, core)
	assert.Equal(t, "Article", cell(t, core, row, "Document Type"))
	assert.Equal(t, "0", cell(t, core, row, "Times Cited, WoS Core"))
}

func TestSubsetLayout(t *testing.T) {
	headers := schema.SubsetHeaders()
	want := []string{
		"UT (Unique WOS ID)", "Authors", "Book Authors", "Book Editors", "Book Group Authors",
		"Author Full Names", "Book Author Full Names", "Group Authors", "Article Title",
		"Source Title", "Document Type", "Author Keywords", "Researcher Ids",
		"Times Cited, WoS Core", "ISSN", "eISSN", "ISBN", "Publication Date",
		"Publication Year", "Volume", "Issue", "Supplement", "Special Issue",
		"Meeting Abstract", "Start Page", "End Page", "Article Number", "DOI", "DOI Link",
		"Number of Pages", "Pubmed Id", "Date of Export", "Web of Science Record",
	}
	if diff := cmp.Diff(want, headers); diff != "" {
		t.Errorf("subset headers mismatch (-want +got):\n%s", diff)
	}
}
