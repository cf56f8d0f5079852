// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema declares the two column layouts of the export workbook and
// how each column is sourced from a Starter API record.
//
// The Core layout is the full Web of Science Core Collection export header
// set. The Subset layout keeps only the columns the Starter API can
// populate, with the UT first.
package schema

// Column headers referenced by name outside this package.
const (
	HeaderPublicationType = "Publication Type"
	HeaderAuthors         = "Authors"
	HeaderORCIDs          = "ORCIDs"
	HeaderDOILink         = "DOI Link"
	HeaderUT              = "UT (Unique WOS ID)"
	HeaderRecordLink      = "Web of Science Record"
)

// Blank is written for every value the API cannot supply. A single space
// keeps neighbouring long text from spilling across the cell.
const Blank = " "

// coreHeaders is the standard Core Collection export header order.
var coreHeaders = []string{
	"Publication Type", "Authors", "Book Authors", "Book Editors", "Book Group Authors",
	"Author Full Names", "Book Author Full Names", "Group Authors", "Article Title",
	"Source Title", "Book Series Title", "Book Series Subtitle", "Language",
	"Document Type", "Conference Title", "Conference Date", "Conference Location",
	"Conference Sponsor", "Conference Host", "Author Keywords", "Keywords Plus", "Abstract",
	"Addresses", "Affiliations", "Reprint Addresses", "Email Addresses", "Researcher Ids",
	"ORCIDs", "Funding Orgs", "Funding Name Preferred", "Funding Text", "Cited References",
	"Cited Reference Count", "Times Cited, WoS Core", "Times Cited, All Databases",
	"180 Day Usage Count", "Since 2013 Usage Count", "Publisher", "Publisher City",
	"Publisher Address", "ISSN", "eISSN", "ISBN", "Journal Abbreviation",
	"Journal ISO Abbreviation", "Publication Date", "Publication Year", "Volume", "Issue",
	"Part Number", "Supplement", "Special Issue", "Meeting Abstract", "Start Page",
	"End Page", "Article Number", "DOI", "DOI Link", "Book DOI", "Early Access Date",
	"Number of Pages", "WoS Categories", "Web of Science Index", "Research Areas",
	"IDS Number", "Pubmed Id", "Open Access Designations", "Highly Cited Status",
	"Hot Paper Status", "Date of Export", "UT (Unique WOS ID)", "Web of Science Record",
}

// CoreHeaders returns a copy of the Core-compatible header order.
func CoreHeaders() []string {
	return append([]string(nil), coreHeaders...)
}

// SubsetHeaders returns the Starter subset header order: every Core column
// the API can populate, minus Publication Type and ORCIDs, with the UT
// moved to the front.
func SubsetHeaders() []string {
	return Headers(Subset())
}

// Headers returns the header names of fields, in order.
func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

// Index returns the position of header in headers, or -1.
func Index(headers []string, header string) int {
	for i, h := range headers {
		if h == header {
			return i
		}
	}
	return -1
}
