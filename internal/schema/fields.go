// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

import (
	"github.com/pdiddy/starter-export/pkg/types"
)

// Kind says where a column's value comes from.
type Kind int

const (
	// Unsupplied columns have no Starter API source and are always Blank.
	Unsupplied Kind = iota
	// Direct columns copy one record path verbatim through Value.
	Direct
	// Derived columns are computed by the transformer from several paths.
	Derived
)

func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Derived:
		return "derived"
	default:
		return "unsupplied"
	}
}

// Path names a scalar location in a Record.
type Path string

// Record paths readable through Value.
const (
	PathUID           Path = "uid"
	PathTitle         Path = "title"
	PathSourceTitle   Path = "source.sourceTitle"
	PathPublishYear   Path = "source.publishYear"
	PathPublishMonth  Path = "source.publishMonth"
	PathVolume        Path = "source.volume"
	PathIssue         Path = "source.issue"
	PathSupplement    Path = "source.supplement"
	PathSpecialIssue  Path = "source.specialIssue"
	PathArticleNumber Path = "source.articleNumber"
	PathPageBegin     Path = "source.pages.begin"
	PathPageEnd       Path = "source.pages.end"
	PathPageCount     Path = "source.pages.count"
	PathDOI           Path = "identifiers.doi"
	PathISSN          Path = "identifiers.issn"
	PathEISSN         Path = "identifiers.eissn"
	PathISBN          Path = "identifiers.isbn"
	PathPMID          Path = "identifiers.pmid"
)

// Field maps one column header to its source.
type Field struct {
	Header string
	Kind   Kind
	// Path is set for Direct fields.
	Path Path
}

func direct(header string, p Path) Field { return Field{Header: header, Kind: Direct, Path: p} }
func derived(header string) Field       { return Field{Header: header, Kind: Derived} }

// sourced lists every column the Starter API can populate. Headers absent
// from this table are Unsupplied.
var sourced = map[string]Field{
	"Publication Type":       derived("Publication Type"),
	"Authors":                derived("Authors"),
	"Book Authors":           derived("Book Authors"),
	"Book Editors":           derived("Book Editors"),
	"Book Group Authors":     derived("Book Group Authors"),
	"Author Full Names":      derived("Author Full Names"),
	"Book Author Full Names": derived("Book Author Full Names"),
	"Group Authors":          derived("Group Authors"),
	"Article Title":          direct("Article Title", PathTitle),
	"Source Title":           direct("Source Title", PathSourceTitle),
	"Document Type":          derived("Document Type"),
	"Author Keywords":        derived("Author Keywords"),
	"Researcher Ids":         derived("Researcher Ids"),
	"Times Cited, WoS Core":  derived("Times Cited, WoS Core"),
	"ISSN":                   direct("ISSN", PathISSN),
	"eISSN":                  direct("eISSN", PathEISSN),
	"ISBN":                   direct("ISBN", PathISBN),
	"Publication Date":       direct("Publication Date", PathPublishMonth),
	"Publication Year":       direct("Publication Year", PathPublishYear),
	"Volume":                 direct("Volume", PathVolume),
	"Issue":                  direct("Issue", PathIssue),
	"Supplement":             direct("Supplement", PathSupplement),
	"Special Issue":          direct("Special Issue", PathSpecialIssue),
	"Meeting Abstract":       derived("Meeting Abstract"),
	"Start Page":             direct("Start Page", PathPageBegin),
	"End Page":               direct("End Page", PathPageEnd),
	"Article Number":         direct("Article Number", PathArticleNumber),
	"DOI":                    direct("DOI", PathDOI),
	"DOI Link":               derived("DOI Link"),
	"Number of Pages":        direct("Number of Pages", PathPageCount),
	"Pubmed Id":              direct("Pubmed Id", PathPMID),
	"Date of Export":         derived("Date of Export"),
	"UT (Unique WOS ID)":     direct("UT (Unique WOS ID)", PathUID),
	"Web of Science Record":  derived("Web of Science Record"),
}

// Lookup returns the field definition for a Core header.
func Lookup(header string) Field {
	if f, ok := sourced[header]; ok {
		return f
	}
	return Field{Header: header, Kind: Unsupplied}
}

// Core returns the Core-compatible layout.
func Core() []Field {
	fields := make([]Field, len(coreHeaders))
	for i, h := range coreHeaders {
		fields[i] = Lookup(h)
	}
	return fields
}

// Subset returns the Starter subset layout.
func Subset() []Field {
	fields := []Field{Lookup(HeaderUT)}
	for _, h := range coreHeaders {
		switch h {
		case HeaderUT, HeaderPublicationType, HeaderORCIDs:
			continue
		}
		f := Lookup(h)
		if f.Kind == Unsupplied {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// Value reads the scalar at p verbatim. Unknown paths read as empty.
func Value(r *types.Record, p Path) string {
	switch p {
	case PathUID:
		return r.UID
	case PathTitle:
		return r.Title.String()
	case PathSourceTitle:
		return r.Source.SourceTitle.String()
	case PathPublishYear:
		return r.Source.PublishYear.String()
	case PathPublishMonth:
		return r.Source.PublishMonth.String()
	case PathVolume:
		return r.Source.Volume.String()
	case PathIssue:
		return r.Source.Issue.String()
	case PathSupplement:
		return r.Source.Supplement.String()
	case PathSpecialIssue:
		return r.Source.SpecialIssue.String()
	case PathArticleNumber:
		return r.Source.ArticleNumber.String()
	case PathPageBegin:
		return r.Source.Pages.Begin.String()
	case PathPageEnd:
		return r.Source.Pages.End.String()
	case PathPageCount:
		return r.Source.Pages.Count.String()
	case PathDOI:
		return r.Identifiers.DOI.String()
	case PathISSN:
		return r.Identifiers.ISSN.String()
	case PathEISSN:
		return r.Identifiers.EISSN.String()
	case PathISBN:
		return r.Identifiers.ISBN.String()
	case PathPMID:
		return r.Identifiers.PMID.String()
	}
	return ""
}
