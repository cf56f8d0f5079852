// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the starter-export
// pipeline: the Starter API document (Record), projected rows, the run
// summary, and per-stage configuration.
package types

import (
	"bytes"
	"strings"

	"github.com/segmentio/encoding/json"
)

// Record is one document as returned by the Web of Science Starter API
// (the "hits" array of GET /documents). UID is unique within a result set.
type Record struct {
	UID         string      `json:"uid"`
	Title       Text        `json:"title"`
	Types       Strings     `json:"types"`
	SourceTypes Strings     `json:"sourceTypes"`
	Source      Source      `json:"source"`
	Names       Names       `json:"names"`
	Links       Links       `json:"links"`
	Citations   []Citation  `json:"citations"`
	Identifiers Identifiers `json:"identifiers"`
	Keywords    Keywords    `json:"keywords"`
}

// Source holds the publication venue block.
type Source struct {
	SourceTitle   Text  `json:"sourceTitle"`
	PublishYear   Text  `json:"publishYear"`
	PublishMonth  Text  `json:"publishMonth"`
	Volume        Text  `json:"volume"`
	Issue         Text  `json:"issue"`
	Supplement    Text  `json:"supplement"`
	SpecialIssue  Text  `json:"specialIssue"`
	ArticleNumber Text  `json:"articleNumber"`
	Pages         Pages `json:"pages"`
}

// Pages is the page range of a document.
type Pages struct {
	Range Text `json:"range"`
	Begin Text `json:"begin"`
	End   Text `json:"end"`
	Count Text `json:"count"`
}

// Names groups every person and organisation list attached to a document.
type Names struct {
	Authors      People `json:"authors"`
	Books        People `json:"books"`
	BookEditors  People `json:"bookEditors"`
	BookCorp     People `json:"bookCorp"`
	Corp         People `json:"corp"`
	GroupAuthors People `json:"groupAuthors"`
}

// Person is a named contributor. WOSStandard is the abbreviated form
// ("Smith, J"); DisplayName is the full form ("Smith, John").
type Person struct {
	DisplayName  string `json:"displayName"`
	WOSStandard  string `json:"wosStandard"`
	ResearcherID string `json:"researcherId"`
}

// UnmarshalJSON accepts either an object or a bare string. Book and group
// author lists occasionally arrive as plain strings. Any other value leaves
// the person empty.
func (p *Person) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		var t Text
		if err := t.UnmarshalJSON(data); err != nil {
			return err
		}
		*p = Person{DisplayName: t.String()}
		return nil
	}
	type person Person
	var v person
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Person(v)
	return nil
}

// Links holds the vendor links for a document.
type Links struct {
	Record         string `json:"record"`
	CitingArticles string `json:"citingArticles"`
	References     string `json:"references"`
	Related        string `json:"related"`
}

// Citation is a times-cited count for one citation database.
type Citation struct {
	DB    string `json:"db"`
	Count Text   `json:"count"`
}

// Identifiers holds the external identifiers of a document.
type Identifiers struct {
	DOI   Text `json:"doi"`
	ISSN  Text `json:"issn"`
	EISSN Text `json:"eissn"`
	ISBN  Text `json:"isbn"`
	PMID  Text `json:"pmid"`
}

// Keywords holds author-supplied keywords.
type Keywords struct {
	AuthorKeywords Strings `json:"authorKeywords"`
}

// TimesCited returns the Web of Science Core citation count, falling back to
// the first listed database. The second result is false when no parseable
// count exists.
func (r *Record) TimesCited() (int, bool) {
	for _, c := range r.Citations {
		if strings.EqualFold(c.DB, "WOS") {
			return c.Count.Int()
		}
	}
	if len(r.Citations) > 0 {
		return r.Citations[0].Count.Int()
	}
	return 0, false
}

// PublishYear returns the numeric publication year, if any.
func (r *Record) PublishYear() (int, bool) {
	return r.Source.PublishYear.Int()
}

// Row is one projected spreadsheet row, aligned with a schema's headers.
type Row []string
