// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"regexp"
	"slices"
	"strings"
)

// AllowedFields are the search field tags the Starter API accepts.
var AllowedFields = []string{
	"AI", "AU", "CS", "DO", "DOP", "DT", "FPY", "IS", "OG", "PG", "PMID", "PY", "SO", "TI", "TS", "UT", "VL",
}

// Request selects records either by query or by an explicit UT list.
type Request struct {
	Query string   `yaml:"query,omitempty"`
	UTs   []string `yaml:"uts,omitempty"`
}

// Text returns the query sent to the API. A non-empty UT list takes
// precedence over Query and becomes UT=(ut1 ut2 ...).
func (r Request) Text() (string, error) {
	if len(r.UTs) > 0 {
		return "UT=(" + strings.Join(r.UTs, " ") + ")", nil
	}
	q := strings.TrimSpace(r.Query)
	if q == "" {
		return "", ErrNoQuery
	}
	return q, nil
}

// ParseUTs splits a whitespace-separated UT list.
func ParseUTs(s string) []string {
	return strings.Fields(s)
}

var tagPattern = regexp.MustCompile(`\b([A-Za-z]{2,4})\s*=`)

// UnknownTags returns the field tags in query that are not in
// AllowedFields, upper-cased, in order of first appearance. The server
// remains the authority; this only allows an early warning.
func UnknownTags(query string) []string {
	var unknown []string
	for _, m := range tagPattern.FindAllStringSubmatch(query, -1) {
		tag := strings.ToUpper(m[1])
		if slices.Contains(AllowedFields, tag) || slices.Contains(unknown, tag) {
			continue
		}
		unknown = append(unknown, tag)
	}
	return unknown
}
