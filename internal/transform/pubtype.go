// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import "slices"

// Source-type tags that drive PublicationType.
const (
	SourceTypeBook             = "Book"
	SourceTypeProceedingsPaper = "Proceedings Paper"
	SourceTypeMeetingAbstract  = "Meeting Abstract"
)

// PublicationType infers the single-letter Core publication type from a
// record's source-type tags: B when Book is present, C when the non-empty
// tags are exactly {Proceedings Paper}, J otherwise. The Starter API has no
// direct field for it, so Document Type stays the authoritative indicator.
func PublicationType(sourceTypes []string) string {
	if slices.Contains(sourceTypes, SourceTypeBook) {
		return "B"
	}
	seen := false
	for _, st := range sourceTypes {
		switch st {
		case "":
		case SourceTypeProceedingsPaper:
			seen = true
		default:
			return "J"
		}
	}
	if seen {
		return "C"
	}
	return "J"
}
