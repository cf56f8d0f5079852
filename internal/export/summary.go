// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"

	"github.com/pdiddy/starter-export/internal/transform"
	"github.com/pdiddy/starter-export/internal/workbook"
	"github.com/pdiddy/starter-export/pkg/types"
)

// maxListedUTs caps the UTs listed per truncated column.
const maxListedUTs = 20

// SummaryLines renders s as the rows of the Summary sheet. Empty strings
// separate sections.
func SummaryLines(s *types.Summary, csvEnabled bool) []string {
	lines := []string{
		"Query: " + s.Query,
		"Local Time: " + s.RetrievedAt.Format(TimestampFormat),
		fmt.Sprintf("Total Records: %d", s.Records),
	}
	if s.Reported != s.Records {
		lines = append(lines, fmt.Sprintf("Total reported by API: %d", s.Reported))
	}
	lines = append(lines,
		transform.SortDescription+" — "+s.LinkNote,
		fmt.Sprintf("Excel cell text limit enforced at %d characters.", workbook.CellCharLimit),
		"Authors shown: "+authorsShown(s.AuthorLimit),
		"CSV output: "+enabled(csvEnabled),
	)

	if len(s.Truncations) > 0 {
		lines = append(lines, "", "Truncation notes (cells exceeded Excel limit):")
		for _, tr := range s.Truncations {
			lines = append(lines, truncationLine(tr))
		}
	}

	if s.CSVPath != "" {
		lines = append(lines, "", "CSV written (full text, no truncation):", "- Starter subset: "+s.CSVPath)
	}
	return lines
}

func truncationLine(tr types.Truncation) string {
	shown := tr.UTs
	more := ""
	if len(shown) > maxListedUTs {
		more = fmt.Sprintf(" (+%d more)", len(shown)-maxListedUTs)
		shown = shown[:maxListedUTs]
	}
	return fmt.Sprintf("- %s: %d row(s) truncated. UTs: %s%s",
		tr.Column, len(tr.UTs), strings.Join(shown, transform.Separator), more)
}

func authorsShown(l types.AuthorLimit) string {
	if l <= types.AllAuthors {
		return "ALL"
	}
	return fmt.Sprintf("First %d + last (if longer)", int(l))
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
