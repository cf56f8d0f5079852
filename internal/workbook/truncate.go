// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import (
	"strconv"
	"unicode/utf8"

	"github.com/pdiddy/starter-export/internal/schema"
	"github.com/pdiddy/starter-export/pkg/types"
)

// CellCharLimit is the most characters a spreadsheet cell can hold.
const CellCharLimit = 32767

// TruncationMarker ends every cut cell.
const TruncationMarker = " … [truncated]"

// Truncate cuts s to CellCharLimit characters, ending with the marker.
// The second result reports whether s was cut.
func Truncate(s string) (string, bool) {
	if utf8.RuneCountInString(s) <= CellCharLimit {
		return s, false
	}
	keep := CellCharLimit - utf8.RuneCountInString(TruncationMarker)
	n := 0
	for i := range s {
		if n == keep {
			return s[:i] + TruncationMarker, true
		}
		n++
	}
	return s, false
}

// Clamp truncates oversized cells of every sheet in place and returns, per
// column in order of first occurrence, the UTs of the affected rows. A row
// cut on both data sheets is listed once.
func Clamp(sheets ...*Sheet) []types.Truncation {
	var out []types.Truncation
	index := map[string]int{}
	seen := map[string]map[string]bool{}

	for _, sh := range sheets {
		utCol := schema.Index(sh.Headers, schema.HeaderUT)
		for r, row := range sh.Rows {
			for c, v := range row {
				cut, ok := Truncate(v)
				if !ok {
					continue
				}
				row[c] = cut

				ut := "row" + strconv.Itoa(r+1)
				if utCol >= 0 && utCol < len(row) {
					ut = row[utCol]
				}
				col := sh.Headers[c]
				i, exists := index[col]
				if !exists {
					i = len(out)
					index[col] = i
					seen[col] = map[string]bool{}
					out = append(out, types.Truncation{Column: col})
				}
				if !seen[col][ut] {
					seen[col][ut] = true
					out[i].UTs = append(out[i].UTs, ut)
				}
			}
		}
	}
	return out
}
