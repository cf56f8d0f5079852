// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// TimestampFormat stamps auto-named files and the Summary sheet.
const TimestampFormat = "20060102_150405"

const (
	filePrefix   = "WOSExcelStarter_"
	queryStemLen = 20
	fallbackStem = "query"
	workbookExt  = ".xlsx"
	csvSuffix    = "_full.csv"
	manifestExt  = ".yaml"
)

// AutoFileName builds WOSExcelStarter_<stem>_<timestamp>.xlsx in dir. The
// stem is the query reduced to letters, digits and underscores, cut to 20
// characters.
func AutoFileName(query, dir string, at time.Time) string {
	var b strings.Builder
	for _, r := range query {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	stem := []rune(strings.Join(strings.Fields(b.String()), "_"))
	if len(stem) > queryStemLen {
		stem = stem[:queryStemLen]
	}
	name := string(stem)
	if name == "" {
		name = fallbackStem
	}
	return filepath.Join(dir, filePrefix+name+"_"+at.Format(TimestampFormat)+workbookExt)
}

// basePath strips the extension from a workbook path.
func basePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// CSVPath returns the sidecar CSV path for a workbook path.
func CSVPath(workbook string) string { return basePath(workbook) + csvSuffix }

// ManifestPath returns the run manifest path for a workbook path.
func ManifestPath(workbook string) string { return basePath(workbook) + manifestExt }
