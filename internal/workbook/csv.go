// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import (
	"bufio"
	"encoding/csv"
	"os"

	"github.com/pdiddy/starter-export/internal/schema"
	"github.com/pdiddy/starter-export/pkg/types"
)

// utf8BOM lets spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

// WriteCSV writes headers and rows to path as UTF-8 CSV with a byte order
// mark. Values are written in full; Blank placeholders become empty fields.
func WriteCSV(path string, headers []string, rows []types.Row) error {
	return saveAtomic(path, func(f *os.File) error {
		bw := bufio.NewWriter(f)
		if _, err := bw.WriteString(utf8BOM); err != nil {
			return err
		}
		w := csv.NewWriter(bw)
		if err := w.Write(headers); err != nil {
			return err
		}
		record := make([]string, len(headers))
		for _, row := range rows {
			for i := range record {
				record[i] = ""
				if i < len(row) && row[i] != schema.Blank {
					record[i] = row[i]
				}
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		return bw.Flush()
	})
}
