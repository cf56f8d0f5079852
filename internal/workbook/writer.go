// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook renders projected rows into the three-sheet export
// workbook and the optional CSV sidecar.
package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/starter-export/internal/schema"
	"github.com/pdiddy/starter-export/pkg/types"
)

// Sheet names, in workbook order.
const (
	SubsetSheet  = "Starter subset"
	CoreSheet    = "Core export (full)"
	SummarySheet = "Summary"
)

// defaultSheet is the sheet excelize creates with a new file.
const defaultSheet = "Sheet1"

// Sheet is one data sheet: a header row followed by rows aligned with it.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []types.Row
}

// Book is everything written to one workbook.
type Book struct {
	Subset  Sheet
	Core    Sheet
	Summary []string
	Links   LinkPolicy
}

// Writer renders Books with a fixed Profile.
type Writer struct {
	profile Profile
	logger  zerolog.Logger
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithProfile overrides DefaultProfile.
func WithProfile(p Profile) WriterOption {
	return func(w *Writer) { w.profile = p }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) WriterOption {
	return func(w *Writer) { w.logger = l }
}

// NewWriter creates a Writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{profile: DefaultProfile, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write renders b to path. The file is written to a temporary name in the
// same directory and renamed into place, so a failed run leaves no
// partial workbook behind.
func (w *Writer) Write(path string, b *Book) error {
	if err := b.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	style, err := w.profile.newStyle(f)
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	if err := f.SetSheetName(defaultSheet, b.Subset.Name); err != nil {
		return fmt.Errorf("naming sheet %s: %w", b.Subset.Name, err)
	}
	if err := w.writeData(f, &b.Subset, b.Links, style); err != nil {
		return err
	}

	if _, err := f.NewSheet(b.Core.Name); err != nil {
		return fmt.Errorf("creating sheet %s: %w", b.Core.Name, err)
	}
	if err := w.writeData(f, &b.Core, b.Links, style); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", SummarySheet, err)
	}
	if err := w.writeSummary(f, b.Summary, style); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	return saveAtomic(path, func(tmp *os.File) error {
		_, err := f.WriteTo(tmp)
		return err
	})
}

func (w *Writer) writeData(f *excelize.File, sh *Sheet, links LinkPolicy, style int) error {
	if err := w.profile.apply(f, sh.Name, len(sh.Headers), style); err != nil {
		return err
	}
	if err := w.setRow(f, sh.Name, 1, sh.Headers); err != nil {
		return err
	}

	var linked []int
	for c, h := range sh.Headers {
		if links.Linked(h) {
			linked = append(linked, c)
		}
	}

	for i, row := range sh.Rows {
		r := i + 2
		if err := w.setRow(f, sh.Name, r, row); err != nil {
			return err
		}
		for _, c := range linked {
			if c >= len(row) || !isURL(row[c]) {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r)
			if err != nil {
				return err
			}
			if err := f.SetCellHyperLink(sh.Name, cell, row[c], "External"); err != nil {
				return fmt.Errorf("linking %s!%s: %w", sh.Name, cell, err)
			}
		}
	}
	w.logger.Debug().Str("sheet", sh.Name).Int("rows", len(sh.Rows)).Msg("sheet written")
	return nil
}

func (w *Writer) writeSummary(f *excelize.File, lines []string, style int) error {
	if err := w.profile.apply(f, SummarySheet, 1, style); err != nil {
		return err
	}
	if err := w.setRow(f, SummarySheet, 1, []string{SummarySheet}); err != nil {
		return err
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			line = schema.Blank
		}
		if err := w.setRow(f, SummarySheet, i+2, []string{line}); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values as text starting at column A of row r.
func (w *Writer) setRow(f *excelize.File, sheet string, r int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, r, err)
	}
	if err := f.SetRowHeight(sheet, r, w.profile.RowHeight); err != nil {
		return fmt.Errorf("sizing %s row %d: %w", sheet, r, err)
	}
	return nil
}

// LinkCount returns the number of hyperlinks Write will create across both
// data sheets. Each one costs more than the last, so large counts mean a
// slow write.
func (b *Book) LinkCount() int {
	n := 0
	for _, sh := range []*Sheet{&b.Subset, &b.Core} {
		for c, h := range sh.Headers {
			if !b.Links.Linked(h) {
				continue
			}
			for _, row := range sh.Rows {
				if c < len(row) && isURL(row[c]) {
					n++
				}
			}
		}
	}
	return n
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// outputMode is the permission of delivered files. Temp files start
// owner-only, so it is set explicitly before the rename.
const outputMode os.FileMode = 0o644

// saveAtomic writes through write to a temporary file beside path and
// renames it into place with outputMode.
func saveAtomic(path string, write func(*os.File) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(outputMode); err != nil {
		tmp.Close()
		return fmt.Errorf("setting mode on %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}

// ErrNoRows is returned when a Book has no data rows.
var ErrNoRows = errors.New("workbook has no data rows")

// Validate checks that both data sheets hold the same number of rows and
// that every row matches its sheet's header width.
func (b *Book) Validate() error {
	if len(b.Subset.Rows) == 0 {
		return ErrNoRows
	}
	if len(b.Subset.Rows) != len(b.Core.Rows) {
		return fmt.Errorf("row count mismatch: %s has %d, %s has %d",
			b.Subset.Name, len(b.Subset.Rows), b.Core.Name, len(b.Core.Rows))
	}
	for _, sh := range []*Sheet{&b.Subset, &b.Core} {
		for i, row := range sh.Rows {
			if len(row) != len(sh.Headers) {
				return fmt.Errorf("%s row %d has %d cells, want %d", sh.Name, i+1, len(row), len(sh.Headers))
			}
		}
	}
	return nil
}
