// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Profile is the fixed formatting applied to every sheet.
type Profile struct {
	FontFamily  string
	FontSize    float64
	RowHeight   float64
	ColumnWidth float64
}

// DefaultProfile is Arial 10 with the spreadsheet default row height and
// column width, and no wrapping.
var DefaultProfile = Profile{
	FontFamily:  "Arial",
	FontSize:    10,
	RowHeight:   12.75,
	ColumnWidth: 8.43,
}

// newStyle registers the body style in f.
func (p Profile) newStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: p.FontFamily, Size: p.FontSize},
		Alignment: &excelize.Alignment{WrapText: false, Vertical: "bottom"},
	})
}

// apply sets column width, column style and default row height for the
// first cols columns of sheet. It must run before cells are written so new
// cells inherit the column style.
func (p Profile) apply(f *excelize.File, sheet string, cols, style int) error {
	last, err := excelize.ColumnNumberToName(max(cols, 1))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, p.ColumnWidth); err != nil {
		return fmt.Errorf("setting column width on %s: %w", sheet, err)
	}
	if err := f.SetColStyle(sheet, "A:"+last, style); err != nil {
		return fmt.Errorf("setting column style on %s: %w", sheet, err)
	}
	height, custom := p.RowHeight, true
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{
		DefaultRowHeight: &height,
		CustomHeight:     &custom,
	}); err != nil {
		return fmt.Errorf("setting row height on %s: %w", sheet, err)
	}
	return nil
}
