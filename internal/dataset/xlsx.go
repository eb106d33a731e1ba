package dataset

import (
	"fmt"

	"github.com/huangsam/housescope/schema"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads the named sheet of a workbook, or its first sheet when sheet is empty.
func readXLSX(path, sheet string) ([]schema.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("excel file %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return recordsFromRows(rows)
}
