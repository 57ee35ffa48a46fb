package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vegasq/csvq/table"
)

// ReadXLSX reads the first sheet of an Excel workbook. The first row is the
// header; rows shorter than the header are padded with empty cells.
func ReadXLSX(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	t, err := table.FromRecords(normalizeHeader(records[0]), records[1:])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheets[0], err)
	}
	return t, nil
}
