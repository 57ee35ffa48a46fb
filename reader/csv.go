package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvq/table"
)

// ErrEmptyInput is returned when a file has no header row.
var ErrEmptyInput = errors.New("empty input: no header row")

const utf8BOM = "\ufeff"

// ReadCSV reads comma-separated values with a header row.
//
// Every record must have as many fields as the header.
func ReadCSV(r io.Reader) (*table.Table, error) {
	csvReader := csv.NewReader(r)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return table.FromRecords(normalizeHeader(header), records)
}
