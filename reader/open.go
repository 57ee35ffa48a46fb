package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvq/table"
)

// Format identifies an input file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatXLSX    Format = "xlsx"
)

// DetectFormat picks the input format from the file extension. Unknown
// extensions are read as CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return FormatParquet
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// Open reads the whole file at path into a table.
func Open(path string) (*table.Table, error) {
	switch DetectFormat(path) {
	case FormatParquet:
		return ReadParquet(path)
	case FormatXLSX:
		return ReadXLSX(path)
	default:
		return ReadCSVFile(path)
	}
}

// ReadCSVFile opens path and reads it as CSV.
func ReadCSVFile(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	t, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}

// normalizeHeader trims header names and fills blank ones.
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		columns[i] = h
	}
	return columns
}
