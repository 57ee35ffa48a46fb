package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvq/table"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Supported format names.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case FormatTable:
		return NewTableFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSON, FormatJSONL:
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s' (supported: %s, %s, %s)", name, FormatTable, FormatCSV, FormatJSON)
	}
}
