package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/vegasq/csvq/table"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row with keys in column order. A table
// without rows produces no output.
func (j *JSONFormatter) Format(t *table.Table) error {
	w := bufio.NewWriter(j.writer)
	for _, row := range t.Rows {
		line, err := encodeRow(t.Columns, row)
		if err != nil {
			return err
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return w.Flush()
}

// encodeRow marshals row as an object whose keys follow columns.
func encodeRow(columns []string, row table.Row) ([]byte, error) {
	buf := []byte{'{'}
	for i, col := range columns {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(row[col])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	return append(buf, '}', '\n'), nil
}
