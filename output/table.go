package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvq/table"
)

// NoData is printed by TableFormatter for a table without rows.
const NoData = "No data"

// TableFormatter renders rows as a bordered console table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new console table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the table with its columns in header order
func (f *TableFormatter) Format(t *table.Table) error {
	if t.Len() == 0 {
		_, err := fmt.Fprintln(f.writer, NoData)
		return err
	}

	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range t.Rows {
		tw.Append(t.Record(row))
	}
	tw.Render()

	return nil
}
