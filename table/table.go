// Package table defines the in-memory row model shared by the reader,
// query and output packages.
//
// A Table keeps the header order of its source file so that output can
// reproduce it, while each Row is a plain column-name to raw-value map.
package table

import (
	"fmt"
	"strconv"
)

// Row maps a column name to its raw cell value.
type Row map[string]string

// Table is an ordered set of columns plus the rows read for them.
//
// Every row carries exactly the keys listed in Columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates a table with the given header and rows.
func New(columns []string, rows []Row) *Table {
	if rows == nil {
		rows = make([]Row, 0)
	}
	return &Table{Columns: columns, Rows: rows}
}

// FromRecords builds a table from a header and positional records.
//
// Records shorter than the header are padded with empty strings; longer
// records are rejected.
func FromRecords(header []string, records [][]string) (*Table, error) {
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("record %d has %d fields, header has %d", i+1, len(rec), len(header))
		}
		row := make(Row, len(header))
		for j, col := range header {
			if j < len(rec) {
				row[col] = rec[j]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return New(header, rows), nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// WithRows returns a table sharing t's columns with a different row set.
func (t *Table) WithRows(rows []Row) *Table {
	return New(t.Columns, rows)
}

// Limit returns a table holding at most n rows. n <= 0 means unlimited.
func (t *Table) Limit(n int) *Table {
	if n <= 0 || len(t.Rows) <= n {
		return t
	}
	return t.WithRows(t.Rows[:n])
}

// Record returns the row's values in column order.
func (t *Table) Record(row Row) []string {
	record := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		record[i] = row[col]
	}
	return record
}

// Scalar builds the one-row table used to display an aggregate result.
// The value is printed in plain decimal notation with every digit kept.
func Scalar(column string, value float64) *Table {
	return New([]string{column}, []Row{{column: strconv.FormatFloat(value, 'f', -1, 64)}})
}
