package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/csvq/table"
)

// rowBatchSize is the number of parquet rows decoded per ReadRows call.
const rowBatchSize = 128

// ParquetReader reads flat parquet files as string rows.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens and validates the parquet file at path.
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Columns returns the top-level column names. Nested and repeated columns
// are rejected since they have no single string form.
func (r *ParquetReader) Columns() ([]string, error) {
	fields := r.pqFile.Schema().Fields()
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		if !field.Leaf() {
			return nil, fmt.Errorf("nested column %q is not supported", field.Name())
		}
		if field.Repeated() {
			return nil, fmt.Errorf("repeated column %q is not supported", field.Name())
		}
		columns = append(columns, field.Name())
	}
	return columns, nil
}

// ReadAll reads every row of the file into a table. The entire file is
// loaded into memory.
func (r *ParquetReader) ReadAll() (*table.Table, error) {
	columns, err := r.Columns()
	if err != nil {
		return nil, err
	}

	pqReader := parquet.NewReader(r.pqFile)
	defer func() { _ = pqReader.Close() }()

	rows := make([]table.Row, 0, int(pqReader.NumRows()))
	buf := make([]parquet.Row, rowBatchSize)
	for {
		n, err := pqReader.ReadRows(buf)
		for _, pqRow := range buf[:n] {
			row := make(table.Row, len(columns))
			for _, col := range columns {
				row[col] = ""
			}
			for _, v := range pqRow {
				idx := v.Column()
				if idx < 0 || idx >= len(columns) {
					return nil, fmt.Errorf("value for unknown column index %d", idx)
				}
				row[columns[idx]] = formatParquetValue(v)
			}
			rows = append(rows, row)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
	}

	return table.New(columns, rows), nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadParquet reads the whole parquet file at path.
func ReadParquet(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}

// formatParquetValue renders a leaf value the way it would appear in a CSV
// export. Nulls become empty strings.
func formatParquetValue(v parquet.Value) string {
	if v.IsNull() {
		return ""
	}

	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Int96:
		return fmt.Sprint(v.Int96())
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'f', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return fmt.Sprint(v)
	}
}
