// Package reader loads tabular files into memory as a table.Table.
//
// Three formats are supported, chosen by file extension:
//
//   - .csv (and anything unrecognised): comma-separated values with a header row
//   - .parquet: Apache Parquet files with a flat schema
//   - .xlsx: Excel workbooks; the first sheet is read and its first row is the header
//
// Every cell is kept as its raw string form. Numeric interpretation happens
// later, in the query package.
//
// # Basic Usage
//
//	t, err := reader.Open("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.Columns, t.Len())
//
// Readers for a specific format can be used directly:
//
//	f, err := os.Open("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	t, err := reader.ReadCSV(f)
//
// # Errors
//
// A missing file yields an error satisfying os.IsNotExist via errors.Is. The
// whole file is loaded at once, so very large inputs need matching memory.
package reader
