// Package output renders tables for the console and for other tools.
//
// Supported formats:
//   - table: a bordered grid in header column order (the default), or
//     "No data" when there are no rows
//   - csv: comma-separated values with a header row
//   - json / jsonl: one JSON object per row, keys in column order; no
//     output at all when there are no rows
//
// Example usage:
//
//	formatter, err := output.NewFormatter("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a bytes buffer to get string output:
//
//	var buf bytes.Buffer
//	formatter := output.NewCSVFormatter(&buf)
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//	csvString := buf.String()
package output
