package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vegasq/csvq/internal/logger"
	"github.com/vegasq/csvq/output"
	"github.com/vegasq/csvq/query"
	"github.com/vegasq/csvq/reader"
	"github.com/vegasq/csvq/table"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	file      string
	where     string
	aggregate string
	format    string
	limit     int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("csvq", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.file, "file", "", "Path to CSV file (.parquet and .xlsx are also accepted)")
	fs.StringVar(&opts.where, "where", "", "Filter condition, e.g. --where \"price>100\" or \"brand=xiaomi\"")
	fs.StringVar(&opts.aggregate, "aggregate", "", "Aggregate, e.g. --aggregate \"rating=min\" (supported: "+strings.Join(query.RegisteredAggregators(), ", ")+")")
	fs.StringVar(&opts.format, "f", output.FormatTable, "Output format: table, csv, json")
	fs.IntVar(&opts.limit, "limit", 0, "Limit number of rows (0 = unlimited)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: csvq --file <path> [options]\n\n")
		fmt.Fprintf(stderr, "A simple CSV analyser: filter rows and aggregate a column.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  csvq --file products.csv\n")
		fmt.Fprintf(stderr, "  csvq --file products.csv --where \"brand=xiaomi\"\n")
		fmt.Fprintf(stderr, "  csvq --file products.csv --where \"brand=xiaomi\" --aggregate \"rating=min\"\n")
	}

	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	// Validate flag values
	if opts.file == "" {
		fmt.Fprintf(stderr, "Error: --file is required\n\n")
		fs.Usage()
		return exitUsage
	}
	if opts.limit < 0 {
		fmt.Fprintf(stderr, "Error: -limit must be non-negative, got %d\n", opts.limit)
		return exitUsage
	}
	formatter, err := output.NewFormatter(opts.format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	config := logger.LoadConfig()
	config.Writer = stderr
	log := logger.New(config)

	if _, err := os.Stat(opts.file); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Error: file '%s' not found\n", opts.file)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return exitError
	}

	result, err := execute(opts, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		// List available columns to help user
		var colErr *columnError
		if errors.As(err, &colErr) && len(colErr.columns) > 0 {
			fmt.Fprintf(stderr, "\nAvailable columns: %s\n", strings.Join(colErr.columns, ", "))
		}
		return exitError
	}

	if err := formatter.Format(result); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return exitError
	}

	return exitOK
}

// execute loads the file, filters it and, when requested, aggregates the
// selected rows. Expressions are parsed before the file is read.
func execute(opts options, log *slog.Logger) (*table.Table, error) {
	var cond *query.Condition
	if opts.where != "" {
		c, err := query.ParseCondition(opts.where)
		if err != nil {
			return nil, err
		}
		cond = &c
		log.Debug("parsed condition", "column", c.Column, "operator", c.Operator.Symbol(), "value", c.Value)
	}

	var agg *query.Aggregator
	if opts.aggregate != "" {
		a, err := query.BuildAggregator(opts.aggregate)
		if err != nil {
			return nil, err
		}
		agg = &a
		log.Debug("parsed aggregate", "column", a.Column, "function", a.Name)
	}

	t, err := reader.Open(opts.file)
	if err != nil {
		return nil, err
	}
	log.Debug("file loaded", "file", opts.file, "format", string(reader.DetectFormat(opts.file)), "columns", len(t.Columns), "rows", t.Len())

	rows, err := query.ApplyFilter(t.Rows, cond)
	if err != nil {
		return nil, withColumns(err, t.Columns)
	}
	if cond != nil {
		log.Debug("rows filtered", "condition", cond.String(), "selected", len(rows))
	}

	if agg != nil {
		if !t.HasColumn(agg.Column) {
			return nil, withColumns(fmt.Errorf("%w: %q", query.ErrColumnNotFound, agg.Column), t.Columns)
		}
		value, err := agg.Run(rows)
		if err != nil {
			return nil, withColumns(err, t.Columns)
		}
		log.Debug("aggregate computed", "aggregate", agg.String(), "rows", len(rows), "result", value)
		return table.Scalar(agg.Column, value), nil
	}

	return t.WithRows(rows).Limit(opts.limit), nil
}

// columnError attaches the table's columns to a missing-column error.
type columnError struct {
	err     error
	columns []string
}

func (e *columnError) Error() string { return e.err.Error() }

func (e *columnError) Unwrap() error { return e.err }

func withColumns(err error, columns []string) error {
	if !errors.Is(err, query.ErrColumnNotFound) {
		return err
	}
	return &columnError{err: err, columns: columns}
}
