package query

import (
	"errors"
	"fmt"
)

// Errors returned by the query package. Callers treat them as a single
// failure family; the sentinels only exist so tests and the CLI can tell
// the kinds apart.
var (
	// ErrParse is returned when a --where or --aggregate expression cannot be
	// parsed, or when a condition cannot be evaluated against a row.
	ErrParse = errors.New("parse error")

	// ErrColumnNotFound is returned when a referenced column is absent.
	ErrColumnNotFound = fmt.Errorf("%w: column not found", ErrParse)

	// ErrAggregation is returned when a column cannot be reduced.
	ErrAggregation = errors.New("aggregation error")

	// ErrEmptyAggregation is returned when an aggregate runs over zero values.
	ErrEmptyAggregation = fmt.Errorf("%w: no values to aggregate", ErrAggregation)
)
