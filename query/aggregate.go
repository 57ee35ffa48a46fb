package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vegasq/csvq/table"
)

// Reducer reduces a sequence of numbers to a single value.
type Reducer func(values []float64) (float64, error)

// aggregators is the registry of aggregate functions, keyed by lower-case
// name. Adding a function only requires a new entry here.
var aggregators = map[string]Reducer{
	"min": reduceMin,
	"max": reduceMax,
	"avg": reduceAvg,
}

// RegisteredAggregators returns the supported function names, sorted.
func RegisteredAggregators() []string {
	names := make([]string, 0, len(aggregators))
	for name := range aggregators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aggregator is a registered function bound to a target column.
type Aggregator struct {
	Column string
	Name   string
	reduce Reducer
}

func (a Aggregator) String() string {
	return a.Column + "=" + a.Name
}

// BuildAggregator parses an --aggregate expression of the form
// "column=function". The function name is case-insensitive.
func BuildAggregator(raw string) (Aggregator, error) {
	if err := ValidateExpression(raw); err != nil {
		return Aggregator{}, err
	}

	column, name, found := strings.Cut(raw, "=")
	if !found {
		return Aggregator{}, fmt.Errorf("%w: aggregate must be 'column=func', got %q", ErrParse, raw)
	}

	column = strings.TrimSpace(column)
	name = strings.ToLower(strings.TrimSpace(name))

	reduce, ok := aggregators[name]
	if !ok {
		return Aggregator{}, fmt.Errorf("%w: unknown aggregator '%s'. Supported: %s",
			ErrParse, name, strings.Join(RegisteredAggregators(), ", "))
	}

	if err := ValidateColumnName(column); err != nil {
		return Aggregator{}, fmt.Errorf("%w in aggregate %q", err, raw)
	}

	return Aggregator{Column: column, Name: name, reduce: reduce}, nil
}

// Apply runs the aggregate function over values.
func (a Aggregator) Apply(values []float64) (float64, error) {
	if a.reduce == nil {
		return 0, fmt.Errorf("%w: aggregator %q is not registered", ErrAggregation, a.Name)
	}
	return a.reduce(values)
}

// Run extracts the target column from rows, coerces it and applies the
// aggregate function.
func (a Aggregator) Run(rows []table.Row) (float64, error) {
	raw := make([]string, 0, len(rows))
	for _, row := range rows {
		value, exists := row[a.Column]
		if !exists {
			return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, a.Column)
		}
		raw = append(raw, value)
	}

	values, err := CoerceColumn(raw, a.Column)
	if err != nil {
		return 0, err
	}

	return a.Apply(values)
}

// CoerceColumn converts every raw value of column to a float. The first
// non-numeric value aborts the conversion.
func CoerceColumn(values []string, column string) ([]float64, error) {
	result := make([]float64, 0, len(values))
	for _, raw := range values {
		num, ok := parseFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: non-numeric value '%s' in column '%s'", ErrAggregation, raw, column)
		}
		result = append(result, num)
	}
	return result, nil
}

func reduceMin(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: min", ErrEmptyAggregation)
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

func reduceMax(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: max", ErrEmptyAggregation)
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

func reduceAvg(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: avg", ErrEmptyAggregation)
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return roundSignificant(sum/float64(len(values)), avgPrecision), nil
}

// avgPrecision is the number of significant digits kept by avg, enough to
// drop the noise of floating-point summation.
const avgPrecision = 15

// roundSignificant rounds v to digits significant digits.
func roundSignificant(v float64, digits int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
