// Package query filters and aggregates table rows.
//
// It covers two independent pieces: a condition evaluator for single
// comparisons such as "price>100" or "brand=xiaomi", and a registry of
// named aggregate functions (min, max, avg) that reduce one numeric column
// to a scalar.
//
// Example usage:
//
//	cond, err := query.ParseCondition("brand=xiaomi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := query.ApplyFilter(t.Rows, &cond)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	agg, err := query.BuildAggregator("rating=min")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lowest, err := agg.Run(rows)
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vegasq/csvq/table"
)

// Operator represents a comparison operator
type Operator int

const (
	OpEqual   Operator = iota // =
	OpGreater                 // >
	OpLess                    // <
)

// scanOrder is the fixed order in which ParseCondition looks for operators.
// Only the first operator found in this order splits the expression.
var scanOrder = []Operator{OpEqual, OpGreater, OpLess}

// Symbol returns the operator as written in expressions.
func (o Operator) Symbol() string {
	switch o {
	case OpEqual:
		return "="
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	return o.Symbol()
}

// Condition is a parsed single-comparison filter such as price>100.
type Condition struct {
	Column   string
	Operator Operator
	Value    string
}

func (c Condition) String() string {
	return c.Column + c.Operator.Symbol() + c.Value
}

// Match evaluates the condition against a row.
//
// Both the cell and the comparand are coerced independently: numbers when
// they parse as floats, text otherwise. A column missing from the row is an
// error, not a non-match.
func (c *Condition) Match(row table.Row) (bool, error) {
	raw, exists := row[c.Column]
	if !exists {
		return false, fmt.Errorf("%w: %q", ErrColumnNotFound, c.Column)
	}

	return compare(Coerce(raw), c.Operator, Coerce(c.Value))
}

// Value is a coerced cell: either a number or the original text.
type Value struct {
	num     float64
	text    string
	numeric bool
}

// Coerce converts s to a numeric Value when it parses as a float, and keeps
// it as text otherwise.
func Coerce(s string) Value {
	if f, ok := parseFloat(s); ok {
		return Number(f)
	}
	return Text(s)
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{num: f, numeric: true}
}

// Text returns a textual Value.
func Text(s string) Value {
	return Value{text: s}
}

// IsNumeric reports whether v holds a number.
func (v Value) IsNumeric() bool {
	return v.numeric
}

// Float returns the number held by v.
func (v Value) Float() (float64, bool) {
	return v.num, v.numeric
}

// Equal compares values of the same kind. A number never equals a text
// value, even one that looks numeric.
func (v Value) Equal(other Value) bool {
	if v.numeric != other.numeric {
		return false
	}
	if v.numeric {
		return v.num == other.num
	}
	return v.text == other.text
}

func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.text
}

// parseFloat parses a decimal or scientific number, tolerating surrounding
// whitespace. Hex literals are text. Out-of-range values become ±Inf.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if isHexLiteral(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
