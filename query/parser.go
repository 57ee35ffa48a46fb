package query

import (
	"fmt"
	"strings"
)

// ParseCondition parses a --where expression such as "price>100".
//
// Operators are looked up in the order =, >, <. The first one present splits
// the expression at its first occurrence, so "price>=100" yields the column
// "price>" and the value "100".
func ParseCondition(raw string) (Condition, error) {
	if err := ValidateExpression(raw); err != nil {
		return Condition{}, err
	}

	for _, op := range scanOrder {
		column, value, found := strings.Cut(raw, op.Symbol())
		if !found {
			continue
		}

		column = strings.TrimSpace(column)
		if err := ValidateColumnName(column); err != nil {
			return Condition{}, fmt.Errorf("%w in condition %q", err, raw)
		}

		return Condition{
			Column:   column,
			Operator: op,
			Value:    strings.TrimSpace(value),
		}, nil
	}

	return Condition{}, fmt.Errorf("%w: unable to parse condition %q (supported operators: %s)", ErrParse, raw, supportedOperators())
}

func supportedOperators() string {
	symbols := make([]string, len(scanOrder))
	for i, op := range scanOrder {
		symbols[i] = op.Symbol()
	}
	return strings.Join(symbols, " ")
}
