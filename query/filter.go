package query

import (
	"fmt"

	"github.com/vegasq/csvq/table"
)

// compare compares two coerced values using the given operator
func compare(left Value, operator Operator, right Value) (bool, error) {
	if operator == OpEqual {
		return left.Equal(right), nil
	}

	leftNum, leftIsNum := left.Float()
	rightNum, rightIsNum := right.Float()
	if !leftIsNum || !rightIsNum {
		return false, fmt.Errorf("%w: operator '%s' works on numeric values only (got %q and %q)",
			ErrParse, operator.Symbol(), left.String(), right.String())
	}

	return compareNumbers(leftNum, operator, rightNum)
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator Operator, right float64) (bool, error) {
	switch operator {
	case OpEqual:
		return left == right, nil
	case OpGreater:
		return left > right, nil
	case OpLess:
		return left < right, nil
	default:
		return false, fmt.Errorf("%w: unsupported operator %d", ErrParse, int(operator))
	}
}

// ApplyFilter returns the rows matching cond, in their original order.
//
// A nil condition returns rows unchanged. Evaluation stops at the first
// error.
func ApplyFilter(rows []table.Row, cond *Condition) ([]table.Row, error) {
	if cond == nil {
		return rows, nil
	}

	filtered := make([]table.Row, 0)
	for _, row := range rows {
		match, err := cond.Match(row)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}
