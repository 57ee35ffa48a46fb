package query

import (
	"errors"
	"fmt"
)

// Validation limits for user-supplied expressions.
const (
	// MaxExpressionLength is the maximum length of a --where or --aggregate
	// expression (64KB).
	MaxExpressionLength = 64 * 1024

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 1024
)

var (
	// ErrExpressionTooLong is returned when an expression exceeds MaxExpressionLength
	ErrExpressionTooLong = fmt.Errorf("%w: expression too long", ErrParse)

	// ErrColumnNameTooLong is returned when a column name exceeds MaxColumnNameLength
	ErrColumnNameTooLong = fmt.Errorf("%w: column name too long", ErrParse)

	// ErrEmptyColumnName is returned when the column part of an expression is blank
	ErrEmptyColumnName = fmt.Errorf("%w: column name is required", ErrParse)
)

// ValidateExpression checks the raw expression length.
func ValidateExpression(raw string) error {
	if len(raw) > MaxExpressionLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrExpressionTooLong, len(raw), MaxExpressionLength)
	}
	return nil
}

// ValidateColumnName checks that a trimmed column name is present and not
// too long.
func ValidateColumnName(name string) error {
	if name == "" {
		return ErrEmptyColumnName
	}
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}

// IsQueryError reports whether err belongs to the query error family.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrParse) || errors.Is(err, ErrAggregation)
}
