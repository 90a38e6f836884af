package query

import (
	"errors"
	"fmt"
)

// Validation limits for CLI-supplied spec strings.
const (
	// MaxSpecLength is the maximum allowed length for a filter or
	// aggregate option string
	MaxSpecLength = 4096

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrSpecTooLong is returned when a spec string exceeds MaxSpecLength
	ErrSpecTooLong = errors.New("spec too long")

	// ErrColumnNameTooLong is returned when a column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")

	// ErrEmptyColumn is returned when a spec names no column
	ErrEmptyColumn = errors.New("column name cannot be empty")
)

// validateSpecString checks the raw option string length.
func validateSpecString(s string) error {
	if len(s) > MaxSpecLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrSpecTooLong, len(s), MaxSpecLength)
	}
	return nil
}

// validateColumnName checks that a spec's column name is usable.
func validateColumnName(name string) error {
	if name == "" {
		return ErrEmptyColumn
	}
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}
