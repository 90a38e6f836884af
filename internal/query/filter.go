package query

import (
	"errors"
	"fmt"

	"github.com/vegasq/csvcat/internal/reader"
)

var (
	// ErrUnknownColumn is returned when a spec references a column the
	// dataset does not have
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNotNumeric is returned when a numeric-only operator or function
	// meets a value that does not coerce to a number
	ErrNotNumeric = errors.New("value is not numeric")
)

// ApplyFilter returns a new dataset holding the rows that match spec, in
// their original order.
//
// The column is checked against the dataset header before any row is
// examined, and for gt/lt the literal is checked for numeric coercion up
// front, so configuration errors surface once rather than per row. A
// non-numeric cell under gt/lt aborts the whole filter with ErrNotNumeric.
func ApplyFilter(ds *reader.Dataset, spec FilterSpec) (*reader.Dataset, error) {
	if !ds.HasColumn(spec.Column) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, spec.Column)
	}

	target := Coerce(spec.Value)
	if spec.Op != OpEq && !target.Numeric {
		return nil, fmt.Errorf("%w: operator %s requires a numeric value, got %q",
			ErrNotNumeric, spec.Op, spec.Value)
	}

	filtered := make([]reader.Row, 0)
	for _, row := range ds.Rows {
		match, err := matches(Coerce(row[spec.Column]), spec.Op, target)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", spec.Column, err)
		}
		if match {
			filtered = append(filtered, row)
		}
	}

	return &reader.Dataset{Columns: ds.Columns, Rows: filtered}, nil
}

// matches evaluates one comparison between a coerced cell and the coerced
// filter literal.
//
// eq compares numerically when both sides are numeric and falls back to
// exact, case-sensitive comparison of the trimmed text otherwise. gt and lt
// are numeric-only.
func matches(cell Value, op Operator, target Value) (bool, error) {
	switch op {
	case OpEq:
		if cell.Numeric && target.Numeric {
			return cell.Num == target.Num, nil
		}
		return cell.Text == target.Text, nil
	case OpGt:
		if !cell.Numeric {
			return false, fmt.Errorf("%w: %q", ErrNotNumeric, cell.Text)
		}
		return cell.Num > target.Num, nil
	case OpLt:
		if !cell.Numeric {
			return false, fmt.Errorf("%w: %q", ErrNotNumeric, cell.Text)
		}
		return cell.Num < target.Num, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownOperator, op)
	}
}
