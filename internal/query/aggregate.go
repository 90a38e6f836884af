package query

import (
	"errors"
	"fmt"

	"github.com/vegasq/csvcat/internal/reader"
)

// ErrNoRows is returned when an aggregate has zero rows to reduce.
// Aggregation over nothing is undefined, not zero.
var ErrNoRows = errors.New("no rows to aggregate")

// Aggregate reduces one column of the dataset to a single number.
//
// Every cell in the column must coerce to a number; a non-numeric cell is an
// error naming the offending value, not a skip. An empty row set is ErrNoRows.
func Aggregate(ds *reader.Dataset, spec AggregateSpec) (float64, error) {
	if !ds.HasColumn(spec.Column) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, spec.Column)
	}

	if len(ds.Rows) == 0 {
		return 0, fmt.Errorf("%w for %s(%s)", ErrNoRows, spec.Fn, spec.Column)
	}

	values := make([]float64, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		v := Coerce(row[spec.Column])
		if !v.Numeric {
			return 0, fmt.Errorf("%w: column %q contains %q",
				ErrNotNumeric, spec.Column, v.Text)
		}
		values = append(values, v.Num)
	}

	switch spec.Fn {
	case FuncAvg:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values)), nil
	case FuncMin:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min, nil
	case FuncMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownFunction, spec.Fn)
	}
}
