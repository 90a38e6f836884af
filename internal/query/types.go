// Package query implements filtering and aggregation over loaded datasets.
//
// A query is at most one filter (column, operator, literal) and at most one
// aggregate (column, function), parsed from the CLI's option strings. The
// operator and function sets are closed: eq/gt/lt and avg/min/max, evaluated
// by a switch per variant. Cell typing is resolved once per value through
// Coerce rather than re-inspected at each comparison.
//
// Example usage:
//
//	spec, err := ParseFilter("price=gt=500")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := Run(dataset, spec, nil)
package query

import "github.com/vegasq/csvcat/internal/reader"

// Operator identifies a filter comparison.
type Operator int

const (
	OpEq Operator = iota // numeric or string equality
	OpGt                 // numeric greater-than
	OpLt                 // numeric less-than
)

// String returns the canonical operator token.
func (o Operator) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpGt:
		return "gt"
	case OpLt:
		return "lt"
	default:
		return "unknown"
	}
}

// Func identifies an aggregation function.
type Func int

const (
	FuncAvg Func = iota
	FuncMin
	FuncMax
)

// String returns the canonical function name.
func (f Func) String() string {
	switch f {
	case FuncAvg:
		return "avg"
	case FuncMin:
		return "min"
	case FuncMax:
		return "max"
	default:
		return "unknown"
	}
}

// FilterSpec is a parsed, validated row predicate: column <op> value.
type FilterSpec struct {
	Column string
	Op     Operator
	Value  string
}

// AggregateSpec is a parsed, validated reduction: function over column.
type AggregateSpec struct {
	Column string
	Fn     Func
}

// Result is the outcome of a Run: either a row set for display or a scalar.
//
// Scalar is non-nil exactly when an aggregate was requested.
type Result struct {
	Columns []string
	Rows    []reader.Row
	Scalar  *float64
}
