package query

import "github.com/vegasq/csvcat/internal/reader"

// Run executes a query over a loaded dataset: filter first (when given),
// then aggregate over the filtered rows (when given).
//
// With neither spec the result is the dataset's rows unchanged. The
// filter-then-aggregate ordering is part of the contract: an aggregate always
// sees exactly the rows a display run with the same filter would show. Run
// holds no state; the outcome is fully determined by its arguments.
func Run(ds *reader.Dataset, filter *FilterSpec, agg *AggregateSpec) (*Result, error) {
	current := ds
	if filter != nil {
		filtered, err := ApplyFilter(ds, *filter)
		if err != nil {
			return nil, err
		}
		current = filtered
	}

	if agg != nil {
		value, err := Aggregate(current, *agg)
		if err != nil {
			return nil, err
		}
		return &Result{Scalar: &value}, nil
	}

	return &Result{Columns: current.Columns, Rows: current.Rows}, nil
}
