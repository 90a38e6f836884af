package query

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedFilter is returned when a filter string is not
	// column=operator=value
	ErrMalformedFilter = errors.New("filter must be in format: column=operator=value")

	// ErrMalformedAggregate is returned when an aggregate string is not
	// column=function
	ErrMalformedAggregate = errors.New("aggregate must be in format: column=function")

	// ErrUnknownOperator is returned for operator tokens outside eq/gt/lt
	// and their symbolic aliases
	ErrUnknownOperator = errors.New("unknown filter operator")

	// ErrUnknownFunction is returned for function names outside avg/min/max
	ErrUnknownFunction = errors.New("unknown aggregate function")
)

// operatorAliases maps accepted operator tokens onto the closed enum.
// Mnemonic and symbolic forms are equivalent; everything else, including
// >= and <=, is rejected.
var operatorAliases = map[string]Operator{
	"eq": OpEq,
	"==": OpEq,
	"gt": OpGt,
	">":  OpGt,
	"lt": OpLt,
	"<":  OpLt,
}

// operatorTokens is the prefix-match order for splitOperator. Longer tokens
// come first so "==" wins over a bare "=" separator.
var operatorTokens = []string{"==", "eq", "gt", "lt", ">", "<"}

// ParseFilter parses a column=operator=value option string into a FilterSpec.
//
// Column and value are trimmed of surrounding whitespace; the operator token
// is matched verbatim between the separators, so "price=gt=500" and
// "price=>=500" both mean price > 500. The value may itself contain '='.
// The operator resolves to the enum before any row is ever examined.
func ParseFilter(s string) (*FilterSpec, error) {
	if err := validateSpecString(s); err != nil {
		return nil, err
	}

	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w, got %q", ErrMalformedFilter, s)
	}

	column := strings.TrimSpace(parts[0])
	if err := validateColumnName(column); err != nil {
		return nil, err
	}

	op, value, err := splitOperator(parts[1])
	if err != nil {
		return nil, err
	}

	return &FilterSpec{
		Column: column,
		Op:     op,
		Value:  strings.TrimSpace(value),
	}, nil
}

// splitOperator splits the operator=value remainder of a filter string.
func splitOperator(rest string) (Operator, string, error) {
	for _, token := range operatorTokens {
		if strings.HasPrefix(rest, token+"=") {
			return operatorAliases[token], rest[len(token)+1:], nil
		}
	}

	idx := strings.Index(rest, "=")
	if idx < 0 {
		return 0, "", fmt.Errorf("%w, missing value after %q", ErrMalformedFilter, rest)
	}
	token := rest[:idx]
	if token == "" {
		token = "="
	}
	return 0, "", fmt.Errorf("%w: %q (supported: eq, gt, lt)", ErrUnknownOperator, token)
}

// ParseAggregate parses a column=function option string into an AggregateSpec.
//
// Function names are matched case-insensitively but have no aliases: only
// avg, min, and max exist.
func ParseAggregate(s string) (*AggregateSpec, error) {
	if err := validateSpecString(s); err != nil {
		return nil, err
	}

	parts := strings.Split(s, "=")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w, got %q", ErrMalformedAggregate, s)
	}

	column := strings.TrimSpace(parts[0])
	if err := validateColumnName(column); err != nil {
		return nil, err
	}

	var fn Func
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "avg":
		fn = FuncAvg
	case "min":
		fn = FuncMin
	case "max":
		fn = FuncMax
	default:
		return nil, fmt.Errorf("%w: %q (supported: avg, min, max)", ErrUnknownFunction, parts[1])
	}

	return &AggregateSpec{Column: column, Fn: fn}, nil
}
