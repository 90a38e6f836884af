// Package output renders query results to a writer.
//
// Row sets go through a Formatter (table grid, CSV, or JSON Lines); scalar
// aggregate results are written as a bare decimal, except in table mode
// which shows a one-row summary grid.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vegasq/csvcat/internal/reader"
)

// Formatter defines the interface for row-set formatters.
type Formatter interface {
	// Format writes rows using the dataset's column order
	Format(columns []string, rows []reader.Row) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// FormatScalar renders an aggregate result as a plain decimal number.
func FormatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteScalar writes an aggregate result as a single line.
func WriteScalar(w io.Writer, v float64) error {
	_, err := fmt.Fprintln(w, FormatScalar(v))
	return err
}
