package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/internal/reader"
)

// TableFormatter outputs rows as an ASCII grid, the default display format.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes rows as a bordered grid with the columns as the header.
// An empty row set prints a notice instead of a bare frame.
func (t *TableFormatter) Format(columns []string, rows []reader.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(t.writer, "no rows to display")
		return err
	}

	table := t.newTable(columns)
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = row[col]
		}
		table.Append(record)
	}

	table.Render()
	return nil
}

// FormatAggregate writes an aggregate result as a one-row summary grid
// naming the column, the function, and the value.
func (t *TableFormatter) FormatAggregate(column, fn string, value float64) error {
	table := t.newTable([]string{"column", "function", "result"})
	table.Append([]string{column, fn, FormatScalar(value)})
	table.Render()
	return nil
}

func (t *TableFormatter) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}
