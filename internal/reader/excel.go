package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadExcel reads the first sheet of an xlsx workbook into a Dataset.
//
// The first row is the header. Trailing cells excelize omits from short rows
// are padded with empty strings so every row covers the full column set.
func ReadExcel(path string) (*Dataset, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	records, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	if len(records) == 0 || len(records[0]) == 0 {
		return nil, headerError(path)
	}

	header := records[0]
	for _, col := range header {
		if col == "" {
			return nil, headerError(path)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{Columns: header, Rows: rows}, nil
}
