package reader

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadCSV reads a delimited text file into a Dataset.
//
// The first record is the header; it defines the column set and order for
// every row. Records with a different field count than the header are an
// error (encoding/csv enforces this). Cell values are kept exactly as they
// appear in the file.
func ReadCSV(path string, delimiter rune) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	csvReader := csv.NewReader(file)
	csvReader.Comma = delimiter

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(records) == 0 {
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
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return &Dataset{Columns: header, Rows: rows}, nil
}
