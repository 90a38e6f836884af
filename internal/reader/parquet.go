package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// ReadParquet reads a parquet file into a Dataset.
//
// Column order comes from the file schema. Values are rendered back to text
// so parquet input flows through the same raw-cell model as delimited files:
// integers and floats via strconv, booleans as true/false.
func ReadParquet(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	schema := pqFile.Schema()
	fields := schema.Fields()
	if len(fields) == 0 {
		return nil, headerError(path)
	}

	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, field.Name())
	}

	pqReader := parquet.NewReader(pqFile)
	defer func() { _ = pqReader.Close() }()

	rows := make([]Row, 0)
	for {
		raw := make(map[string]interface{})
		err := pqReader.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(Row, len(columns))
		for _, col := range columns {
			row[col] = cellText(raw[col])
		}
		rows = append(rows, row)
	}

	return &Dataset{Columns: columns, Rows: rows}, nil
}

// cellText renders a parquet value as a raw textual cell.
func cellText(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
