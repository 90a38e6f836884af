// Package reader loads tabular files into an in-memory Dataset.
//
// Supported formats are delimited text (csv/tsv), parquet, and xlsx, chosen
// by file extension. All loaders return the same textual row model: cell
// values stay raw strings and any typing happens downstream.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingHeader is returned when a file has no header row
	ErrMissingHeader = errors.New("missing or empty header row")

	// ErrUnsupportedFormat is returned for file extensions no loader handles
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Row maps column names to raw textual cell values.
type Row map[string]string

// Dataset is a loaded table: the header-ordered column list plus all rows.
//
// A Dataset is read-only after loading; filtering builds new row slices and
// never mutates the original.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether name is one of the dataset's columns.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Options control how delimited files are read.
type Options struct {
	// Delimiter overrides the field delimiter for csv/tsv input.
	// Zero means the format default (comma, or tab for .tsv).
	Delimiter rune
}

// Load reads the file at path into a Dataset, dispatching on extension.
//
// Recognized extensions: .csv, .tsv (delimited text), .parquet, .xlsx.
// Anything else is read as delimited text, so plain-text exports without a
// conventional extension still work.
func Load(path string, opts Options) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return ReadParquet(path)
	case ".xlsx":
		return ReadExcel(path)
	case ".tsv":
		delim := opts.Delimiter
		if delim == 0 {
			delim = '\t'
		}
		return ReadCSV(path, delim)
	default:
		delim := opts.Delimiter
		if delim == 0 {
			delim = ','
		}
		return ReadCSV(path, delim)
	}
}

// headerError reports a missing/blank header with the file path for context.
func headerError(path string) error {
	return fmt.Errorf("%w in %s", ErrMissingHeader, path)
}
