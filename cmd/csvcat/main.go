package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vegasq/csvcat/internal/output"
	"github.com/vegasq/csvcat/internal/query"
	"github.com/vegasq/csvcat/internal/reader"
)

var (
	filterFlag    = flag.String("filter", "", "Filter in format \"column=operator=value\" (operators: eq, gt, lt)")
	aggregateFlag = flag.String("aggregate", "", "Aggregate in format \"column=function\" (functions: avg, min, max)")
	formatFlag    = flag.String("f", "table", "Output format: table, csv, json")
	delimiterFlag = flag.String("d", "", "Field delimiter for delimited input (default ',' or tab for .tsv)")
	limitFlag     = flag.Int("limit", 0, "Limit number of rows (0 = unlimited)")
	schemaFlag    = flag.Bool("schema", false, "Show column names instead of data")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to display, filter and aggregate tabular files (csv, tsv, parquet, xlsx).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -filter \"price=gt=500\" data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -aggregate \"rating=avg\" data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -filter \"brand=eq=apple\" -aggregate \"price=max\" data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv --schema data.parquet\n", os.Args[0])
	}

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *limitFlag < 0 {
		return fmt.Errorf("-limit must be non-negative, got %d", *limitFlag)
	}
	if *schemaFlag && (*filterFlag != "" || *aggregateFlag != "") {
		return fmt.Errorf("--schema cannot be combined with -filter or -aggregate")
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	// Specs are validated before the file is touched, so a bad operator or
	// function fails fast even when the file is also bad.
	var filterSpec *query.FilterSpec
	if *filterFlag != "" {
		spec, err := query.ParseFilter(*filterFlag)
		if err != nil {
			return err
		}
		filterSpec = spec
	}

	var aggregateSpec *query.AggregateSpec
	if *aggregateFlag != "" {
		spec, err := query.ParseAggregate(*aggregateFlag)
		if err != nil {
			return err
		}
		aggregateSpec = spec
	}

	delimiter, err := parseDelimiter(*delimiterFlag)
	if err != nil {
		return err
	}

	ds, err := reader.Load(filename, reader.Options{Delimiter: delimiter})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file '%s' not found", filename)
		}
		return err
	}

	if *schemaFlag {
		return printSchema(ds)
	}

	result, err := query.Run(ds, filterSpec, aggregateSpec)
	if err != nil {
		if errors.Is(err, query.ErrUnknownColumn) {
			return fmt.Errorf("%w\nAvailable columns: %s", err, strings.Join(ds.Columns, ", "))
		}
		return err
	}

	if result.Scalar != nil {
		return printScalar(aggregateSpec, *result.Scalar)
	}

	rows := result.Rows
	if *limitFlag > 0 && len(rows) > *limitFlag {
		rows = rows[:*limitFlag]
	}

	formatter, err := newFormatter(*formatFlag)
	if err != nil {
		return err
	}
	return formatter.Format(result.Columns, rows)
}

// newFormatter selects the row-set formatter for the -f flag.
func newFormatter(format string) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(os.Stdout), nil
	case "csv":
		return output.NewCSVFormatter(os.Stdout), nil
	case "json":
		return output.NewJSONFormatter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported format '%s' (supported: table, csv, json)", format)
	}
}

// printScalar writes an aggregate result: a summary grid in table mode,
// a bare decimal otherwise.
func printScalar(spec *query.AggregateSpec, value float64) error {
	switch *formatFlag {
	case "table":
		return output.NewTableFormatter(os.Stdout).FormatAggregate(spec.Column, spec.Fn.String(), value)
	case "csv", "json":
		return output.WriteScalar(os.Stdout, value)
	default:
		return fmt.Errorf("unsupported format '%s' (supported: table, csv, json)", *formatFlag)
	}
}

// printSchema lists the dataset's column names, one per line.
func printSchema(ds *reader.Dataset) error {
	for _, col := range ds.Columns {
		if _, err := fmt.Println(col); err != nil {
			return err
		}
	}
	return nil
}

// parseDelimiter turns the -d flag into a rune. The two-character escape
// sequence \t is accepted for shells where a literal tab is awkward.
func parseDelimiter(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if s == `\t` {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("-d must be a single character, got %q", s)
	}
	return runes[0], nil
}
