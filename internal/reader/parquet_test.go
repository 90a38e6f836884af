package reader

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/parquet-go/parquet-go"
)

// Phone is the row schema for parquet test fixtures
type Phone struct {
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
	InSale bool    `parquet:"in_sale"`
}

// createParquetFile writes phones to a temporary parquet file
func createParquetFile(t *testing.T, phones []Phone) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phones.parquet")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[Phone](f)
	if _, err := writer.Write(phones); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}

func TestReadParquet(t *testing.T) {
	path := createParquetFile(t, []Phone{
		{Brand: "xiaomi", Price: 500, Rating: 4.5, InSale: true},
		{Brand: "apple", Price: 900, Rating: 4.8, InSale: false},
	})

	ds, err := ReadParquet(path)
	if err != nil {
		t.Fatalf("ReadParquet() error = %v", err)
	}

	wantColumns := []string{"brand", "price", "rating", "in_sale"}
	if !reflect.DeepEqual(ds.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", ds.Columns, wantColumns)
	}

	if len(ds.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(ds.Rows))
	}

	// values arrive as text, same model as delimited input
	want := Row{"brand": "xiaomi", "price": "500", "rating": "4.5", "in_sale": "true"}
	if !reflect.DeepEqual(ds.Rows[0], want) {
		t.Errorf("Rows[0] = %v, want %v", ds.Rows[0], want)
	}
}

func TestReadParquet_NotParquet(t *testing.T) {
	path := writeTempFile(t, "fake.parquet", "brand,price\nxiaomi,500\n")

	if _, err := ReadParquet(path); err == nil {
		t.Errorf("ReadParquet() expected error for non-parquet content")
	}
}

func TestLoad_DispatchesParquet(t *testing.T) {
	path := createParquetFile(t, []Phone{{Brand: "apple", Price: 900, Rating: 4.8}})

	ds, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ds.Rows[0]["brand"] != "apple" {
		t.Errorf("Rows[0][brand] = %q, want %q", ds.Rows[0]["brand"], "apple")
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "xiaomi", "xiaomi"},
		{"bytes", []byte("apple"), "apple"},
		{"bool", true, "true"},
		{"int32", int32(7), "7"},
		{"int64", int64(900), "900"},
		{"float64", 4.5, "4.5"},
		{"float64 integral", 500.0, "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellText(tt.in); got != tt.want {
				t.Errorf("cellText(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
