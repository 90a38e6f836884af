//go:build ignore

// Generates the sample parquet file used for manual testing:
//
//	go run testdata/generate.go
package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
)

type Phone struct {
	ID     string  `parquet:"id"`
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
}

func main() {
	phones := []Phone{
		{ID: uuid.NewString(), Brand: "xiaomi", Price: 500, Rating: 4.5},
		{ID: uuid.NewString(), Brand: "apple", Price: 900, Rating: 4.8},
		{ID: uuid.NewString(), Brand: "samsung", Price: 700, Rating: 4.2},
		{ID: uuid.NewString(), Brand: "nokia", Price: 150, Rating: 3.9},
		{ID: uuid.NewString(), Brand: "google", Price: 650, Rating: 4.4},
	}

	file, err := os.Create("testdata/phones.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Phone](file)
	defer writer.Close()

	if _, err := writer.Write(phones); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated testdata/phones.parquet with 5 phones")
}
