//go:build ignore

// Command generate writes the sample product catalogue used in the README
// examples as CSV, Parquet and XLSX.
//
//	go run testdata/generate.go
package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
	"github.com/xuri/excelize/v2"
)

type Product struct {
	Name   string  `parquet:"name"`
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
}

var products = []Product{
	{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9},
	{Name: "galaxy s23 ultra", Brand: "samsung", Price: 1199, Rating: 4.8},
	{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6},
	{Name: "poco x5 pro", Brand: "xiaomi", Price: 299, Rating: 4.4},
}

var header = []string{"name", "brand", "price", "rating"}

func record(p Product) []string {
	return []string{p.Name, p.Brand, strconv.FormatInt(p.Price, 10), strconv.FormatFloat(p.Rating, 'f', -1, 64)}
}

func main() {
	writeCSV("products.csv")
	writeParquet("products.parquet")
	writeXLSX("products.xlsx")
	log.Printf("Generated products.{csv,parquet,xlsx} with %d products", len(products))
}

func writeCSV(path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		log.Fatal(err)
	}
	for _, p := range products {
		if err := w.Write(record(p)); err != nil {
			log.Fatal(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}
}

func writeParquet(path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Product](file)
	if _, err := writer.Write(products); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
}

func writeXLSX(path string) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := [][]string{header}
	for _, p := range products {
		rows = append(rows, record(p))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			log.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		log.Fatal(err)
	}
}
