package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fleetbill-dev/fleetbill/internal/model"
)

// RentalsFromXLSX reads the first sheet of an XLSX upload into loosely-keyed
// records. The first non-empty row is the header; its raw column names
// become record keys. Empty rows are skipped.
func RentalsFromXLSX(path string) ([]model.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening rentals file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("rentals file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	return recordsFromRows(rows), nil
}

// RentalsFromCSV reads a CSV upload into loosely-keyed records, first row
// as header.
func RentalsFromCSV(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // uploads are ragged

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rentals CSV: %w", err)
	}
	return recordsFromRows(rows), nil
}

func recordsFromRows(rows [][]string) []model.Record {
	var header []string
	var records []model.Record
	for _, row := range rows {
		if rowEmpty(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		raw := make(map[string]any, len(header))
		for i, key := range header {
			if strings.TrimSpace(key) == "" {
				continue
			}
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				raw[key] = row[i]
			}
		}
		if len(raw) == 0 {
			continue
		}
		records = append(records, model.NewRecord(raw))
	}
	return records
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
