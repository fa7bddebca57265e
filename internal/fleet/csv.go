package fleet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fleetbill-dev/fleetbill/internal/model"
)

// Header is the CSV header for fleet.csv.
const Header = "name,vin,plate,paper_plate,make,model,year,notes"

const (
	numFields     = 8
	colName       = 0
	colVIN        = 1
	colPlate      = 2
	colPaperPlate = 3
	colMake       = 4
	colModel      = 5
	colYear       = 6
	colNotes      = 7
)

// ReadVehicles reads fleet.csv.
func ReadVehicles(r io.Reader) ([]model.VehicleDetail, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading fleet CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var vehicles []model.VehicleDetail
	for i, rec := range records[1:] {
		v, err := UnmarshalVehicle(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// WriteVehicles writes fleet.csv.
func WriteVehicles(w io.Writer, vehicles []model.VehicleDetail) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"name", "vin", "plate", "paper_plate", "make", "model", "year", "notes"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, v := range vehicles {
		if err := cw.Write(MarshalVehicle(v)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalVehicle converts a VehicleDetail to a CSV row.
func MarshalVehicle(v model.VehicleDetail) []string {
	row := make([]string, numFields)
	row[colName] = v.Name
	row[colVIN] = v.VIN
	row[colPlate] = v.Plate
	row[colPaperPlate] = v.PaperPlate
	row[colMake] = v.Make
	row[colModel] = v.Model
	if v.Year != 0 {
		row[colYear] = strconv.Itoa(v.Year)
	}
	row[colNotes] = v.Notes
	return row
}

// UnmarshalVehicle converts a CSV row to a VehicleDetail.
func UnmarshalVehicle(record []string) (model.VehicleDetail, error) {
	if len(record) != numFields {
		return model.VehicleDetail{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var year int
	if record[colYear] != "" {
		var err error
		year, err = strconv.Atoi(record[colYear])
		if err != nil {
			return model.VehicleDetail{}, fmt.Errorf("parsing year %q: %w", record[colYear], err)
		}
	}

	return model.VehicleDetail{
		Name:       record[colName],
		VIN:        record[colVIN],
		Plate:      record[colPlate],
		PaperPlate: record[colPaperPlate],
		Make:       record[colMake],
		Model:      record[colModel],
		Year:       year,
		Notes:      record[colNotes],
	}, nil
}
