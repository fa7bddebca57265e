package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/fleetbill-dev/fleetbill/internal/model"
	"github.com/fleetbill-dev/fleetbill/internal/normalize"
)

// Candidate column names seen across toll authority exports.
var (
	tollPlateKeys    = []string{"License Plate", "Plate", "Vehicle Plate", "Plate Number"}
	tollDateKeys     = []string{"Transaction Date", "Date", "Posted Date", "Exit Date"}
	tollAmountKeys   = []string{"Amount", "Toll Amount", "Charge", "Toll"}
	tollLocationKeys = []string{"Location", "Plaza", "Exit Plaza", "Lane"}
	tollIDKeys       = []string{"Transaction ID", "Transaction Number", "Reference", "Ref #"}
	tollTypeKeys     = []string{"Transaction Type", "Type", "Activity"}
)

// TollsFromXLSX reads the first sheet of a toll-transaction XLSX export.
// Rows with a missing, zero, or negative amount are dropped: the engine's
// contract requires valid non-negative amounts.
func TollsFromXLSX(path string) ([]model.TollCharge, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening tolls file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("tolls file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	return tollsFromRecords(recordsFromRows(rows)), nil
}

// TollsFromCSV reads a toll-transaction CSV export, first row as header.
func TollsFromCSV(r io.Reader) ([]model.TollCharge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading tolls CSV: %w", err)
	}
	return tollsFromRecords(recordsFromRows(rows)), nil
}

func tollsFromRecords(records []model.Record) []model.TollCharge {
	var tolls []model.TollCharge
	for _, rec := range records {
		t, ok := tollFromRecord(rec)
		if !ok {
			continue
		}
		tolls = append(tolls, t)
	}
	return tolls
}

// tollFromRecord maps a loose row to a TollCharge. ok is false when the row
// has no usable amount.
func tollFromRecord(rec model.Record) (model.TollCharge, bool) {
	v, ok := rec.Get(tollAmountKeys...)
	if !ok {
		return model.TollCharge{}, false
	}
	amount, ok := normalize.Amount(v)
	if !ok || !amount.IsPositive() {
		return model.TollCharge{}, false
	}

	t := model.TollCharge{Amount: amount}
	t.Plate, _ = rec.GetString(tollPlateKeys...)
	if v, ok := rec.Get(tollDateKeys...); ok {
		if d, ok := normalize.Date(v); ok {
			t.Date = d
		}
	}
	t.Location, _ = rec.GetString(tollLocationKeys...)
	t.TransactionID, _ = rec.GetString(tollIDKeys...)
	t.Type, _ = rec.GetString(tollTypeKeys...)
	return t, true
}
