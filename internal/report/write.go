package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fleetbill-dev/fleetbill/internal/id"
	"github.com/fleetbill-dev/fleetbill/internal/model"
	"github.com/fleetbill-dev/fleetbill/internal/normalize"
)

const dateFormat = "2006-01-02"

// WriteAll writes the four report CSVs for one reconciliation run into dir.
func WriteAll(dir string, res model.Result, months []MonthSummary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"invoices.csv", func(w io.Writer) error { return WriteInvoices(w, res.Rentals) }},
		{"unmatched.csv", func(w io.Writer) error { return WriteUnmatched(w, res.UnmatchedGroups) }},
		{"unassigned.csv", func(w io.Writer) error { return WriteUnassigned(w, res.UnassignedTolls) }},
		{"monthly.csv", func(w io.Writer) error { return WriteMonthly(w, months) }},
	}

	for _, item := range writers {
		f, err := os.Create(filepath.Join(dir, item.name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", item.name, err)
		}
		if err := item.write(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", item.name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", item.name, err)
		}
	}
	return nil
}

// WriteInvoices writes one row per rental with a sequential invoice number
// per start month. Undated rentals share the INV-0000-00 sequence.
func WriteInvoices(w io.Writer, rentals []model.AugmentedRental) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"invoice_number", "insured", "claim", "vehicle", "rental_start", "rental_end", "rate", "days", "toll_total"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	seq := make(map[string]int) // "YYYY-MM" -> last used sequence
	for i, r := range rentals {
		var start, end time.Time
		if v, ok := r.Record.Get(normalize.StartDateKeys...); ok {
			start, _ = normalize.Date(v)
		}
		if v, ok := r.Record.Get(normalize.EndDateKeys...); ok {
			end, _ = normalize.Date(v)
		}

		monthKey := "0000-00"
		year, month := 0, 0
		if !start.IsZero() {
			year, month = start.Year(), int(start.Month())
			monthKey = start.Format("2006-01")
		}
		seq[monthKey]++

		insured, _ := r.Record.GetString(normalize.InsuredKeys...)
		claim, _ := r.Record.GetString(normalize.ClaimKeys...)
		vehicle, _ := r.Record.GetString(normalize.VehicleKeys...)
		rate, _ := r.Record.GetString(normalize.RateKeys...)
		days, _ := r.Record.GetString(normalize.DaysKeys...)

		row := []string{
			id.FormatInvoiceNumber(year, month, seq[monthKey]),
			insured,
			claim,
			vehicle,
			formatDate(start),
			formatDate(end),
			rate,
			days,
			r.MatchedTollTotal.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteUnmatched writes one row per grouped toll, carrying its vehicle and
// the group total.
func WriteUnmatched(w io.Writer, groups []model.UnmatchedTollGroup) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"vehicle", "vin", "plate", "date", "location", "transaction_id", "amount", "group_total"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, g := range groups {
		for _, t := range g.Tolls {
			row := []string{
				g.Vehicle.Name,
				g.Vehicle.VIN,
				t.Plate,
				formatDate(t.Date),
				t.Location,
				t.TransactionID,
				t.Amount.StringFixed(2),
				g.TotalAmount.StringFixed(2),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing group %s: %w", g.Vehicle.VIN, err)
			}
		}
	}
	return cw.Error()
}

// WriteUnassigned writes the tolls no fleet vehicle accounts for.
func WriteUnassigned(w io.Writer, tolls []model.TollCharge) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"plate", "date", "location", "transaction_id", "type", "amount"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range tolls {
		row := []string{
			t.Plate,
			formatDate(t.Date),
			t.Location,
			t.TransactionID,
			t.Type,
			t.Amount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteMonthly writes the month summaries: a totals row per month (empty
// vehicle column) followed by the month's per-vehicle rows.
func WriteMonthly(w io.Writer, months []MonthSummary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"month", "vehicle", "income", "paid_income", "net", "rentals", "estimated", "toll_total", "days", "min_rate", "max_rate", "avg_rate"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, m := range months {
		row := []string{
			m.Month, "",
			m.Income.StringFixed(2),
			m.PaidIncome.StringFixed(2),
			m.Net().StringFixed(2),
			fmt.Sprint(m.Rentals),
			fmt.Sprint(m.EstimatedRentals),
			m.TollTotal.StringFixed(2),
			fmt.Sprint(m.Days),
			m.Rates.Min.StringFixed(2),
			m.Rates.Max.StringFixed(2),
			m.Rates.Avg.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing month %s: %w", m.Month, err)
		}
		for _, v := range m.Vehicles {
			row := []string{
				m.Month, v.Vehicle,
				v.Income.StringFixed(2),
				v.PaidIncome.StringFixed(2),
				v.Net().StringFixed(2),
				fmt.Sprint(v.Rentals),
				fmt.Sprint(v.EstimatedRentals),
				v.TollTotal.StringFixed(2),
				fmt.Sprint(v.Days),
				v.Rates.Min.StringFixed(2),
				v.Rates.Max.StringFixed(2),
				v.Rates.Avg.StringFixed(2),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing month %s vehicle %s: %w", m.Month, v.Vehicle, err)
			}
		}
	}
	return cw.Error()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
