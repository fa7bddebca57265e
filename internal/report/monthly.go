// Package report derives financial summaries from cross-reference output:
// per-month and per-vehicle income, toll totals, and rate statistics.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fleetbill-dev/fleetbill/internal/model"
	"github.com/fleetbill-dev/fleetbill/internal/normalize"
)

// UndatedBucket is the month key for rentals whose start date could not be
// parsed. It always sorts after every dated month.
const UndatedBucket = "Undated"

// RateStats tracks min/max/average over strictly positive recorded rates.
type RateStats struct {
	Min decimal.Decimal
	Max decimal.Decimal
	Avg decimal.Decimal

	sum decimal.Decimal
	n   int64
}

func (s *RateStats) observe(rate decimal.Decimal) {
	if !rate.IsPositive() {
		return
	}
	if s.n == 0 || rate.LessThan(s.Min) {
		s.Min = rate
	}
	if s.n == 0 || rate.GreaterThan(s.Max) {
		s.Max = rate
	}
	s.sum = s.sum.Add(rate)
	s.n++
	s.Avg = s.sum.Div(decimal.NewFromInt(s.n))
}

// fallback fills Avg with the override rate when no positive recorded rate
// was ever observed.
func (s *RateStats) fallback(override decimal.Decimal) {
	if s.n == 0 {
		s.Avg = override
	}
}

// VehicleSummary is one vehicle's totals within a month.
type VehicleSummary struct {
	Vehicle          string
	Income           decimal.Decimal
	PaidIncome       decimal.Decimal
	Rentals          int
	EstimatedRentals int
	TollTotal        decimal.Decimal
	Days             int
	Rates            RateStats
}

// Net returns income less tolls.
func (s VehicleSummary) Net() decimal.Decimal {
	return s.Income.Sub(s.TollTotal)
}

// MonthSummary aggregates all rentals that started in one calendar month.
type MonthSummary struct {
	Month            string // "YYYY-MM" or UndatedBucket
	Income           decimal.Decimal
	PaidIncome       decimal.Decimal
	Rentals          int
	EstimatedRentals int
	TollTotal        decimal.Decimal
	Days             int
	Rates            RateStats
	Vehicles         []VehicleSummary
}

// Net returns income less tolls.
func (m MonthSummary) Net() decimal.Decimal {
	return m.Income.Sub(m.TollTotal)
}

// Monthly rolls augmented rentals up into per-month, per-vehicle summaries.
// overrides supplies a fallback daily rate per vehicle name, applied when a
// rental's recorded rate is zero or missing; income computed that way is
// counted as estimated. Months sort descending with the undated bucket
// last; vehicles within a month sort by income, highest first.
func Monthly(rentals []model.AugmentedRental, overrides map[string]decimal.Decimal) []MonthSummary {
	type vehicleKey struct {
		month   string
		vehicle string
	}

	months := make(map[string]*MonthSummary)
	vehicles := make(map[vehicleKey]*VehicleSummary)
	vehicleOrder := make(map[string][]string) // month -> vehicle names, first-seen

	for _, r := range rentals {
		name, _ := r.Record.GetString(normalize.VehicleKeys...)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		monthKey := UndatedBucket
		if v, ok := r.Record.Get(normalize.StartDateKeys...); ok {
			if start, ok := normalize.Date(v); ok {
				monthKey = start.Format("2006-01")
			}
		}

		recorded := decimal.Zero
		if v, ok := r.Record.Get(normalize.RateKeys...); ok {
			if d, ok := normalize.Amount(v); ok {
				recorded = d
			}
		}
		days := 1
		if v, ok := r.Record.Get(normalize.DaysKeys...); ok {
			if n, ok := normalize.Count(v); ok {
				days = n
			}
		}

		override := overrides[name]
		effective := recorded
		estimated := false
		if !recorded.IsPositive() {
			effective = override
			estimated = true
		}

		daysDec := decimal.NewFromInt(int64(days))
		income := effective.Mul(daysDec)
		paid := decimal.Zero
		if !estimated {
			paid = recorded.Mul(daysDec)
		}

		m, ok := months[monthKey]
		if !ok {
			m = &MonthSummary{Month: monthKey}
			months[monthKey] = m
		}
		vk := vehicleKey{month: monthKey, vehicle: name}
		vs, ok := vehicles[vk]
		if !ok {
			vs = &VehicleSummary{Vehicle: name}
			vehicles[vk] = vs
			vehicleOrder[monthKey] = append(vehicleOrder[monthKey], name)
		}

		m.Income = m.Income.Add(income)
		m.PaidIncome = m.PaidIncome.Add(paid)
		m.TollTotal = m.TollTotal.Add(r.MatchedTollTotal)
		m.Rentals++
		m.Days += days
		m.Rates.observe(recorded)
		m.Rates.fallback(override)

		vs.Income = vs.Income.Add(income)
		vs.PaidIncome = vs.PaidIncome.Add(paid)
		vs.TollTotal = vs.TollTotal.Add(r.MatchedTollTotal)
		vs.Rentals++
		vs.Days += days
		vs.Rates.observe(recorded)
		vs.Rates.fallback(override)

		if estimated {
			m.EstimatedRentals++
			vs.EstimatedRentals++
		}
	}

	out := make([]MonthSummary, 0, len(months))
	for key, m := range months {
		for _, name := range vehicleOrder[key] {
			m.Vehicles = append(m.Vehicles, *vehicles[vehicleKey{month: key, vehicle: name}])
		}
		sort.SliceStable(m.Vehicles, func(i, j int) bool {
			return m.Vehicles[i].Income.GreaterThan(m.Vehicles[j].Income)
		})
		out = append(out, *m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		// Undated is a fixed last bucket regardless of lexicographic order.
		if out[i].Month == UndatedBucket {
			return false
		}
		if out[j].Month == UndatedBucket {
			return true
		}
		return out[i].Month > out[j].Month
	})
	return out
}
