// Package crossref reconciles toll charges against rental periods: each
// rental absorbs the tolls incurred on its vehicle's plates during its
// window, and everything left over is grouped by fleet vehicle or reported
// as unassigned.
package crossref

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleetbill-dev/fleetbill/internal/fleet"
	"github.com/fleetbill-dev/fleetbill/internal/model"
	"github.com/fleetbill-dev/fleetbill/internal/normalize"
)

// CrossReference matches tolls to rental windows by plate and date. It is a
// pure function of its inputs: records are cloned before any rewrite, and
// malformed rows degrade to empty matches rather than errors. Every input
// toll ends up in exactly one of: a rental's MatchedTolls (dedup by
// transaction ID), a vehicle's unmatched group, or the unassigned list.
func CrossReference(rentals []model.Record, tolls []model.TollCharge, vehicles []model.VehicleDetail) model.Result {
	idx := fleet.NewIndex(vehicles)

	// Bucket tolls by normalized plate, preserving input order.
	buckets := make(map[string][]model.TollCharge)
	for _, t := range tolls {
		plate := normalize.Plate(t.Plate)
		buckets[plate] = append(buckets[plate], t)
	}

	// Transaction IDs absorbed by some rental; used to build the unmatched
	// pool afterwards.
	claimed := make(map[string]bool)

	result := model.Result{}
	for _, rec := range rentals {
		aug := matchRental(rec, buckets, vehicles)
		for _, t := range aug.MatchedTolls {
			if t.TransactionID != "" {
				claimed[t.TransactionID] = true
			}
		}
		result.Rentals = append(result.Rentals, aug)
	}

	// Everything not claimed by a rental: group by fleet vehicle when the
	// plate is known, else leave unassigned.
	groups := make(map[string]*model.UnmatchedTollGroup)
	var vinOrder []string
	for _, t := range tolls {
		if t.TransactionID != "" && claimed[t.TransactionID] {
			continue
		}
		v, ok := idx.ByPlate(t.Plate)
		if !ok {
			result.UnassignedTolls = append(result.UnassignedTolls, t)
			continue
		}
		g, ok := groups[v.VIN]
		if !ok {
			g = &model.UnmatchedTollGroup{Vehicle: v, TotalAmount: decimal.Zero}
			groups[v.VIN] = g
			vinOrder = append(vinOrder, v.VIN)
		}
		g.Tolls = append(g.Tolls, t)
		g.TotalAmount = g.TotalAmount.Add(t.Amount)
	}

	for _, vin := range vinOrder {
		g := groups[vin]
		sortTollsByDateDesc(g.Tolls)
		result.UnmatchedGroups = append(result.UnmatchedGroups, *g)
	}
	sortTollsByDateDesc(result.UnassignedTolls)

	return result
}

// matchRental computes one rental's matched tolls, independent of every
// other rental. Overlapping rental windows on the same vehicle may each
// claim the same toll; that is a data anomaly the engine deliberately does
// not arbitrate.
func matchRental(rec model.Record, buckets map[string][]model.TollCharge, vehicles []model.VehicleDetail) model.AugmentedRental {
	out := rec.Clone()

	// Resolve the fleet vehicle from the free-text name and rewrite the
	// matched field (only that field) to the canonical name.
	var vehicle *model.VehicleDetail
	for _, key := range normalize.VehicleKeys {
		name, ok := rec.GetString(key)
		if !ok {
			continue
		}
		// First present field wins, even when empty or unresolvable.
		if vehicle = fleet.FindBestByName(name, vehicles); vehicle != nil {
			out.Set(key, vehicle.Name)
		}
		break
	}

	// An explicit plate column wins over the resolved vehicle's registry
	// plates, even when both are present.
	var plates []string
	if field, ok := rec.GetString(normalize.PlateKeys...); ok && strings.TrimSpace(field) != "" {
		plates = normalize.SplitPlates(field)
	} else if vehicle != nil {
		seen := make(map[string]bool)
		for _, raw := range []string{vehicle.Plate, vehicle.PaperPlate} {
			p := normalize.Plate(raw)
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			plates = append(plates, p)
		}
	}

	start, startOK := getDate(rec, normalize.StartDateKeys)
	end, endOK := getDate(rec, normalize.EndDateKeys)

	matched := newTollSet()
	if startOK && endOK {
		for _, plate := range plates {
			for _, t := range buckets[plate] {
				if t.Date.IsZero() || t.Date.Before(start) || t.Date.After(end) {
					continue
				}
				matched.add(t)
			}
		}
	}

	tolls := matched.ordered()
	total := decimal.Zero
	for _, t := range tolls {
		total = total.Add(t.Amount)
	}

	return model.AugmentedRental{
		Record:           out,
		Vehicle:          vehicle,
		MatchedTolls:     tolls,
		MatchedTollTotal: total,
	}
}

// tollSet deduplicates tolls by transaction ID while preserving discovery
// order. A re-seen ID replaces the stored toll in place (last-seen wins).
// Tolls without an ID are never collapsed: each occupies its own slot.
type tollSet struct {
	order []model.TollCharge
	byID  map[string]int
}

func newTollSet() *tollSet {
	return &tollSet{byID: make(map[string]int)}
}

func (s *tollSet) add(t model.TollCharge) {
	if t.TransactionID == "" {
		s.order = append(s.order, t)
		return
	}
	if i, ok := s.byID[t.TransactionID]; ok {
		s.order[i] = t
		return
	}
	s.byID[t.TransactionID] = len(s.order)
	s.order = append(s.order, t)
}

func (s *tollSet) ordered() []model.TollCharge {
	return s.order
}

func getDate(rec model.Record, keys []string) (time.Time, bool) {
	v, ok := rec.Get(keys...)
	if !ok {
		return time.Time{}, false
	}
	return normalize.Date(v)
}

// sortTollsByDateDesc orders newest first; undated tolls sort as epoch 0,
// landing at the end.
func sortTollsByDateDesc(tolls []model.TollCharge) {
	sort.SliceStable(tolls, func(i, j int) bool {
		ti, tj := tolls[i].Date, tolls[j].Date
		if ti.IsZero() {
			ti = time.Unix(0, 0)
		}
		if tj.IsZero() {
			tj = time.Unix(0, 0)
		}
		return ti.After(tj)
	})
}
