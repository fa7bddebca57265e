// Package fleet provides lookup over the vehicle registry: plate index for
// toll attribution and best-match lookup by free-text vehicle name.
package fleet

import (
	"fmt"
	"strings"

	"github.com/fleetbill-dev/fleetbill/internal/model"
	"github.com/fleetbill-dev/fleetbill/internal/normalize"
)

// Index maps normalized plates to vehicles.
type Index struct {
	byPlate  map[string]model.VehicleDetail
	warnings []string
}

// NewIndex builds a plate index from the registry. Primary and paper plates
// are both indexed; empty plates are skipped. Duplicate plates across
// vehicles are unsupported: the later vehicle wins and a warning is
// recorded.
func NewIndex(vehicles []model.VehicleDetail) *Index {
	idx := &Index{byPlate: make(map[string]model.VehicleDetail, len(vehicles)*2)}
	for _, v := range vehicles {
		for _, raw := range []string{v.Plate, v.PaperPlate} {
			plate := normalize.Plate(raw)
			if plate == "" {
				continue
			}
			if prev, ok := idx.byPlate[plate]; ok && prev.VIN != v.VIN {
				idx.warnings = append(idx.warnings,
					fmt.Sprintf("plate %s maps to both %q and %q; keeping %q", plate, prev.Name, v.Name, v.Name))
			}
			idx.byPlate[plate] = v
		}
	}
	return idx
}

// ByPlate looks up a vehicle by plate. The plate is normalized before the
// lookup.
func (idx *Index) ByPlate(plate string) (model.VehicleDetail, bool) {
	v, ok := idx.byPlate[normalize.Plate(plate)]
	return v, ok
}

// Warnings returns plate-collision diagnostics collected while building the
// index.
func (idx *Index) Warnings() []string {
	return idx.warnings
}

// FindBestByName resolves a free-text vehicle reference (e.g. "Camry SD
// (white)") against the registry. Among vehicles whose canonical name is a
// prefix of the input, the longest name wins, so "Camry SD" beats "Camry".
// Returns nil when the input is empty or nothing matches.
func FindBestByName(freeText string, vehicles []model.VehicleDetail) *model.VehicleDetail {
	needle := strings.ToLower(strings.TrimSpace(freeText))
	if needle == "" {
		return nil
	}

	var best *model.VehicleDetail
	bestLen := -1
	for i := range vehicles {
		name := strings.ToLower(strings.TrimSpace(vehicles[i].Name))
		if name == "" || !strings.HasPrefix(needle, name) {
			continue
		}
		if len(name) > bestLen {
			best = &vehicles[i]
			bestLen = len(name)
		}
	}
	return best
}
