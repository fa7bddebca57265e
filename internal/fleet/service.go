package fleet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fleetbill-dev/fleetbill/internal/model"
)

// Service provides in-memory lookup over the vehicle registry.
type Service struct {
	vehicles []model.VehicleDetail
	byVIN    map[string]model.VehicleDetail
}

// NewService creates a Service from a slice of vehicles.
func NewService(vehicles []model.VehicleDetail) *Service {
	byVIN := make(map[string]model.VehicleDetail, len(vehicles))
	for _, v := range vehicles {
		byVIN[v.VIN] = v
	}
	return &Service{vehicles: vehicles, byVIN: byVIN}
}

// Load reads fleet/fleet.csv from a project root and returns a Service. A
// missing file yields an empty registry, not an error.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, "fleet", "fleet.csv")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening fleet registry: %w", err)
	}
	defer f.Close()

	vehicles, err := ReadVehicles(f)
	if err != nil {
		return nil, fmt.Errorf("reading fleet registry: %w", err)
	}
	return NewService(vehicles), nil
}

// Save writes the registry to fleet/fleet.csv under the project root.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, "fleet")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating fleet dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "fleet.csv"))
	if err != nil {
		return fmt.Errorf("creating fleet.csv: %w", err)
	}
	defer f.Close()

	if err := WriteVehicles(f, s.vehicles); err != nil {
		return fmt.Errorf("writing fleet.csv: %w", err)
	}
	return nil
}

// All returns all vehicles.
func (s *Service) All() []model.VehicleDetail {
	return s.vehicles
}

// ByVIN returns a vehicle by VIN.
func (s *Service) ByVIN(vin string) (model.VehicleDetail, bool) {
	v, ok := s.byVIN[vin]
	return v, ok
}

// Add appends a vehicle to the registry. VINs must be unique.
func (s *Service) Add(v model.VehicleDetail) error {
	if v.VIN == "" {
		return fmt.Errorf("vehicle %q has no VIN", v.Name)
	}
	if _, ok := s.byVIN[v.VIN]; ok {
		return fmt.Errorf("duplicate VIN %s", v.VIN)
	}
	s.vehicles = append(s.vehicles, v)
	s.byVIN[v.VIN] = v
	return nil
}
