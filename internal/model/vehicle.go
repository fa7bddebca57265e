package model

// VehicleDetail is a row in fleet.csv: the canonical identity of one fleet
// or personal vehicle. The VIN acts as the primary key for grouping.
type VehicleDetail struct {
	Name       string // canonical free-text label, e.g. "Camry SD"
	VIN        string
	Plate      string // primary license plate
	PaperPlate string // temporary/paper plate, if any
	Make       string
	Model      string
	Year       int
	Notes      string
}
