package model

import "github.com/shopspring/decimal"

// AugmentedRental is a rental row plus the tolls matched to its rental
// window. The source Record is cloned; the engine never mutates its inputs.
type AugmentedRental struct {
	Record           Record
	Vehicle          *VehicleDetail // resolved fleet vehicle, nil if none
	MatchedTolls     []TollCharge   // discovery order after dedup
	MatchedTollTotal decimal.Decimal
}

// UnmatchedTollGroup collects tolls attributed to a fleet vehicle by plate
// but not absorbed by any rental window.
type UnmatchedTollGroup struct {
	Vehicle     VehicleDetail
	Tolls       []TollCharge
	TotalAmount decimal.Decimal
}

// Result is the cross-reference output. Every input toll lands in exactly
// one of: some rental's MatchedTolls (dedup by transaction ID), some group's
// Tolls, or UnassignedTolls.
type Result struct {
	Rentals         []AugmentedRental
	UnmatchedGroups []UnmatchedTollGroup
	UnassignedTolls []TollCharge
}
