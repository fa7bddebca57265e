package normalize

// Candidate column names for each semantic rental field, in priority order.
// These encode every naming variant seen in historical uploads, including
// literal misspellings ("Rental Period STart") that must stay verbatim.
var (
	StartDateKeys = []string{"Rental Start Date", "Rental Period Start", "Rental Period STart"}
	EndDateKeys   = []string{"Rental End Date", "Rental Period ENd", "Rental Period End"}
	RateKeys      = []string{"Covered Rental Rate", "Rental Rate"}
	DaysKeys      = []string{"Total Rental Dates", "Rental Days Total"}
	VehicleKeys   = []string{"Rental Car Assigned", "Rental Vehicle", "Vehicle"}
	PlateKeys     = []string{"License Plate", "Plate"}
	InsuredKeys   = []string{"Insured Name", "Insured"}
	ClaimKeys     = []string{"Claim Number", "Claim #", "Claim"}
)
