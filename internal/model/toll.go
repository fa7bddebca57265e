package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TollCharge represents a parsed toll-transaction row. Immutable once parsed.
type TollCharge struct {
	Plate         string
	Date          time.Time // zero = unknown/unparseable
	Amount        decimal.Decimal
	Location      string
	TransactionID string // unique when present; may be empty
	Type          string // toll transaction type (TAG, ZIPCASH, etc.)
}
