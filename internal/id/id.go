package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatInvoiceNumber returns an invoice number like "INV-2025-01-001".
func FormatInvoiceNumber(year, month, seq int) string {
	return fmt.Sprintf("INV-%04d-%02d-%03d", year, month, seq)
}

// ParseInvoiceNumber parses "INV-2025-01-001" into year, month, seq.
func ParseInvoiceNumber(num string) (year, month, seq int, err error) {
	rest, ok := strings.CutPrefix(num, "INV-")
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid invoice number format: %q", num)
	}

	parts := strings.SplitN(rest, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid invoice number format: %q", num)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in invoice number %q: %w", num, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in invoice number %q: %w", num, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in invoice number %q: %w", num, err)
	}

	return year, month, seq, nil
}
