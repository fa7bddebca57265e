// Package normalize coerces the loosely-typed values found in uploaded
// spreadsheets (dates in three encodings, license plates in assorted
// formats) into canonical forms the matching engine can compare.
package normalize

import (
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial dates count days from 1899-12-30, so serial 25569 is
// 1970-01-01 UTC.
const serialUnixEpoch = 25569

// Known date string layouts, most common first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Date coerces a spreadsheet cell value into a UTC date. It tries, in
// order: native time pass-through, string layouts, numeric spreadsheet
// serial. The first successful coercion wins; if all fail, ok is false.
func Date(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v.UTC(), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return v.UTC(), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		// Fall back to reading the string as a spreadsheet serial.
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return fromSerial(serial)
		}
		return time.Time{}, false
	case float64:
		return fromSerial(v)
	case float32:
		return fromSerial(float64(v))
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	default:
		return time.Time{}, false
	}
}

func fromSerial(serial float64) (time.Time, bool) {
	if serial != serial || serial <= 0 { // NaN or nonsense
		return time.Time{}, false
	}
	ms := (serial - serialUnixEpoch) * 86400 * 1000
	return time.UnixMilli(int64(ms)).UTC(), true
}

// Plate canonicalizes a license plate for matching: uppercase, strip every
// character outside A-Z0-9, then drop a leading "TX" state prefix. The
// canonicalization is lossy; acceptable for a single-region fleet.
func Plate(plate string) string {
	if plate == "" {
		return ""
	}
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		default:
			return -1
		}
	}, plate)
	return strings.TrimPrefix(cleaned, "TX")
}

// SplitPlates splits a multi-plate field like "ABC123 / DEF456" and returns
// the deduplicated normalized plates, empties dropped.
func SplitPlates(field string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(field, "/") {
		p := Plate(strings.TrimSpace(part))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
