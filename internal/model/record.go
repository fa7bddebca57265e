package model

import "strings"

// Record is one row of an uploaded spreadsheet. Column names vary across
// sources, so values are stored under normalized (lowercase, trimmed) keys
// and looked up by trying candidate names in priority order.
type Record struct {
	fields map[string]any
	keys   []string // normalized keys in first-seen order
}

// NewRecord builds a Record from raw column-name -> value pairs. Later
// duplicates of an already-seen normalized key are ignored.
func NewRecord(raw map[string]any) Record {
	r := Record{fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		nk := normalizeKey(k)
		if _, seen := r.fields[nk]; seen {
			continue
		}
		r.fields[nk] = v
		r.keys = append(r.keys, nk)
	}
	return r
}

// Get returns the first non-nil value found among the candidate keys, tried
// in order. The first candidate that matches wins even if a later one also
// holds a value.
func (r Record) Get(candidates ...string) (any, bool) {
	for _, c := range candidates {
		v, ok := r.fields[normalizeKey(c)]
		if !ok || v == nil {
			continue
		}
		return v, true
	}
	return nil, false
}

// GetString is Get narrowed to string values; non-string hits are skipped.
func (r Record) GetString(candidates ...string) (string, bool) {
	for _, c := range candidates {
		v, ok := r.fields[normalizeKey(c)]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

// Set stores a value under the normalized form of key, preserving the key's
// position if already present.
func (r *Record) Set(key string, value any) {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}
	nk := normalizeKey(key)
	if _, seen := r.fields[nk]; !seen {
		r.keys = append(r.keys, nk)
	}
	r.fields[nk] = value
}

// Clone returns an independent copy; mutating the copy never touches the
// source record.
func (r Record) Clone() Record {
	out := Record{
		fields: make(map[string]any, len(r.fields)),
		keys:   make([]string, len(r.keys)),
	}
	for k, v := range r.fields {
		out.fields[k] = v
	}
	copy(out.keys, r.keys)
	return out
}

// Keys returns the normalized keys in first-seen order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
