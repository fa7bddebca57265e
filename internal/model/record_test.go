package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGet_CaseInsensitive(t *testing.T) {
	rec := NewRecord(map[string]any{
		"  Rental Start Date ": "2024-01-01",
		"RENTAL RATE":          50.0,
	})

	v, ok := rec.Get("rental start date")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", v)

	v, ok = rec.Get("Rental Rate")
	require.True(t, ok)
	assert.Equal(t, 50.0, v)
}

func TestRecordGet_PriorityOrder(t *testing.T) {
	rec := NewRecord(map[string]any{
		"Rental Vehicle":      "Corolla",
		"Rental Car Assigned": "Camry SD",
	})

	// The first candidate that hits wins, even when a later key also holds
	// a value.
	v, ok := rec.Get("Rental Car Assigned", "Rental Vehicle", "Vehicle")
	require.True(t, ok)
	assert.Equal(t, "Camry SD", v)
}

func TestRecordGet_SkipsNil(t *testing.T) {
	rec := NewRecord(map[string]any{
		"License Plate": nil,
		"Plate":         "ABC123",
	})

	v, ok := rec.Get("License Plate", "Plate")
	require.True(t, ok)
	assert.Equal(t, "ABC123", v)

	_, ok = rec.Get("License Plate")
	assert.False(t, ok)

	_, ok = rec.Get("No Such Column")
	assert.False(t, ok)
}

func TestRecordGetString(t *testing.T) {
	rec := NewRecord(map[string]any{
		"Rental Rate": 50.0,
		"Vehicle":     "Camry",
	})

	s, ok := rec.GetString("Vehicle")
	require.True(t, ok)
	assert.Equal(t, "Camry", s)

	// Non-string values are skipped.
	_, ok = rec.GetString("Rental Rate")
	assert.False(t, ok)
}

func TestRecordClone_Independent(t *testing.T) {
	src := NewRecord(map[string]any{"Vehicle": "Camry SD (white)"})
	cp := src.Clone()
	cp.Set("Vehicle", "Camry SD")

	v, _ := src.GetString("Vehicle")
	assert.Equal(t, "Camry SD (white)", v, "source record must never be mutated")

	v, _ = cp.GetString("Vehicle")
	assert.Equal(t, "Camry SD", v)
}

func TestRecordSet_NewKey(t *testing.T) {
	var rec Record
	rec.Set("Vehicle", "Camry")

	v, ok := rec.GetString("vehicle")
	require.True(t, ok)
	assert.Equal(t, "Camry", v)
	assert.Equal(t, 1, rec.Len())
}
