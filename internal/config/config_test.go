package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleetbill.yaml")

	cfg := Default("PDR Plus Rentals")
	cfg.RateOverrides = map[string]string{"Camry SD": "45.00"}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleetbill.yaml")
	content := `business:
  name: PDR Plus Rentals
  phone: 555-0100
invoice:
  terms_days: 15
rate_overrides:
  Camry SD: "45.00"
  F-150: "65"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "PDR Plus Rentals", cfg.Business.Name)
	assert.Equal(t, 15, cfg.Invoice.TermsDays)

	overrides, err := cfg.Overrides()
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	assert.True(t, overrides["Camry SD"].Equal(decimal.NewFromInt(45)))
	assert.True(t, overrides["F-150"].Equal(decimal.NewFromInt(65)))
}

func TestOverrides_BadRate(t *testing.T) {
	cfg := Default("x")
	cfg.RateOverrides = map[string]string{"Camry": "cheap"}
	_, err := cfg.Overrides()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Camry")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
