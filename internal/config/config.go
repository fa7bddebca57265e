package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level fleetbill.yaml configuration.
type Config struct {
	Business      BusinessConfig    `yaml:"business"`
	Invoice       InvoiceConfig     `yaml:"invoice"`
	RateOverrides map[string]string `yaml:"rate_overrides,omitempty"` // vehicle name -> daily rate
}

// BusinessConfig identifies the business entity that issues invoices.
type BusinessConfig struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone,omitempty"`
	Email   string `yaml:"email,omitempty"`
	Address string `yaml:"address,omitempty"`
}

// InvoiceConfig controls invoice numbering and terms.
type InvoiceConfig struct {
	TermsDays int    `yaml:"terms_days"`
	Notes     string `yaml:"notes,omitempty"`
}

// Load reads a fleetbill.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Invoice: InvoiceConfig{
			TermsDays: 30,
		},
	}
}

// Overrides converts the rate_overrides map to decimals. Unparseable rates
// are reported, not skipped silently.
func (c *Config) Overrides() (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(c.RateOverrides))
	for name, raw := range c.RateOverrides {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("rate override for %q: parsing %q: %w", name, raw, err)
		}
		out[name] = d
	}
	return out, nil
}
