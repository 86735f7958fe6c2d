package catalog

import (
	"fmt"
	"io"
	"os"

	"techflow_billing/internal/domain/money"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	FallbackBasePrice string        `yaml:"fallback_base_price"`
	Services          []fileService `yaml:"services"`
	HourlyRates       []fileRate    `yaml:"hourly_rates"`
	Suggestions       []fileHint    `yaml:"suggestions"`
}

type fileService struct {
	ID                string            `yaml:"id"`
	Name              string            `yaml:"name"`
	BasePrice         string            `yaml:"base_price"`
	FlatRate          bool              `yaml:"flat_rate"`
	Multipliers       map[string]string `yaml:"multipliers"`
	CompletionWindows map[string]string `yaml:"completion_windows"`
	Recommendations   []Recommendation  `yaml:"recommendations"`
}

type fileRate struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Rate  string `yaml:"rate"`
}

type fileHint struct {
	Description  string `yaml:"description"`
	DefaultHours string `yaml:"default_hours"`
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML catalog. Amounts are decimal strings so no float parsing is involved.
func Decode(r io.Reader) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	fallback := money.FromInt(100)
	if fc.FallbackBasePrice != "" {
		m, err := money.FromString(fc.FallbackBasePrice)
		if err != nil {
			return nil, fmt.Errorf("fallback_base_price: %w", err)
		}
		fallback = m
	}

	entries := make([]Entry, 0, len(fc.Services))
	for _, s := range fc.Services {
		base, err := money.FromString(s.BasePrice)
		if err != nil {
			return nil, fmt.Errorf("service %s base_price: %w", s.ID, err)
		}
		e := Entry{
			ServiceID:         s.ID,
			Name:              s.Name,
			BasePrice:         base,
			FlatRate:          s.FlatRate,
			Multipliers:       map[UrgencyTier]decimal.Decimal{},
			CompletionWindows: map[UrgencyTier]string{},
			Recommendations:   s.Recommendations,
		}
		for tier, raw := range s.Multipliers {
			m, err := money.ParseDecimal(raw)
			if err != nil || m.IsNegative() {
				return nil, fmt.Errorf("service %s multiplier %s: invalid value %q", s.ID, tier, raw)
			}
			e.Multipliers[ParseTier(tier)] = m
		}
		for tier, window := range s.CompletionWindows {
			e.CompletionWindows[ParseTier(tier)] = window
		}
		entries = append(entries, e)
	}

	rates := make([]HourlyRate, 0, len(fc.HourlyRates))
	for _, r := range fc.HourlyRates {
		rate, err := money.FromString(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("hourly rate %s: %w", r.ID, err)
		}
		rates = append(rates, HourlyRate{ServiceTypeID: r.ID, Label: r.Label, Rate: rate})
	}

	hints := make([]Suggestion, 0, len(fc.Suggestions))
	for _, h := range fc.Suggestions {
		hours, err := money.ParseDecimal(h.DefaultHours)
		if err != nil {
			return nil, fmt.Errorf("suggestion %q default_hours: %w", h.Description, err)
		}
		hints = append(hints, Suggestion{Description: h.Description, DefaultHours: hours})
	}

	return New(entries, rates, hints, fallback)
}
