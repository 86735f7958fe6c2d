// Package quote prices a single catalog service for an urgency tier.
package quote

import (
	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/money"

	"github.com/shopspring/decimal"
)

type Fallback string

const (
	FallbackUnknownService Fallback = "unknown_service"
	FallbackUnknownTier    Fallback = "unknown_tier"
)

const (
	BadgeRecommended = "Recommended"
	BadgePopular     = "Popular"
)

type Recommendation struct {
	ServiceID string      `json:"service_id"`
	Name      string      `json:"name"`
	Reason    string      `json:"reason"`
	Badge     string      `json:"badge"`
	BasePrice money.Money `json:"base_price"`
}

// Estimate is the priced result. Fallbacks is empty for a clean catalog hit.
type Estimate struct {
	ServiceID        string              `json:"service_id"`
	ServiceName      string              `json:"service_name"`
	Tier             catalog.UrgencyTier `json:"urgency"`
	BasePrice        money.Money         `json:"base_price"`
	Multiplier       decimal.Decimal     `json:"multiplier"`
	FlatRate         bool                `json:"flat_rate"`
	Price            money.Money         `json:"price"`
	CompletionWindow string              `json:"completion_window"`
	Recommendations  []Recommendation    `json:"recommendations"`
	Fallbacks        []Fallback          `json:"fallbacks,omitempty"`
}

func (e Estimate) CatalogHit() bool {
	for _, f := range e.Fallbacks {
		if f == FallbackUnknownService {
			return false
		}
	}
	return true
}

func (e Estimate) HasFallback() bool { return len(e.Fallbacks) > 0 }

type Calculator struct {
	catalog *catalog.Catalog
}

func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// Estimate never fails. An unknown service is priced from the fallback base price and
// an unknown tier is priced at multiplier 1; both are recorded in Fallbacks.
func (c *Calculator) Estimate(serviceID string, tier catalog.UrgencyTier) Estimate {
	est := Estimate{ServiceID: serviceID, Tier: tier, Recommendations: []Recommendation{}}

	entry, ok := c.catalog.Lookup(serviceID)
	if !ok {
		est.Fallbacks = append(est.Fallbacks, FallbackUnknownService)
		est.BasePrice = c.catalog.FallbackBasePrice()
		est.ServiceName = serviceID
		mult, known := c.tierMultiplierWithoutService(tier)
		if !known {
			est.Fallbacks = append(est.Fallbacks, FallbackUnknownTier)
		}
		est.Multiplier = mult
		est.Price = money.Round(money.Multiply(est.BasePrice, mult))
		return est
	}

	est.ServiceName = entry.Name
	est.BasePrice = entry.BasePrice
	est.FlatRate = entry.FlatRate
	est.CompletionWindow = entry.CompletionWindows[tier]

	mult, known := entry.Multipliers[tier]
	switch {
	case entry.FlatRate:
		mult = decimal.NewFromInt(1)
	case !known:
		est.Fallbacks = append(est.Fallbacks, FallbackUnknownTier)
		mult = decimal.NewFromInt(1)
	}
	est.Multiplier = mult
	est.Price = money.Round(money.Multiply(entry.BasePrice, mult))

	for i, r := range entry.Recommendations {
		rec := Recommendation{ServiceID: r.ServiceID, Reason: r.Reason, Badge: BadgePopular}
		if i == 0 {
			rec.Badge = BadgeRecommended
		}
		if target, ok := c.catalog.Lookup(r.ServiceID); ok {
			rec.Name = target.Name
			rec.BasePrice = target.BasePrice
		}
		est.Recommendations = append(est.Recommendations, rec)
	}
	return est
}

// With no entry to read from, a tier is priced by what the rest of the catalog uses
// for it, so same-day on an unknown service still reflects the same-day surcharge.
func (c *Calculator) tierMultiplierWithoutService(tier catalog.UrgencyTier) (decimal.Decimal, bool) {
	for _, e := range c.catalog.Services() {
		if e.FlatRate {
			continue
		}
		if m, ok := e.Multipliers[tier]; ok {
			return m, true
		}
	}
	return decimal.NewFromInt(1), false
}
