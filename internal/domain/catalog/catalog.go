// Package catalog holds the immutable service price tables used by the quote
// calculator, the booking flow and the invoice hourly rates.
package catalog

import (
	"errors"
	"sort"
	"strings"

	"techflow_billing/internal/domain/money"

	"github.com/shopspring/decimal"
)

type UrgencyTier string

const (
	TierStandard UrgencyTier = "standard"
	TierSameDay  UrgencyTier = "same-day"
)

var ErrUnknownService = errors.New("unknown service")

// Label is the customer-facing name of a tier.
func (t UrgencyTier) Label() string {
	switch t {
	case TierStandard:
		return "Standard"
	case TierSameDay:
		return "Same Day"
	}
	return string(t)
}

func ParseTier(s string) UrgencyTier {
	t := UrgencyTier(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return TierStandard
	}
	return t
}

type Recommendation struct {
	ServiceID string `json:"service_id" yaml:"service_id"`
	Reason    string `json:"reason" yaml:"reason"`
}

// Entry is one bookable service.
type Entry struct {
	ServiceID         string
	Name              string
	BasePrice         money.Money
	FlatRate          bool
	Multipliers       map[UrgencyTier]decimal.Decimal
	CompletionWindows map[UrgencyTier]string
	Recommendations   []Recommendation
}

// HourlyRate is a labour rate the invoice calculator bills hours against.
type HourlyRate struct {
	ServiceTypeID string
	Label         string
	Rate          money.Money
}

// Suggestion is a common invoice description with its usual duration.
type Suggestion struct {
	Description  string
	DefaultHours decimal.Decimal
}

// Catalog is read-only after construction; callers get copies of its slices and maps.
type Catalog struct {
	entries      map[string]Entry
	order        []string
	hourlyRates  map[string]HourlyRate
	rateOrder    []string
	suggestions  []Suggestion
	fallbackBase money.Money
}

// New builds a catalog. Service and rate order is preserved for listings.
func New(entries []Entry, rates []HourlyRate, suggestions []Suggestion, fallbackBase money.Money) (*Catalog, error) {
	c := &Catalog{
		entries:      make(map[string]Entry, len(entries)),
		hourlyRates:  make(map[string]HourlyRate, len(rates)),
		fallbackBase: fallbackBase,
	}
	for _, e := range entries {
		id := strings.TrimSpace(e.ServiceID)
		if id == "" {
			return nil, errors.New("catalog entry without service id")
		}
		if _, dup := c.entries[id]; dup {
			return nil, errors.New("duplicate catalog entry: " + id)
		}
		if e.BasePrice.IsNegative() {
			return nil, errors.New("negative base price: " + id)
		}
		e.ServiceID = id
		c.entries[id] = cloneEntry(e)
		c.order = append(c.order, id)
	}
	for _, e := range c.entries {
		for _, r := range e.Recommendations {
			if _, ok := c.entries[r.ServiceID]; !ok {
				return nil, errors.New("recommendation references unknown service: " + r.ServiceID)
			}
		}
	}
	for _, r := range rates {
		c.hourlyRates[r.ServiceTypeID] = r
		c.rateOrder = append(c.rateOrder, r.ServiceTypeID)
	}
	c.suggestions = append([]Suggestion(nil), suggestions...)
	return c, nil
}

func (c *Catalog) Lookup(serviceID string) (Entry, bool) {
	e, ok := c.entries[strings.TrimSpace(serviceID)]
	if !ok {
		return Entry{}, false
	}
	return cloneEntry(e), true
}

// Multiplier returns the tier multiplier for a service. ok is false for an unknown
// service or a tier the service has no multiplier for.
func (c *Catalog) Multiplier(serviceID string, tier UrgencyTier) (decimal.Decimal, bool) {
	e, ok := c.entries[strings.TrimSpace(serviceID)]
	if !ok {
		return decimal.Zero, false
	}
	m, ok := e.Multipliers[tier]
	return m, ok
}

// KnownTier reports whether any catalog service prices the tier.
func (c *Catalog) KnownTier(tier UrgencyTier) bool {
	for _, e := range c.entries {
		if _, ok := e.Multipliers[tier]; ok {
			return true
		}
	}
	return false
}

func (c *Catalog) Services() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneEntry(c.entries[id]))
	}
	return out
}

func (c *Catalog) HourlyRate(serviceTypeID string) (HourlyRate, bool) {
	r, ok := c.hourlyRates[strings.TrimSpace(serviceTypeID)]
	return r, ok
}

func (c *Catalog) HourlyRates() []HourlyRate {
	out := make([]HourlyRate, 0, len(c.rateOrder))
	for _, id := range c.rateOrder {
		out = append(out, c.hourlyRates[id])
	}
	return out
}

func (c *Catalog) Suggestions() []Suggestion {
	return append([]Suggestion(nil), c.suggestions...)
}

// FallbackBasePrice is the display price used when a quote names no known service.
func (c *Catalog) FallbackBasePrice() money.Money {
	return c.fallbackBase
}

// Tiers lists every tier priced by at least one service, sorted.
func (c *Catalog) Tiers() []UrgencyTier {
	seen := map[UrgencyTier]struct{}{}
	for _, e := range c.entries {
		for t := range e.Multipliers {
			seen[t] = struct{}{}
		}
	}
	out := make([]UrgencyTier, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func cloneEntry(e Entry) Entry {
	cp := e
	cp.Multipliers = make(map[UrgencyTier]decimal.Decimal, len(e.Multipliers))
	for k, v := range e.Multipliers {
		cp.Multipliers[k] = v
	}
	cp.CompletionWindows = make(map[UrgencyTier]string, len(e.CompletionWindows))
	for k, v := range e.CompletionWindows {
		cp.CompletionWindows[k] = v
	}
	cp.Recommendations = append([]Recommendation(nil), e.Recommendations...)
	return cp
}
