package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/quote"
	"techflow_billing/internal/infrastructure/metrics"
)

var ErrServiceRequired = errors.New("service_id is required")

// IQuoteUseCase prices services for the quote widget and exposes the catalog.
type IQuoteUseCase interface {
	Estimate(ctx context.Context, serviceID string, urgency string) (quote.Estimate, error)
	Services(ctx context.Context) []catalog.Entry
	HourlyRates(ctx context.Context) ([]catalog.HourlyRate, []catalog.Suggestion)
}

type QuoteUseCase struct {
	catalog *catalog.Catalog
	calc    *quote.Calculator
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(c *catalog.Catalog) *QuoteUseCase {
	return &QuoteUseCase{catalog: c, calc: quote.NewCalculator(c)}
}

// Estimate always yields a price once a service is named; unknown services and
// tiers are priced with defaults and flagged in Fallbacks.
func (u *QuoteUseCase) Estimate(_ context.Context, serviceID string, urgency string) (quote.Estimate, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return quote.Estimate{}, ErrServiceRequired
	}
	tier := catalog.ParseTier(urgency)
	est := u.calc.Estimate(serviceID, tier)

	outcome := "catalog"
	if est.HasFallback() {
		outcome = "fallback"
		for _, f := range est.Fallbacks {
			metrics.QuoteFallbacks.WithLabelValues(string(f)).Inc()
		}
		log.Printf("[quote][usecase] fallback pricing service_id=%s urgency=%s fallbacks=%v price=%s", serviceID, tier, est.Fallbacks, est.Price)
	}
	metrics.QuotesTotal.WithLabelValues(string(tier), outcome).Inc()
	return est, nil
}

func (u *QuoteUseCase) Services(_ context.Context) []catalog.Entry {
	return u.catalog.Services()
}

func (u *QuoteUseCase) HourlyRates(_ context.Context) ([]catalog.HourlyRate, []catalog.Suggestion) {
	return u.catalog.HourlyRates(), u.catalog.Suggestions()
}
