// Package metrics registers the service's Prometheus collectors on the default registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "techflow"

var (
	QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_total",
		Help:      "Quotes computed, by urgency tier and whether the catalog resolved the service.",
	}, []string{"urgency", "outcome"})

	QuoteFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_fallbacks_total",
		Help:      "Quote computations that degraded to a default, by reason.",
	}, []string{"reason"})

	InvoicesFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_finalized_total",
		Help:      "Invoices that were numbered and archived.",
	})

	InvoiceValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoice_validation_failures_total",
		Help:      "Invoice previews or finalizations refused because of validation errors.",
	}, []string{"operation"})

	StorageWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_warnings_total",
		Help:      "Persistence failures reported to the caller as non-blocking warnings.",
	}, []string{"store"})

	BookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Booking flow step changes.",
	}, []string{"from", "to"})

	BookingsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_submitted_total",
		Help:      "Booking submissions by delivery outcome.",
	}, []string{"outcome"})

	BookingSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "booking_sessions",
		Help:      "Booking flows currently held in memory.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
