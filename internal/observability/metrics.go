// Package observability exposes the process metrics over a Prometheus
// registry. All instruments are created against an injected registerer so
// tests can use an isolated registry.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every instrument the monitor records.
type Metrics struct {
	TicksTotal        *prometheus.CounterVec
	TickFailures      *prometheus.CounterVec
	EventsClassified  *prometheus.CounterVec
	EventsSkipped     *prometheus.CounterVec
	DonationsRecorded prometheus.Counter
	BalanceEvents     *prometheus.CounterVec
	NotifyFailures    prometheus.Counter
	StoreErrors       *prometheus.CounterVec
	UpstreamLatency   *prometheus.HistogramVec
}

// New registers the monitor's instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TicksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lnsentinel",
			Name:      "ticks_total",
			Help:      "Completed polling ticks per wallet.",
		}, []string{"wallet"}),
		TickFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lnsentinel",
			Name:      "tick_failures_total",
			Help:      "Polling ticks aborted by an upstream or store failure.",
		}, []string{"wallet"}),
		EventsClassified: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lnsentinel",
			Name:      "events_classified_total",
			Help:      "Committed payment events classified, by direction.",
		}, []string{"wallet", "direction"}),
		EventsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lnsentinel",
			Name:      "events_skipped_total",
			Help:      "Payment records dropped before classification, by reason.",
		}, []string{"wallet", "reason"}),
		DonationsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lnsentinel",
			Name:      "donations_recorded_total",
			Help:      "Donations appended to the donation ledger.",
		}),
		BalanceEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lnsentinel",
			Name:      "balance_events_total",
			Help:      "Balance updates that produced a notification, by kind.",
		}, []string{"wallet", "kind"}),
		NotifyFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lnsentinel",
			Name:      "notify_failures_total",
			Help:      "Outbound notifications that failed to send.",
		}),
		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lnsentinel",
			Name:      "store_errors_total",
			Help:      "Persistence failures, by store.",
		}, []string{"store"}),
		UpstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lnsentinel",
			Name:      "upstream_request_seconds",
			Help:      "Upstream wallet API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
