// Package metrics exposes prometheus collectors for the HTTP surface
// and the spin economy, fed by middleware and the event bus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelTier},
	)

	SpinRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinRejections,
			Help: HelpTextSpinRejections,
		},
		[]string{LabelReason},
	)

	SpinStakeTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinStakeTotal,
			Help: HelpTextSpinStakeTotal,
		},
	)

	SpinPayoutTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinPayoutTotal,
			Help: HelpTextSpinPayoutTotal,
		},
	)

	LevelUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUpsTotal,
			Help: HelpTextLevelUpsTotal,
		},
	)

	AutoSpinStopsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutoSpinStopsTotal,
			Help: HelpTextAutoSpinStopsTotal,
		},
		[]string{LabelReason},
	)
)
