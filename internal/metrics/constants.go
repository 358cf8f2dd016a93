package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameSpinsTotal         = "spins_total"
	MetricNameSpinRejections     = "spin_rejections_total"
	MetricNameSpinStakeTotal     = "spin_stake_total"
	MetricNameSpinPayoutTotal    = "spin_payout_total"
	MetricNameLevelUpsTotal      = "level_ups_total"
	MetricNameAutoSpinStopsTotal = "auto_spin_stops_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextSpinsTotal         = "Total number of settled spins by win tier"
	HelpTextSpinRejections     = "Total number of rejected spin requests by reason"
	HelpTextSpinStakeTotal     = "Total currency staked across settled spins"
	HelpTextSpinPayoutTotal    = "Total currency paid out across settled spins"
	HelpTextLevelUpsTotal      = "Total number of level ups"
	HelpTextAutoSpinStopsTotal = "Total number of auto spin terminations by reason"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTier   = "tier"
	LabelReason = "reason"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request
// duration in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
