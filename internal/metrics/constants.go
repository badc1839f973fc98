package metrics

// ============================================================================
// Metric Names
// ============================================================================

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

// Business metric names
const (
	MetricNameSpinsRecorded        = "roulette_spins_total"
	MetricNameSpinsDenied          = "roulette_spins_denied_total"
	MetricNameAwardsGranted        = "roulette_awards_granted_total"
	MetricNameParticipantsUpserted = "roulette_participants_upserted_total"
	MetricNameSpinCounter          = "roulette_spin_counter"
	MetricNameNotificationsSent    = "roulette_notifications_sent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

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

// Business metric help text
const (
	HelpTextSpinsRecorded        = "Total number of recorded spins by kind"
	HelpTextSpinsDenied          = "Total number of spins rejected by the rate limiter by kind"
	HelpTextAwardsGranted        = "Total number of awards granted"
	HelpTextParticipantsUpserted = "Total number of participant upserts by outcome"
	HelpTextSpinCounter          = "Spin counter of each roulette after its latest spin"
	HelpTextNotificationsSent    = "Total number of award notifications by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelKind     = "kind"
	LabelOutcome  = "outcome"
	LabelRoulette = "roulette_id"
	LabelResult   = "result"
)

// Notification result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultDropped = "dropped"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
