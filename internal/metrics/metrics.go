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

// Business Metrics
var (
	SpinsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsRecorded,
			Help: HelpTextSpinsRecorded,
		},
		[]string{LabelKind},
	)

	SpinsDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsDenied,
			Help: HelpTextSpinsDenied,
		},
		[]string{LabelKind},
	)

	AwardsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAwardsGranted,
			Help: HelpTextAwardsGranted,
		},
	)

	ParticipantsUpserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameParticipantsUpserted,
			Help: HelpTextParticipantsUpserted,
		},
		[]string{LabelOutcome},
	)

	SpinCounter = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameSpinCounter,
			Help: HelpTextSpinCounter,
		},
		[]string{LabelRoulette},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelResult},
	)
)
