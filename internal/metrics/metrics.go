package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
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

// Business Metrics
var (
	WeaponConfigsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeaponConfigsSaved,
			Help: HelpTextWeaponConfigsSaved,
		},
		[]string{LabelTeam},
	)

	WeaponConfigsDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeaponConfigsDeleted,
			Help: HelpTextWeaponConfigsDeleted,
		},
		[]string{LabelTeam},
	)

	WeaponValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeaponValidationFailures,
			Help: HelpTextWeaponValidationFailures,
		},
		[]string{LabelOperation},
	)
)

// RecordSaved counts a stored configuration for team
func RecordSaved(team int) {
	WeaponConfigsSaved.WithLabelValues(domain.TeamName(team)).Inc()
}

// RecordDeleted counts a removed configuration for team
func RecordDeleted(team int) {
	WeaponConfigsDeleted.WithLabelValues(domain.TeamName(team)).Inc()
}

// RecordValidationFailure counts a request rejected before reaching storage
func RecordValidationFailure(operation string) {
	WeaponValidationFailures.WithLabelValues(operation).Inc()
}
