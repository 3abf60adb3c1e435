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

// Business metric names
const (
	MetricNameWeaponConfigsSaved       = "weapon_configs_saved_total"
	MetricNameWeaponConfigsDeleted     = "weapon_configs_deleted_total"
	MetricNameWeaponValidationFailures = "weapon_validation_failures_total"
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

// Business metric help text
const (
	HelpTextWeaponConfigsSaved       = "Total number of weapon configurations saved"
	HelpTextWeaponConfigsDeleted     = "Total number of weapon configurations deleted"
	HelpTextWeaponValidationFailures = "Total number of weapon requests rejected by validation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelTeam      = "team"
	LabelOperation = "operation"
)

// Operation label values
const (
	OperationSave   = "save"
	OperationDelete = "delete"
	OperationList   = "list"
)

// unmatchedRoute labels requests that no route matched
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
