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
	MetricNameItemsPurchased  = "items_purchased_total"
	MetricNameItemsEquipped   = "items_equipped_total"
	MetricNameActionsResolved = "care_actions_resolved_total"
	MetricNameMonstersCreated = "monsters_created_total"
	MetricNameLevelUps        = "monster_level_ups_total"
	MetricNameCoinsEarned     = "coins_earned_total"
	MetricNameCoinsSpent      = "coins_spent_total"
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
	HelpTextItemsPurchased  = "Total number of shop items purchased"
	HelpTextItemsEquipped   = "Total number of equip operations committed"
	HelpTextActionsResolved = "Total number of care actions resolved"
	HelpTextMonstersCreated = "Total number of monsters created"
	HelpTextLevelUps        = "Total number of monster level ups"
	HelpTextCoinsEarned     = "Total coins credited to wallets"
	HelpTextCoinsSpent      = "Total coins debited from wallets"
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
	LabelCategory = "category"
	LabelAction   = "action"
	LabelOutcome  = "outcome"
)

// Outcome label values for care action resolutions
const (
	OutcomeRewarded = "rewarded"
	OutcomeMismatch = "mismatch"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnknownPayloadShape = "Event payload has an unexpected shape"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
