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
	MetricNameCasesOpened      = "cases_opened_total"
	MetricNameUpgradesResolved = "upgrades_resolved_total"
	MetricNameCraftsCompleted  = "crafts_completed_total"
	MetricNameMatchesCompleted = "matches_completed_total"
	MetricNamePromosRedeemed   = "promos_redeemed_total"
	MetricNameWalletCredits    = "wallet_credits_total"
	MetricNameStarsEarned      = "stars_earned_total"
	MetricNameStarsSpent       = "stars_spent_total"
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
	HelpTextCasesOpened      = "Total number of cases opened"
	HelpTextUpgradesResolved = "Total number of upgrade wheels resolved"
	HelpTextCraftsCompleted  = "Total number of crafts completed"
	HelpTextMatchesCompleted = "Total number of duel matches completed"
	HelpTextPromosRedeemed   = "Total number of promo codes redeemed"
	HelpTextWalletCredits    = "Total number of wallet credits"
	HelpTextStarsEarned      = "Total STARS credited to players"
	HelpTextStarsSpent       = "Total STARS debited from players"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCase    = "case_id"
	LabelOutcome = "outcome"
)

// Outcome label values
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// Log message constants
const (
	LogMsgMetricsRecorded      = "metrics recorded for event"
	LogMsgEventPayloadMismatch = "event payload did not decode, skipping business metrics"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
