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
	MetricNameSpinsTotal          = "spins_total"
	MetricNameSpinWins            = "spin_wins_total"
	MetricNameBonusesTriggered    = "bonuses_triggered_total"
	MetricNameJackpotsWon         = "jackpots_won_total"
	MetricNameAmountWagered       = "amount_wagered_total"
	MetricNameAmountPaidOut       = "amount_paid_out_total"
	MetricNameLedgerTransactions  = "ledger_transactions_total"
	MetricNameInsufficientBalance = "insufficient_balance_rejections_total"
	MetricNameAuditReplays        = "audit_replays_total"
	MetricNameAuditMismatches     = "audit_mismatches_total"
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
	HelpTextSpinsTotal          = "Total number of spins executed"
	HelpTextSpinWins            = "Total number of spins with a nonzero win"
	HelpTextBonusesTriggered    = "Total number of scatter bonuses triggered"
	HelpTextJackpotsWon         = "Total number of jackpots won"
	HelpTextAmountWagered       = "Total amount wagered, in minor currency units"
	HelpTextAmountPaidOut       = "Total amount paid out, in minor currency units"
	HelpTextLedgerTransactions  = "Total number of ledger transactions recorded"
	HelpTextInsufficientBalance = "Total number of spins rejected for insufficient balance"
	HelpTextAuditReplays        = "Total number of audit replays performed"
	HelpTextAuditMismatches     = "Total number of audit replays that did not match the stored outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTheme  = "theme"
	LabelKind   = "kind"
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
	LogMsgEventPayloadUnknown = "Event payload has unexpected type"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
