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
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelTheme},
	)

	SpinWins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinWins,
			Help: HelpTextSpinWins,
		},
		[]string{LabelTheme},
	)

	BonusesTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBonusesTriggered,
			Help: HelpTextBonusesTriggered,
		},
		[]string{LabelTheme},
	)

	JackpotsWon = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJackpotsWon,
			Help: HelpTextJackpotsWon,
		},
		[]string{LabelTheme},
	)

	AmountWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountWagered,
			Help: HelpTextAmountWagered,
		},
	)

	AmountPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaidOut,
			Help: HelpTextAmountPaidOut,
		},
	)

	LedgerTransactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerTransactions,
			Help: HelpTextLedgerTransactions,
		},
		[]string{LabelKind},
	)

	InsufficientBalanceRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInsufficientBalance,
			Help: HelpTextInsufficientBalance,
		},
	)

	AuditReplays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuditReplays,
			Help: HelpTextAuditReplays,
		},
	)

	AuditMismatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuditMismatches,
			Help: HelpTextAuditMismatches,
		},
	)
)
