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
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase},
	)

	UpgradesResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesResolved,
			Help: HelpTextUpgradesResolved,
		},
		[]string{LabelOutcome},
	)

	CraftsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCraftsCompleted,
			Help: HelpTextCraftsCompleted,
		},
	)

	MatchesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMatchesCompleted,
			Help: HelpTextMatchesCompleted,
		},
		[]string{LabelOutcome},
	)

	PromosRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePromosRedeemed,
			Help: HelpTextPromosRedeemed,
		},
	)

	WalletCredits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWalletCredits,
			Help: HelpTextWalletCredits,
		},
	)

	StarsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStarsEarned,
			Help: HelpTextStarsEarned,
		},
	)

	StarsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStarsSpent,
			Help: HelpTextStarsSpent,
		},
	)
)
