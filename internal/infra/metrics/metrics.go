package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PoleAttemptsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pole_attempts_total",
		Help: "Pole insert attempts that passed the dedup gate",
	})
	PolesClaimedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "poles_claimed_total",
		Help: "Poles that resulted in a new record",
	})
	RankingRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ranking_requests_total",
		Help: "Leaderboard commands handled",
	})
	BotSendErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bot_send_errors_total",
		Help: "Failed message sends to Telegram",
	})

	NetworkRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "network_request_duration_seconds",
		Help:    "Duration of outbound network requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"component", "operation", "status"})

	NetworkRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "network_request_total",
		Help: "Count of outbound network requests",
	}, []string{"component", "operation", "status"})
)

// MustRegister registers all bot metrics.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		PoleAttemptsTotal,
		PolesClaimedTotal,
		RankingRequestsTotal,
		BotSendErrors,
		NetworkRequestDuration,
		NetworkRequestTotal,
	)
}

// ObserveNetworkRequest records the duration and status of an outbound request.
func ObserveNetworkRequest(component, operation string, start time.Time, err error) {
	if component == "" {
		component = "unknown"
	}
	if operation == "" {
		operation = "unknown"
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	duration := time.Since(start).Seconds()
	NetworkRequestDuration.WithLabelValues(component, operation, status).Observe(duration)
	NetworkRequestTotal.WithLabelValues(component, operation, status).Inc()
}

// IncPoleAttempt counts a pole attempt that reached the store.
func IncPoleAttempt() {
	PoleAttemptsTotal.Inc()
}

// IncPoleClaimed counts a freshly inserted pole record.
func IncPoleClaimed() {
	PolesClaimedTotal.Inc()
}

// IncRankingRequest counts a leaderboard command.
func IncRankingRequest() {
	RankingRequestsTotal.Inc()
}

// IncBotSendError counts a failed Telegram send.
func IncBotSendError() {
	BotSendErrors.Inc()
}
