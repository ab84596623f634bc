package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the decision run HTTP handler
	DecisionRunLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "offer_decision_run_latency_seconds",
		Help:    "Latency of the offer decision run handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of decision runs served
	DecisionRunRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_decision_run_requests_total",
		Help: "Total number of offer decision run requests",
	})

	// Decision runs rejected before reaching the engine
	DecisionRunValidationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_decision_run_validation_failures_total",
		Help: "Total number of decision run requests rejected by validation",
	})

	// Engine calls that came back non-2xx
	DecisionEngineErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_decision_engine_errors_total",
		Help: "Total number of failed offer engine calls",
	})
)

func Init() {
	prometheus.MustRegister(
		DecisionRunLatency,
		DecisionRunRequests,
		DecisionRunValidationFailures,
		DecisionEngineErrors,
	)
}
