package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls counts tool invocations by outcome
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Total number of tool calls",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors counts failed tool calls by cause
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Number of failed calculations and validations",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls counts calls per transport and endpoint
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "API calls by service, endpoint and status",
		},
		[]string{"service", "endpoint", "status"},
	)

	// Submissions counts application submissions by result:
	// submitted, invalid, rejected, redirected or failed
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_submissions_total",
			Help: "Loan application submissions by result",
		},
		[]string{"result"},
	)

	// SubmissionDuration observes how long the submission backend takes
	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loan_submission_duration_seconds",
			Help:    "Time spent in the submission backend",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Decisions counts status changes of applications
	Decisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_decisions_total",
			Help: "Application decisions by resulting status",
		},
		[]string{"status"},
	)

	// HTTPRequestDuration observes HTTP latency per route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)
)
