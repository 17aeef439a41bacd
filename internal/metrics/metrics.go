// Package metrics provides Prometheus observability metrics for the
// outreach engine: campaign throughput, check-in outcomes, escalation
// levels and dispatch channel health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// CampaignsCreatedTotal counts campaigns accepted and activated.
var CampaignsCreatedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "outreach",
	Name:      "campaigns_created_total",
	Help:      "Total campaigns created and activated",
})

// CampaignsByOutcome counts campaigns reaching a terminal status.
var CampaignsByOutcome = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "outreach",
	Name:      "campaigns_finished_total",
	Help:      "Campaigns reaching a terminal status, by outcome",
}, []string{"outcome"})

// CheckInsEvaluatedTotal counts check-in evaluations by result.
var CheckInsEvaluatedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "outreach",
	Name:      "checkins_evaluated_total",
	Help:      "Check-in evaluations by result (on_track, escalated, skipped)",
}, []string{"result"})

// EscalationsTotal counts escalations by severity level.
var EscalationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "outreach",
	Name:      "escalations_total",
	Help:      "Escalations triggered, by severity level",
}, []string{"level"})

// DispatchAttemptsTotal counts contact attempts by channel and outcome.
var DispatchAttemptsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "outreach",
	Name:      "dispatch_attempts_total",
	Help:      "Contact attempts by channel and outcome",
}, []string{"channel", "outcome"})

// ProvidersAddedTotal counts providers added reactively by tier.
var ProvidersAddedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "outreach",
	Name:      "providers_added_total",
	Help:      "Providers added by escalation, by tier",
}, []string{"tier"})

// MonitorPassDurationSeconds tracks the duration of one polling pass.
var MonitorPassDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "outreach",
	Name:      "monitor_pass_duration_seconds",
	Help:      "Time taken by one monitor polling pass",
	Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
})

// MonitorErrorsTotal counts per-item and pass-level monitor failures.
var MonitorErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "outreach",
	Name:      "monitor_errors_total",
	Help:      "Monitor loop errors by scope (item, pass)",
}, []string{"scope"})
