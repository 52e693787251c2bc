package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the service-level counters exposed on /metrics.
type Metrics struct {
	ProjectsSubmitted prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	DonationsApplied  prometheus.Counter
	DonationIntents   prometheus.Counter
}

// New registers the counters on the given registry. Pass a fresh
// prometheus.NewRegistry in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ProjectsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "fundlift_projects_submitted_total",
			Help: "Projects submitted to the catalog.",
		}),
		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fundlift_status_transitions_total",
			Help: "Moderation status changes, labeled by resulting status.",
		}, []string{"status"}),
		DonationsApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "fundlift_donations_applied_total",
			Help: "Confirmed donations applied to project counters.",
		}),
		DonationIntents: factory.NewCounter(prometheus.CounterOpts{
			Name: "fundlift_donation_intents_total",
			Help: "Ephemeral donation intents recorded.",
		}),
	}
}
