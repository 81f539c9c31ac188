package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ProfilesIngested counts stored ABI profiles by ingest source
	ProfilesIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clonelens_profiles_ingested_total",
			Help: "Total number of ABI profiles ingested",
		},
		[]string{"source"},
	)

	// MatchRuns counts match runs by final status
	MatchRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clonelens_match_runs_total",
			Help: "Total number of match runs",
		},
		[]string{"status"},
	)

	// PairsCompared counts scored profile pairs
	PairsCompared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clonelens_pairs_compared_total",
			Help: "Total number of profile pairs compared",
		},
	)

	// MatchDuration measures match run duration
	MatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "clonelens_match_duration_seconds",
			Help: "Match run duration in seconds",
		},
	)
)

// InitPrometheus registers all application metrics
func InitPrometheus() {
	prometheus.MustRegister(ProfilesIngested)
	prometheus.MustRegister(MatchRuns)
	prometheus.MustRegister(PairsCompared)
	prometheus.MustRegister(MatchDuration)
}
