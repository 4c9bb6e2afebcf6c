package processor

import "github.com/prometheus/client_golang/prometheus"

var (
	trackerCreationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ambassador_tracker_creations_total",
			Help: "Counter for tracker creation attempts by outcome.",
		},
		[]string{"outcome"},
	)
	statsSyncCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ambassador_tracker_stats_syncs_total",
			Help: "Counter for per-organization tracker statistics syncs by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(trackerCreationCounter, statsSyncCounter)
}
