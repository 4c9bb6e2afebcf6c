package processor

import "github.com/prometheus/client_golang/prometheus"

var campaignDispatchCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ambassador_campaigns_dispatched_total",
		Help: "Counter for claimed campaign notification dispatches by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(campaignDispatchCounter)
}
