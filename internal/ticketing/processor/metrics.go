package processor

import "github.com/prometheus/client_golang/prometheus"

var tokenRefreshCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ambassador_ticketing_token_refreshes_total",
		Help: "Counter for ticketing access token refresh attempts by result.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(tokenRefreshCounter)
}
