package apns

import "github.com/prometheus/client_golang/prometheus"

var pushDeliveriesCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ambassador_push_deliveries_total",
		Help: "Counter for push notification deliveries by outcome.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(pushDeliveriesCounter)
}
