package ctr

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	exposureEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ctr_exposure_events_total",
			Help: "Count of impressions and clicks recorded into the CTR ledger.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(exposureEventsTotal)
}
