package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FeedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_feedback_events_total",
			Help: "Count of processed feedback events by event_type.",
		},
		[]string{"event_type"},
	)

	ColdStartServedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_cold_start_served_total",
			Help: "Recommendation requests answered by the cold-start ranker.",
		},
	)
)

func init() {
	prometheus.MustRegister(FeedbackEventsTotal, ColdStartServedTotal)
}
