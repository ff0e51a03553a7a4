package aggregator

import "github.com/prometheus/client_golang/prometheus"

var (
	aggregatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vital_quest",
		Subsystem: "aggregator",
		Name:      "contests_aggregated_total",
		Help:      "Number of battle recomputations written back to the store.",
	})

	failedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vital_quest",
		Subsystem: "aggregator",
		Name:      "contests_failed_total",
		Help:      "Number of battle recomputations that failed and were skipped.",
	})

	passDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "vital_quest",
		Subsystem: "aggregator",
		Name:      "pass_duration_seconds",
		Help:      "Time spent on one aggregation pass over all active battles.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
	})

	lastAggregation = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vital_quest",
		Subsystem: "aggregator",
		Name:      "last_aggregation_timestamp_seconds",
		Help:      "Unix time at which the last aggregation pass finished.",
	})
)

func init() {
	prometheus.MustRegister(aggregatedCounter, failedCounter, passDuration, lastAggregation)
}
