package middleware

import "github.com/prometheus/client_golang/prometheus"

var requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "vital_quest",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method, route pattern and status code.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

func init() {
	prometheus.MustRegister(requestDuration)
}
