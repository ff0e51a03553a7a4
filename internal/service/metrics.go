package service

import "github.com/prometheus/client_golang/prometheus"

var (
	scoringRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vital_quest",
		Subsystem: "scoring",
		Name:      "requests_total",
		Help:      "Number of scores computed on request, labeled by kind.",
	}, []string{"kind"})

	recoveryStatus = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vital_quest",
		Subsystem: "scoring",
		Name:      "recovery_status_total",
		Help:      "Recovery verdicts returned, labeled by training status.",
	}, []string{"status"})

	xpAwarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vital_quest",
		Subsystem: "progression",
		Name:      "xp_awarded_total",
		Help:      "Total XP applied to users.",
	})

	levelUps = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vital_quest",
		Subsystem: "progression",
		Name:      "level_ups_total",
		Help:      "Number of levels gained across all users.",
	})

	classAssignments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vital_quest",
		Subsystem: "progression",
		Name:      "class_assignments_total",
		Help:      "RPG classes assigned by the classifier, labeled by class.",
	}, []string{"class"})
)

func init() {
	prometheus.MustRegister(scoringRequests, recoveryStatus, xpAwarded, levelUps, classAssignments)
}
