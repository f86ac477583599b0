package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"status"}, // success|failed
	)

	ChallengesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "challenges_created_total",
			Help: "Total challenges created",
		},
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(ChallengesCreated)
	prometheus.MustRegister(WorkerQueueDepth)
}
