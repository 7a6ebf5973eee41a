package app

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the Prometheus instruments served at /metrics. Every App
// carries its own registry so parallel instances never collide on
// registration.
type metrics struct {
	registry        *prometheus.Registry
	exportsCompiled prometheus.Counter
	jobsSubmitted   prometheus.Counter
	jobsRejected    prometheus.Counter
	statusEvents    *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		exportsCompiled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "embergrid_exports_compiled_total",
			Help: "Export descriptors compiled into assembled jobs.",
		}),
		jobsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "embergrid_jobs_submitted_total",
			Help: "Jobs accepted by the engine.",
		}),
		jobsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "embergrid_jobs_rejected_total",
			Help: "Jobs the engine refused during validation.",
		}),
		statusEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "embergrid_status_events_total",
			Help: "Status events received from the broker, partitioned by status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(m.exportsCompiled, m.jobsSubmitted, m.jobsRejected, m.statusEvents)
	return m
}
