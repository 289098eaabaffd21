package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds process-wide store metrics shared by every backend.
type Metrics struct {
	StoreOps     *prometheus.CounterVec
	StoreLatency *prometheus.HistogramVec
}

// New creates and registers the metrics with the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers on reg, so tests can use a private registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StoreOps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mysticbot_profile_store_operations_total",
			Help: "Profile store operations by backend, operation and result",
		}, []string{"backend", "op", "result"}),

		StoreLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mysticbot_profile_store_duration_seconds",
			Help:    "Latency of profile store operations",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}, []string{"backend", "op"}),
	}
}

// ObserveStoreOp records one store call.
func (m *Metrics) ObserveStoreOp(backend, op string, err error, d time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreOps.WithLabelValues(backend, op, result).Inc()
	m.StoreLatency.WithLabelValues(backend, op).Observe(d.Seconds())
}
