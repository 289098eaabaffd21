package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reading kinds.
const (
	KindMatrix        = "matrix"
	KindForecast      = "forecast"
	KindCompatibility = "compatibility"
)

// Metrics provides observability for the matrix module.
type Metrics struct {
	Readings               *prometheus.CounterVec
	ComputeDuration        *prometheus.HistogramVec
	MissingInterpretations prometheus.Counter
	ProfilesSaved          prometheus.Counter
}

// New creates the matrix metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Readings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mysticbot_readings_total",
			Help: "Readings computed by kind",
		}, []string{"kind"}),
		ComputeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mysticbot_reading_duration_seconds",
			Help:    "Duration of reading computations including profile lookups",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		}, []string{"kind"}),
		MissingInterpretations: f.NewCounter(prometheus.CounterOpts{
			Name: "mysticbot_missing_interpretations_total",
			Help: "Digit keys with no entry in the interpretation table",
		}),
		ProfilesSaved: f.NewCounter(prometheus.CounterOpts{
			Name: "mysticbot_profiles_saved_total",
			Help: "Profiles created or updated",
		}),
	}
}

// ObserveReading counts one reading of kind and its duration since start.
func (m *Metrics) ObserveReading(kind string, start time.Time) {
	if m == nil {
		return
	}
	m.Readings.WithLabelValues(kind).Inc()
	m.ComputeDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddMissingInterpretations(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.MissingInterpretations.Add(float64(n))
}

func (m *Metrics) IncrementProfilesSaved() {
	if m == nil {
		return
	}
	m.ProfilesSaved.Inc()
}
