package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the loader's Prometheus collectors.
type Metrics struct {
	SectionDuration *prometheus.HistogramVec
	SectionFailures *prometheus.CounterVec
	LoadsInFlight   prometheus.Gauge
}

// NewMetrics registers the loader metrics on reg. Pass
// prometheus.DefaultRegisterer in production; tests use their own registry to
// avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SectionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "terradart",
			Name:      "section_fetch_duration_seconds",
			Help:      "Latency of one city-detail section fetch.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"section", "outcome"}),
		SectionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "terradart",
			Name:      "section_fetch_failures_total",
			Help:      "City-detail section fetches that settled with an error.",
		}, []string{"section"}),
		LoadsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "terradart",
			Name:      "city_loads_in_flight",
			Help:      "Load cycles currently running.",
		}),
	}
}
