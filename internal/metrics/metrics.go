// Package metrics exposes scorer counters and histograms to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aiscore/internal/aidetect"
)

// Collector owns a private registry so tests and multiple servers in one
// process do not collide on the global one.
type Collector struct {
	registry    *prometheus.Registry
	analyses    *prometheus.CounterVec
	duration    prometheus.Histogram
	probability prometheus.Histogram
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aiscore_analyses_total",
			Help: "Analyses completed, by verdict.",
		}, []string{"verdict"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "aiscore_analysis_duration_seconds",
			Help:    "Wall time of one analysis.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		probability: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "aiscore_ai_probability",
			Help:    "Distribution of aggregate AI probabilities.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
	}
	c.registry.MustRegister(
		c.analyses,
		c.duration,
		c.probability,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Observe records one finished analysis.
func (c *Collector) Observe(res aidetect.Result, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.analyses.WithLabelValues(string(res.Verdict)).Inc()
	c.duration.Observe(elapsed.Seconds())
	c.probability.Observe(float64(res.AIProbability))
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
