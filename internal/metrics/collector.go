// Package metrics provides Prometheus metrics for go-respawn.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CollectorConfig holds configuration for creating a Collector.
type CollectorConfig struct {
	Version string
}

// Collector owns the launch metrics. All methods are safe for
// concurrent use (the underlying prometheus types are).
//
// There is deliberately no "last spawned PID" gauge: the launcher keeps
// no state between calls and the metrics follow suit.
type Collector struct {
	info      *prometheus.GaugeVec
	attempts  prometheus.Counter
	successes prometheus.Counter
	failures  *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewCollector creates a collector registered on the default registry.
func NewCollector(cfg CollectorConfig) *Collector {
	return NewCollectorWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewCollectorWithRegistry creates a collector registered on reg.
// Tests pass an isolated registry.
func NewCollectorWithRegistry(cfg CollectorConfig, reg prometheus.Registerer) *Collector {
	c := &Collector{
		info: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "respawn_info",
				Help: "Information about the running binary (value always 1)",
			},
			[]string{"version"},
		),
		attempts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "respawn_launch_attempts_total",
				Help: "Total launch attempts",
			},
		),
		successes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "respawn_launches_total",
				Help: "Total successful launches",
			},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "respawn_launch_failures_total",
				Help: "Total failed launches by error kind",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "respawn_launch_duration_seconds",
				Help:    "Time from launch request to OS accept/reject",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
	}

	reg.MustRegister(c.info, c.attempts, c.successes, c.failures, c.duration)
	c.info.WithLabelValues(cfg.Version).Set(1)

	return c
}

// RecordAttempt counts a launch attempt.
func (c *Collector) RecordAttempt() {
	c.attempts.Inc()
}

// RecordSuccess counts a successful launch and its duration.
func (c *Collector) RecordSuccess(d time.Duration) {
	c.successes.Inc()
	c.duration.Observe(d.Seconds())
}

// RecordFailure counts a failed launch under its error kind label.
func (c *Collector) RecordFailure(kind string, d time.Duration) {
	c.failures.WithLabelValues(kind).Inc()
	c.duration.Observe(d.Seconds())
}
