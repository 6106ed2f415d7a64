// Package metrics records tabular encodes as Prometheus metrics.
//
//	collector := metrics.NewCollector(metrics.Config{Namespace: "export"}, registry)
//	err := tabular.EncodeAll(ctx, w, people, tabular.WithObserver(collector))
//
// Metrics:
//   - <ns>_<sub>_encodes_total: finished encodes by record type and status
//   - <ns>_<sub>_rows_total: data lines written by record type
//   - <ns>_<sub>_bytes_total: bytes written by record type
//   - <ns>_<sub>_encode_duration_seconds: encode duration histogram
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zoobzio/tabular"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Config names the metrics and sizes the duration histogram.
type Config struct {
	Namespace       string
	Subsystem       string
	DurationBuckets []float64
}

// Collector implements tabular.Observer.
type Collector struct {
	encodesTotal   *prometheus.CounterVec
	rowsTotal      *prometheus.CounterVec
	bytesTotal     *prometheus.CounterVec
	encodeDuration *prometheus.HistogramVec
}

// NewCollector creates the encode metrics and registers them with registry.
// A nil registry gets a fresh prometheus.Registry.
func NewCollector(cfg Config, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "tabular"
	}
	if len(cfg.DurationBuckets) == 0 {
		// 1ms to ~16s
		cfg.DurationBuckets = prometheus.ExponentialBuckets(0.001, 4, 8)
	}

	c := &Collector{
		encodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "encodes_total",
				Help:      "Total number of finished CSV encodes",
			},
			[]string{"type", "status"},
		),
		rowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "rows_total",
				Help:      "Total number of CSV data lines written",
			},
			[]string{"type"},
		),
		bytesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "bytes_total",
				Help:      "Total number of CSV bytes written, headers included",
			},
			[]string{"type"},
		),
		encodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "encode_duration_seconds",
				Help:      "Duration of CSV encodes in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"type"},
		),
	}

	registry.MustRegister(
		c.encodesTotal,
		c.rowsTotal,
		c.bytesTotal,
		c.encodeDuration,
	)
	return c
}

// ObserveEncode implements tabular.Observer.
func (c *Collector) ObserveEncode(s tabular.Stats) {
	status := StatusSuccess
	if s.Err != nil {
		status = StatusError
	}

	c.encodesTotal.WithLabelValues(s.TypeName, status).Inc()
	c.rowsTotal.WithLabelValues(s.TypeName).Add(float64(s.Rows))
	c.bytesTotal.WithLabelValues(s.TypeName).Add(float64(s.Size))
	c.encodeDuration.WithLabelValues(s.TypeName).Observe(s.Duration.Seconds())
}
