package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

const (
	namespace = "d3ck"
	subsystem = "cfg"
)

// Load results used as the "result" label.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Collector records configuration loads in its own registry.
type Collector struct {
	registry *prometheus.Registry

	loads    *prometheus.CounterVec
	files    prometheus.Gauge
	keys     prometheus.Gauge
	duration prometheus.Histogram
}

var _ cfg.Observer = (*Collector)(nil)

// NewCollector creates a Collector with a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "loads_total",
			Help:      "Number of configuration loads by result",
		}, []string{"result"}),
		files: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "files_loaded",
			Help:      "Configuration files located by the last load",
		}),
		keys: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "keys",
			Help:      "Top-level keys after the last successful load",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "load_duration_seconds",
			Help:      "Time spent locating, reading and merging configuration",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
	}

	c.registry.MustRegister(c.loads, c.files, c.keys, c.duration)

	// Both results are exported from the start.
	c.loads.WithLabelValues(ResultOK)
	c.loads.WithLabelValues(ResultError)

	return c
}

// ObserveLoad implements cfg.Observer.
func (c *Collector) ObserveLoad(s cfg.LoadStats) {
	c.duration.Observe(s.Duration.Seconds())
	c.files.Set(float64(s.Files))

	if s.Err != nil {
		c.loads.WithLabelValues(ResultError).Inc()
		return
	}
	c.loads.WithLabelValues(ResultOK).Inc()
	c.keys.Set(float64(s.Keys))
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written to a temporary name and renamed into place.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
