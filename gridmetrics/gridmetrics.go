// Package gridmetrics exports layout pass statistics of a grid.Manager
// as Prometheus metrics.
//
//	c := gridmetrics.New()
//	prometheus.MustRegister(c)
//	m := grid.NewManager(grid.WithObserver(c))
package gridmetrics

import (
	"github.com/germtb/grid"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "grid"

// Collector is a grid.Observer and a prometheus.Collector.
type Collector struct {
	passes    *prometheus.CounterVec
	overflows prometheus.Counter
	duration  prometheus.Histogram
	items     prometheus.Gauge
	slots     *prometheus.GaugeVec
}

var (
	_ grid.Observer        = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

// New creates a Collector. Nothing is registered.
func New() *Collector {
	return &Collector{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "passes_total",
			Help:      "Layout passes by outcome",
		}, []string{"outcome"}),
		overflows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "overflows_total",
			Help:      "Passes where a container was smaller than the minimum sizes of its slots",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "pass_duration_seconds",
			Help:      "Time spent in one layout pass",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2},
		}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "items",
			Help:      "Items placed by the last completed pass",
		}),
		slots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "slots",
			Help:      "Slots laid out by the last completed pass",
		}, []string{"axis"}),
	}
}

// LayoutPass records one pass.
func (c *Collector) LayoutPass(_ grid.Window, stats grid.PassStats) {
	c.passes.WithLabelValues(stats.Outcome.String()).Inc()
	if stats.Outcome == grid.OutcomeSkipped {
		return
	}
	c.duration.Observe(stats.Duration.Seconds())
	if stats.Overflow {
		c.overflows.Inc()
	}
	if stats.Outcome == grid.OutcomeCompleted {
		c.items.Set(float64(stats.Items))
		c.slots.WithLabelValues("column").Set(float64(stats.Columns))
		c.slots.WithLabelValues("row").Set(float64(stats.Rows))
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.passes.Describe(ch)
	c.overflows.Describe(ch)
	c.duration.Describe(ch)
	c.items.Describe(ch)
	c.slots.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.passes.Collect(ch)
	c.overflows.Collect(ch)
	c.duration.Collect(ch)
	c.items.Collect(ch)
	c.slots.Collect(ch)
}
