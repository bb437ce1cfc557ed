// Package metrics counts rlib operations with Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rlib-dev/rlib-go/pkg/rlib"
)

// Collector implements rlib.Observer and prometheus.Collector.
//
//	c := metrics.New()
//	prometheus.MustRegister(c)
//	lib, _ := rlib.Open(rlib.Config{Observer: c})
type Collector struct {
	ops    *prometheus.CounterVec
	errors *prometheus.CounterVec
}

var _ rlib.Observer = (*Collector)(nil)

// New returns a Collector with every operation label pre-initialized to 0.
func New() *Collector {
	c := &Collector{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rlib",
			Name:      "operations_total",
			Help:      "Operations performed, by operation.",
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rlib",
			Name:      "operation_errors_total",
			Help:      "Operations that returned a native error code, by operation and code.",
		}, []string{"op", "code"}),
	}
	for _, op := range rlib.Ops() {
		c.ops.WithLabelValues(string(op))
	}
	return c
}

// Observe records one operation and, for a non-OK code, one error.
func (c *Collector) Observe(op rlib.Op, code rlib.ErrorCode) {
	c.ops.WithLabelValues(string(op)).Inc()
	if code != rlib.OK {
		c.errors.WithLabelValues(string(op), code.String()).Inc()
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.ops.Describe(ch)
	c.errors.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.ops.Collect(ch)
	c.errors.Collect(ch)
}
