package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// latencies collects the per operation timings of a run in its own registry.
type latencies struct {
	reg     *prometheus.Registry
	ops     *prometheus.HistogramVec
	growths *prometheus.GaugeVec
}

func newLatencies() *latencies {
	l := &latencies{
		reg: prometheus.NewRegistry(),
		ops: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ptree",
			Subsystem: "measure",
			Name:      "op_duration_nanoseconds",
			Help:      "Average duration of one operation over a batch.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 16),
		}, []string{"container", "phase"}),
		growths: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ptree",
			Subsystem: "measure",
			Name:      "arena_growths",
			Help:      "Implicit arena growths during the insert phase.",
		}, []string{"container"}),
	}
	l.reg.MustRegister(l.ops, l.growths)
	return l
}

func (l *latencies) observe(container, phase string, nsPerOp float64) {
	l.ops.WithLabelValues(container, phase).Observe(nsPerOp)
}

func (l *latencies) setGrowths(container string, n uint64) {
	l.growths.WithLabelValues(container).Set(float64(n))
}

// write the collected metrics in the text exposition format to path.
func (l *latencies) write(path string) error {
	if err := prometheus.WriteToTextfile(path, l.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
