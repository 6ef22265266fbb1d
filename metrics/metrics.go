// Package metrics instruments solver runs with Prometheus collectors.
//
// The solver is a batch computation, so the CLI does not serve /metrics; it
// writes the gathered families once at exit in the node-exporter textfile
// format (WriteTextfile). Library users may register a Collector on their own
// registry instead.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "paretodp"

// Recorder receives solver measurements. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// ObserveSolve records one finished solve with its terminal status.
	ObserveSolve(criterion, status string, seconds float64)

	// AddCells records n DP cells filled.
	AddCells(criterion string, n int)
}

// Nop discards every measurement.
type Nop struct{}

var _ Recorder = Nop{}

// ObserveSolve implements Recorder.
func (Nop) ObserveSolve(string, string, float64) {}

// AddCells implements Recorder.
func (Nop) AddCells(string, int) {}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop{}
	}

	return r
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cells    *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates the solver collectors and registers them on reg.
// A collector already registered by an earlier call is reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Number of interval DP solves by criterion and terminal status.",
		}, []string{"criterion", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one interval DP solve.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"criterion"}),
		cells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_filled_total",
			Help:      "Number of DP matrix cells computed.",
		}, []string{"criterion"}),
	}

	var err error
	if c.solves, err = register(reg, c.solves); err != nil {
		return nil, err
	}
	if c.duration, err = register(reg, c.duration); err != nil {
		return nil, err
	}
	if c.cells, err = register(reg, c.cells); err != nil {
		return nil, err
	}

	return c, nil
}

// register registers col, returning the existing collector on duplicates.
func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return col, fmt.Errorf("metrics: register: %w", err)
	}

	return col, nil
}

// ObserveSolve implements Recorder.
func (c *Collector) ObserveSolve(criterion, status string, seconds float64) {
	c.solves.WithLabelValues(criterion, status).Inc()
	c.duration.WithLabelValues(criterion).Observe(seconds)
}

// AddCells implements Recorder.
func (c *Collector) AddCells(criterion string, n int) {
	c.cells.WithLabelValues(criterion).Add(float64(n))
}

// WriteTextfile gathers g and writes the text exposition format to path
// atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}

	return nil
}
