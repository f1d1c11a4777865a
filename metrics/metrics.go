// SPDX-License-Identifier: MIT

// Package metrics keeps Prometheus collectors for one planner process and
// dumps them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/busroute/fleet"
)

const namespace = "busroute"

// Recorder owns a dedicated registry and the solver collectors.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	// Runs counts Solve calls by outcome (ok, error).
	Runs *prometheus.CounterVec
	// Trips counts buses credited to the answer.
	Trips prometheus.Counter
	// Dispatches counts every bus by kind (full, partial) and whether it
	// was credited.
	Dispatches *prometheus.CounterVec
	// Boarded counts workers by where they boarded (target, pickup).
	Boarded *prometheus.CounterVec
	// Locations is the size of the last solved instance, hub included.
	Locations prometheus.Gauge
	// SolveDuration records wall time per Solve in seconds.
	SolveDuration prometheus.Histogram
}

// New builds a Recorder with every collector registered. withRuntime adds
// the Go and process collectors.
func New(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "runs_total", Help: "Solver runs by outcome."},
			[]string{"outcome"},
		),
		Trips: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "trips_total", Help: "Bus trips credited to the answer."},
		),
		Dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "dispatches_total", Help: "Dispatched buses by kind and whether they were counted."},
			[]string{"kind", "counted"},
		),
		Boarded: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "workers_boarded_total", Help: "Workers boarded by boarding point."},
			[]string{"at"},
		),
		Locations: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "locations", Help: "Locations in the last solved instance, hub included."},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: namespace, Name: "solve_duration_seconds", Help: "Solver wall time in seconds.", Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}},
		),
	}

	r.registry.MustRegister(r.Runs, r.Trips, r.Dispatches, r.Boarded, r.Locations, r.SolveDuration)
	if withRuntime {
		r.registry.MustRegister(collectors.NewGoCollector())
		r.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	return r
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.registry
}

// ObserveDispatch records one bus; it has the fleet.Observer signature.
func (r *Recorder) ObserveDispatch(d fleet.Dispatch) {
	if r == nil {
		return
	}
	r.Dispatches.WithLabelValues(d.Kind.String(), strconv.FormatBool(d.Counted)).Inc()
	if d.Counted {
		r.Trips.Inc()
	}

	picked := 0
	for _, p := range d.Pickups {
		picked += p.Workers
	}
	r.Boarded.WithLabelValues("pickup").Add(float64(picked))
	r.Boarded.WithLabelValues("target").Add(float64(d.Load - picked))
}

// ObserveRun records the outcome of one Solve over m locations.
func (r *Recorder) ObserveRun(m int, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.Runs.WithLabelValues(outcome).Inc()
	r.Locations.Set(float64(m))
	r.SolveDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes every registered metric to path in the text
// exposition format, replacing the file atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
