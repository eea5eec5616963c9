// Package metrics counts and times puzzle runs.
package metrics

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder owns a private registry so that tests and repeated runs never
// collide on global collectors.
type Recorder struct {
	reg      *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "aoc",
				Name:      "runs_total",
				Help:      "Puzzle runs by day, part and outcome.",
			},
			[]string{"day", "part", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "aoc",
				Name:      "solve_duration_seconds",
				Help:      "Time spent solving a puzzle.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"day", "part"},
		),
	}
	r.reg.MustRegister(r.runs, r.duration)

	return r
}

// Observe records one run; err selects the outcome label.
func (r *Recorder) Observe(day, part int, elapsed time.Duration, err error) {
	d, p := strconv.Itoa(day), strconv.Itoa(part)
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.runs.WithLabelValues(d, p, outcome).Inc()
	r.duration.WithLabelValues(d, p).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteText writes every metric family in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
