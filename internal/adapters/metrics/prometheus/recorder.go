// Package prometheus records forward-model evaluations as Prometheus metrics.
package prometheus

import (
	"fmt"
	"time"

	"github.com/bnema/dscfwd/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dscfwd"

type Recorder struct {
	registry    *prometheus.Registry
	evaluations prometheus.Counter
	resets      prometheus.Counter
	duration    prometheus.Histogram
	fard        *prometheus.GaugeVec
}

var _ ports.EvaluationRecorder = (*Recorder)(nil)

// NewRecorder registers the model metrics on a private registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Number of forward-model evaluations",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nonfinite_predictions_total",
			Help:      "Evaluations whose prediction contained NaN or Inf and was replaced with zeros",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of a single forward-model evaluation",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		fard: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ard_free_energy",
			Help:      "Last ARD free-energy contribution by phase",
		}, []string{"phase"}),
	}
	r.registry.MustRegister(r.evaluations, r.resets, r.duration, r.fard)

	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveEvaluation(elapsed time.Duration, reset bool) {
	r.evaluations.Inc()
	if reset {
		r.resets.Inc()
	}
	r.duration.Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveARD(phase ports.ARDPhase, fard float64) {
	r.fard.WithLabelValues(string(phase)).Set(fard)
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
