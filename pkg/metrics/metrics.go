// Package metrics provides Prometheus counters for selection activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the daemon's metrics and their registry.
type Recorder struct {
	// registry is the backing Prometheus registry.
	registry *prometheus.Registry
	// selections counts completed selection attempts by outcome.
	selections *prometheus.CounterVec
	// lookupMisses counts device names resolved by estimation.
	lookupMisses prometheus.Counter
	// catalogFailures counts failed remote catalog fetches.
	catalogFailures prometheus.Counter
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Recorder{
		registry: registry,
		selections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "modelpickd",
			Name:      "selections_total",
			Help:      "Total completed model selection attempts.",
		}, []string{"outcome"}),
		lookupMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "modelpickd",
			Name:      "gpu_lookup_misses_total",
			Help:      "Total GPU names absent from the reference database.",
		}),
		catalogFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "modelpickd",
			Name:      "catalog_failures_total",
			Help:      "Total failed remote model catalog fetches.",
		}),
	}
}

// RecordSelection records a completed selection attempt.
func (r *Recorder) RecordSelection(succeeded bool) {
	outcome := "success"
	if !succeeded {
		outcome = "insufficient"
	}
	r.selections.WithLabelValues(outcome).Inc()
}

// RecordLookupMiss records a device name resolved by estimation.
func (r *Recorder) RecordLookupMiss() {
	r.lookupMisses.Inc()
}

// RecordCatalogFailure records a failed remote catalog fetch.
func (r *Recorder) RecordCatalogFailure() {
	r.catalogFailures.Inc()
}

// Handler returns the Prometheus exposition handler for the recorder's
// registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
