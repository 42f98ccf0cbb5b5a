// Package metrics provides Prometheus instrumentation for fimon.
//
// There is no HTTP exposition endpoint; the registry is dumped in text
// format on demand when the process exits.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Registry holds all fimon metrics.
type Registry struct {
	reg *prometheus.Registry

	scans        prometheus.Counter
	checks       prometheus.Counter
	scanDuration prometheus.Histogram
	filesHashed  prometheus.Counter
	hashFailures prometheus.Counter
	saveFailures prometheus.Counter
	changes      *prometheus.CounterVec
}

// NewRegistry creates a registry with all fimon collectors registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fimon_scans_total",
			Help: "Total number of baseline scans performed",
		}),
		checks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fimon_checks_total",
			Help: "Total number of change checks performed",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fimon_snapshot_duration_seconds",
			Help:    "Time spent enumerating and hashing the monitored files",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		filesHashed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fimon_files_hashed_total",
			Help: "Total number of files hashed across all snapshots",
		}),
		hashFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fimon_hash_failures_total",
			Help: "Total number of files that enumerated but could not be hashed",
		}),
		saveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fimon_baseline_save_failures_total",
			Help: "Total number of failed baseline persistence attempts",
		}),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fimon_changes_detected_total",
			Help: "Total number of detected changes by type",
		}, []string{"type"}),
	}

	r.reg.MustRegister(r.scans, r.checks, r.scanDuration,
		r.filesHashed, r.hashFailures, r.saveFailures, r.changes)
	return r
}

// RecordSnapshot records one enumerate-and-hash pass.
func (r *Registry) RecordSnapshot(duration time.Duration, files, unreadable int) {
	r.scanDuration.Observe(duration.Seconds())
	r.filesHashed.Add(float64(files))
	r.hashFailures.Add(float64(unreadable))
}

// RecordScan counts one baseline scan.
func (r *Registry) RecordScan() {
	r.scans.Inc()
}

// RecordCheck counts one change check and its detections.
func (r *Registry) RecordCheck(created, deleted, modified int) {
	r.checks.Inc()
	r.changes.WithLabelValues("created").Add(float64(created))
	r.changes.WithLabelValues("deleted").Add(float64(deleted))
	r.changes.WithLabelValues("modified").Add(float64(modified))
}

// RecordSaveFailure counts a failed baseline persistence attempt.
func (r *Registry) RecordSaveFailure() {
	r.saveFailures.Inc()
}

// Dump writes the registry contents in Prometheus text format.
func (r *Registry) Dump(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}

// Global registry instance.
var global = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return global
}
