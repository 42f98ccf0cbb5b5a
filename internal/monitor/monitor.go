// Package monitor implements the baseline/diff engine.
//
// A Monitor owns the in-memory fingerprint baseline for one target.
// Every public operation is synchronous and runs to completion; the
// baseline is fully replaced, never incrementally patched, on every
// scan or check. One monitored root must not be shared across
// concurrently running Monitor instances.
package monitor

import (
	"time"

	"github.com/fimon-project/fimon/internal/baseline"
	"github.com/fimon-project/fimon/internal/hasher"
	"github.com/fimon-project/fimon/internal/snapshot"
	"github.com/fimon-project/fimon/pkg/event"
	"github.com/fimon-project/fimon/pkg/logging"
	"github.com/fimon-project/fimon/pkg/metrics"
	"github.com/fimon-project/fimon/pkg/model"
	"github.com/fimon-project/fimon/pkg/uuidutil"
)

// Monitor is the diff engine for a single monitored target.
type Monitor struct {
	target   *snapshot.Target
	store    *baseline.Store
	sink     event.Sink
	registry *metrics.Registry
	log      *logging.Logger

	baseline model.FingerprintMap
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithMetrics records engine activity into the given registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(m *Monitor) { m.registry = r }
}

// WithLogger sets the operational logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Monitor) { m.log = l }
}

// New creates a Monitor and loads the persisted baseline. A baseline
// that cannot be loaded is reported through the sink and treated as
// absent: the engine proceeds with an empty map.
func New(target *snapshot.Target, store *baseline.Store, sink event.Sink, opts ...Option) *Monitor {
	if sink == nil {
		sink = event.Discard
	}
	m := &Monitor{
		target:   target,
		store:    store,
		sink:     sink,
		registry: metrics.Default(),
		log:      logging.NewLogger(logging.LevelInfo),
		baseline: model.FingerprintMap{},
	}
	for _, opt := range opts {
		opt(m)
	}

	loaded, err := store.Load()
	if err != nil {
		m.sink.Emit(event.Errorf("loading baseline failed: %v", err))
	}
	m.baseline = loaded
	return m
}

// Baseline returns a copy of the current in-memory fingerprint map.
func (m *Monitor) Baseline() model.FingerprintMap {
	return m.baseline.Clone()
}

// Scan recomputes all fingerprints and adopts them as the new baseline
// without diffing: this call defines "no changes yet".
func (m *Monitor) Scan() *model.ScanReport {
	runID := uuidutil.NewV4()
	current, unreadable := m.takeSnapshot()
	existed := m.store.Exists()

	m.baseline = current
	m.persist()
	m.registry.RecordScan()

	verb := "created"
	if existed {
		verb = "updated"
	}
	m.sink.Emit(event.Infof("baseline %s for %d file(s)", verb, len(current)))
	m.log.Info("scan complete", map[string]any{
		"run_id": runID, "files": len(current), "unreadable": unreadable,
	})

	return &model.ScanReport{
		RunID:           runID,
		BaselineExisted: existed,
		FileCount:       len(current),
		Unreadable:      unreadable,
	}
}

// CheckChanges recomputes all fingerprints, classifies every path as
// created, deleted, or modified relative to the baseline, then adopts
// the new map as the baseline and persists it. Changes are therefore
// reported exactly once, not on every subsequent check.
func (m *Monitor) CheckChanges() *model.DiffResult {
	runID := uuidutil.NewV4()
	current, _ := m.takeSnapshot()

	diff := model.Diff(m.baseline, current)
	for _, path := range diff.Created {
		m.sink.Emit(event.Created(path))
	}
	for _, path := range diff.Deleted {
		m.sink.Emit(event.Deleted(path))
	}
	for _, path := range diff.Modified {
		m.sink.Emit(event.Modified(path))
	}

	m.baseline = current
	m.persist()
	m.registry.RecordCheck(len(diff.Created), len(diff.Deleted), len(diff.Modified))
	m.log.Debug("check complete", map[string]any{
		"run_id": runID, "changes": diff.Total(),
	})

	return diff
}

// takeSnapshot enumerates and hashes the files in scope. A file that
// cannot be hashed stays in the map under the sentinel digest so it is
// detected as present-but-unreadable, not silently absent.
func (m *Monitor) takeSnapshot() (model.FingerprintMap, int) {
	start := time.Now()
	current := model.FingerprintMap{}
	unreadable := 0

	for _, abs := range m.target.Enumerate() {
		id, err := m.target.Identifier(abs)
		if err != nil {
			m.sink.Emit(event.Errorf("cannot relativize %s: %v", abs, err))
			continue
		}
		digest, err := hasher.HashFile(abs)
		if err != nil {
			m.sink.Emit(event.Errorf("hashing failed for %s: %v", id, err))
			unreadable++
		}
		current[id] = digest
	}

	m.registry.RecordSnapshot(time.Since(start), len(current), unreadable)
	return current, unreadable
}

// persist writes the in-memory baseline to disk. On failure the
// in-memory state stays advanced; callers must not assume the on-disk
// copy is current.
func (m *Monitor) persist() {
	if err := m.store.Save(m.baseline); err != nil {
		m.registry.RecordSaveFailure()
		m.sink.Emit(event.Errorf("saving baseline failed: %v", err))
	}
}
