package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DumpContainsCollectors(t *testing.T) {
	r := NewRegistry()
	r.RecordScan()
	r.RecordSnapshot(50*time.Millisecond, 12, 1)
	r.RecordCheck(2, 1, 3)
	r.RecordSaveFailure()

	var buf bytes.Buffer
	require.NoError(t, r.Dump(&buf))
	out := buf.String()

	assert.Contains(t, out, "fimon_scans_total 1")
	assert.Contains(t, out, "fimon_checks_total 1")
	assert.Contains(t, out, "fimon_files_hashed_total 12")
	assert.Contains(t, out, "fimon_hash_failures_total 1")
	assert.Contains(t, out, "fimon_baseline_save_failures_total 1")
	assert.Contains(t, out, `fimon_changes_detected_total{type="created"} 2`)
	assert.Contains(t, out, `fimon_changes_detected_total{type="deleted"} 1`)
	assert.Contains(t, out, `fimon_changes_detected_total{type="modified"} 3`)
}

func TestRegistry_DumpEmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRegistry().Dump(&buf))
	assert.Contains(t, buf.String(), "fimon_scans_total 0")
}

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
