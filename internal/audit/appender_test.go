package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fimon-project/fimon/pkg/event"
)

func TestFileAppender_AppendsTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fimon.log")
	a := NewFileAppender(path)
	a.now = func() time.Time {
		return time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	}

	a.Emit("[CREATED] a.txt")
	a.Emit("[INFO] baseline updated for 2 file(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[2026-08-23 10:30:00] [CREATED] a.txt", lines[0])
	assert.Equal(t, "[2026-08-23 10:30:00] [INFO] baseline updated for 2 file(s)", lines[1])
}

func TestFileAppender_AppendsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".fimon.log")

	NewFileAppender(path).Emit("[INFO] first run")
	NewFileAppender(path).Emit("[INFO] second run")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestFileAppender_IsAnEventSink(t *testing.T) {
	var _ event.Sink = NewFileAppender(filepath.Join(t.TempDir(), ".fimon.log"))
}

func TestFileAppender_UnwritablePathDoesNotPanic(t *testing.T) {
	a := NewFileAppender(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	assert.NotPanics(t, func() {
		a.Emit("[INFO] dropped")
		a.Emit("[INFO] dropped again")
	})
}
