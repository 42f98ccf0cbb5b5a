// Package audit provides the forensic log: a file-backed event sink
// that prefixes each event with a timestamp and appends it durably.
package audit

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// timeFormat matches the log pane format operators read directly.
const timeFormat = "2006-01-02 15:04:05"

// FileAppender appends timestamped event lines to a log file. It
// implements event.Sink. Emit is synchronous and bounded by one write
// plus fsync; failures are swallowed after one stderr notice so the
// monitoring loop is never halted by its own log.
type FileAppender struct {
	path string
	mu   sync.Mutex

	warnedOnce bool
	now        func() time.Time
}

// NewFileAppender creates a FileAppender writing to path. The file is
// created on first emit.
func NewFileAppender(path string) *FileAppender {
	return &FileAppender{path: path, now: time.Now}
}

// Emit appends one timestamped line to the log file.
func (a *FileAppender) Emit(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	line := fmt.Sprintf("[%s] %s\n", a.now().Format(timeFormat), message)

	file, err := os.OpenFile(a.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		a.warn(err)
		return
	}
	defer file.Close()

	if _, err := file.WriteString(line); err != nil {
		a.warn(err)
		return
	}
	if err := file.Sync(); err != nil {
		a.warn(err)
	}
}

func (a *FileAppender) warn(err error) {
	if a.warnedOnce {
		return
	}
	a.warnedOnce = true
	fmt.Fprintf(os.Stderr, "fimon: forensic log unavailable: %v\n", err)
}
