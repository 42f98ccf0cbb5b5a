// Package watch drives repeated change checks. The engine itself
// exposes no timer or signal handling; these loops invoke one
// synchronous CheckChanges per trigger and stop when their context is
// cancelled, so cancellation is observed at whole-check granularity.
package watch

import (
	"context"
	"time"

	"github.com/fimon-project/fimon/pkg/logging"
	"github.com/fimon-project/fimon/pkg/model"
)

// Checker is the slice of the engine a watch loop drives.
type Checker interface {
	CheckChanges() *model.DiffResult
}

// Poller invokes CheckChanges at a fixed interval.
type Poller struct {
	checker  Checker
	interval time.Duration
	log      *logging.Logger
}

// NewPoller creates a Poller. A non-positive interval defaults to one second.
func NewPoller(checker Checker, interval time.Duration, log *logging.Logger) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	if log == nil {
		log = logging.NewLogger(logging.LevelInfo)
	}
	return &Poller{checker: checker, interval: interval, log: log}
}

// Run checks for changes every interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info("watch started", map[string]any{"interval": p.interval.String()})

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("watch stopped")
			return ctx.Err()
		case <-ticker.C:
			p.checker.CheckChanges()
		}
	}
}
