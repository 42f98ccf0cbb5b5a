package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fimon-project/fimon/internal/snapshot"
	"github.com/fimon-project/fimon/pkg/errclass"
	"github.com/fimon-project/fimon/pkg/logging"
)

// Notifier triggers a change check when the filesystem reports
// activity under the target, coalescing bursts of events into one
// check per debounce window. The check itself is still the engine's
// full synchronous snapshot-and-diff; fsnotify only decides when.
type Notifier struct {
	checker  Checker
	target   *snapshot.Target
	debounce time.Duration
	log      *logging.Logger
}

// NewNotifier creates a Notifier. A non-positive debounce defaults to 500ms.
func NewNotifier(checker Checker, target *snapshot.Target, debounce time.Duration, log *logging.Logger) *Notifier {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	if log == nil {
		log = logging.NewLogger(logging.LevelInfo)
	}
	return &Notifier{checker: checker, target: target, debounce: debounce, log: log}
}

// Run watches the target until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errclass.ErrWatchUnavailable.WithMessagef("create watcher: %v", err)
	}
	defer watcher.Close()

	if err := n.addWatches(watcher); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			n.log.Info("watch stopped")
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if n.target.Ignored(filepath.Base(ev.Name)) {
				continue
			}
			// New directories must be added to the watch set.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if err := watcher.Add(ev.Name); err != nil {
						n.log.Warn("cannot watch new directory", map[string]any{"dir": ev.Name, "error": err.Error()})
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(n.debounce)
			fire = timer.C

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			n.log.Warn("watcher error", map[string]any{"error": watchErr.Error()})

		case <-fire:
			timer = nil
			fire = nil
			n.checker.CheckChanges()
		}
	}
}

// addWatches registers the directories fsnotify must observe: the
// parent directory for a single-file target, every non-ignored
// directory of the subtree otherwise.
func (n *Notifier) addWatches(watcher *fsnotify.Watcher) error {
	if n.target.SingleFile {
		if err := watcher.Add(n.target.Root); err != nil {
			return errclass.ErrWatchUnavailable.WithMessagef("watch %s: %v", n.target.Root, err)
		}
		return nil
	}

	return filepath.WalkDir(n.target.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != n.target.Root && n.target.Ignored(d.Name()) {
			return fs.SkipDir
		}
		if addErr := watcher.Add(path); addErr != nil {
			n.log.Warn("cannot watch directory", map[string]any{"dir": path, "error": addErr.Error()})
		}
		return nil
	})
}
