package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fimon-project/fimon/internal/audit"
	"github.com/fimon-project/fimon/internal/baseline"
	"github.com/fimon-project/fimon/internal/monitor"
	"github.com/fimon-project/fimon/internal/snapshot"
	"github.com/fimon-project/fimon/pkg/color"
	"github.com/fimon-project/fimon/pkg/config"
	"github.com/fimon-project/fimon/pkg/errclass"
	"github.com/fimon-project/fimon/pkg/event"
	"github.com/fimon-project/fimon/pkg/logging"
)

// app bundles everything a command needs for one resolved target.
type app struct {
	cfg     *config.Config
	target  *snapshot.Target
	store   *baseline.Store
	monitor *monitor.Monitor
	log     *logging.Logger
}

// targetArg returns the target path from positional args, defaulting to
// the current directory.
func targetArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// newApp resolves the target, loads the configuration colocated with
// its root, and assembles the engine with the console sink plus the
// forensic log. The forensic log defaults to the configured log_file
// in the root; --log-file overrides the location, and an empty
// log_file in the config disables it.
func newApp(args []string) (*app, error) {
	abs, err := filepath.Abs(targetArg(args))
	if err != nil {
		return nil, errclass.ErrTargetInvalid.WithMessagef("resolve %s: %v", targetArg(args), err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errclass.ErrTargetInvalid.WithMessagef("stat %s: %v", abs, err)
	}
	root := abs
	if !info.IsDir() {
		root = filepath.Dir(abs)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	ignore := cfg.IgnoreNames()
	bPath := filepath.Join(root, cfg.BaselineFile)
	if baselinePath != "" {
		bPath, err = filepath.Abs(baselinePath)
		if err != nil {
			return nil, errclass.ErrTargetInvalid.WithMessagef("resolve baseline %s: %v", baselinePath, err)
		}
		ignore = append(ignore, filepath.Base(bPath))
	}
	logPath := logFilePath
	if logPath == "" && cfg.LogFile != "" {
		logPath = filepath.Join(root, cfg.LogFile)
	}
	if logPath != "" {
		ignore = append(ignore, filepath.Base(logPath))
	}

	target, err := snapshot.Resolve(abs, ignore)
	if err != nil {
		return nil, err
	}
	store := baseline.NewStore(bPath, filepath.Join(root, cfg.KeyFile))

	log := logging.NewLogger(logging.ParseLevel(cfg.Logging.Level))
	logging.SetGlobal(log)

	var sink event.Sink = event.NewConsoleSink(os.Stdout)
	if logPath != "" {
		sink = event.Multi(sink, audit.NewFileAppender(logPath))
	}

	return &app{
		cfg:     cfg,
		target:  target,
		store:   store,
		monitor: monitor.New(target, store, sink, monitor.WithLogger(log)),
		log:     log,
	}, nil
}

// pollInterval resolves the polling interval: the command-line override
// wins, otherwise the configured value.
func (a *app) pollInterval(override string) (time.Duration, error) {
	if override == "" {
		return a.cfg.PollInterval()
	}
	d, err := time.ParseDuration(override)
	if err != nil || d <= 0 {
		return 0, errclass.ErrTargetInvalid.WithMessagef("invalid interval %q", override)
	}
	return d, nil
}

// fmtErr prints a formatted message with the error tag to stderr.
func fmtErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.Redf(event.TagError), fmt.Sprintf(format, args...))
}
