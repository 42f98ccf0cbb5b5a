package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fimon-project/fimon/internal/watch"
)

var (
	watchInterval string
	watchNotify   bool
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Continuously check the target for changes",
	Long: `Watch runs change checks until interrupted. By default the target is
polled at the configured interval; with --notify, checks are driven
by filesystem notifications instead, debounced so a burst of events
triggers a single check.

If no baseline exists yet, one is recorded before watching starts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(args)
		if err != nil {
			return err
		}

		if !app.store.Exists() {
			app.monitor.Scan()
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if watchNotify {
			err = watch.NewNotifier(app.monitor, app.target, watchDebounce, app.log).Run(ctx)
		} else {
			interval, ierr := app.pollInterval(watchInterval)
			if ierr != nil {
				return ierr
			}
			err = watch.NewPoller(app.monitor, interval, app.log).Run(ctx)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchInterval, "interval", "", "polling interval, e.g. 5s (default from config)")
	watchCmd.Flags().BoolVar(&watchNotify, "notify", false, "react to filesystem notifications instead of polling")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "quiet window before a notification triggers a check")
	rootCmd.AddCommand(watchCmd)
}
