// Package cli implements the fimon command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fimon-project/fimon/pkg/color"
	"github.com/fimon-project/fimon/pkg/metrics"
)

var (
	jsonOutput   bool
	noColor      bool
	baselinePath string
	logFilePath  string
	dumpMetrics  bool

	rootCmd = &cobra.Command{
		Use:   "fimon",
		Short: "fimon - file integrity monitor",
		Long: `fimon records a cryptographic fingerprint of every file under a
target path, persists that fingerprint set as an encrypted baseline, and
later recomputes fingerprints to report which files were created, deleted,
or modified.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			color.Init(noColor)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if dumpMetrics {
				if err := metrics.Default().Dump(os.Stderr); err != nil {
					fmtErr("dump metrics: %v", err)
				}
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVar(&baselinePath, "baseline", "", "baseline file path (default: colocated with the monitored root)")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "", "forensic log file (default: the configured log_file in the root)")
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "dump Prometheus metrics to stderr on exit")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// outputJSON prints v as JSON if --json flag is set, otherwise does nothing.
func outputJSON(v any) error {
	if !jsonOutput {
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
