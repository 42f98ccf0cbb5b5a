package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type infoReport struct {
	Target         string `json:"target"`
	Root           string `json:"root"`
	SingleFile     bool   `json:"single_file"`
	BaselinePath   string `json:"baseline_path"`
	BaselineExists bool   `json:"baseline_exists"`
	Entries        int    `json:"entries"`
	Interval       string `json:"interval"`
}

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show the target's baseline state",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(args)
		if err != nil {
			return err
		}

		report := infoReport{
			Target:         app.target.Path,
			Root:           app.target.Root,
			SingleFile:     app.target.SingleFile,
			BaselinePath:   app.store.Path(),
			BaselineExists: app.store.Exists(),
			Entries:        len(app.monitor.Baseline()),
			Interval:       app.cfg.Interval,
		}
		if jsonOutput {
			return outputJSON(report)
		}

		mode := "directory"
		if report.SingleFile {
			mode = "single file"
		}
		fmt.Printf("Target:    %s\n", report.Target)
		fmt.Printf("Mode:      %s\n", mode)
		fmt.Printf("Baseline:  %s\n", report.BaselinePath)
		if report.BaselineExists {
			fmt.Printf("State:     present, %d file(s)\n", report.Entries)
		} else {
			fmt.Printf("State:     absent\n")
		}
		fmt.Printf("Interval:  %s\n", report.Interval)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
