package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report changes since the last scan or check",
	Long: `Check fingerprints every file in scope, reports each path that was
created, deleted, or modified relative to the baseline, then adopts
the new state as the baseline. A change is therefore reported once,
not on every subsequent check.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(args)
		if err != nil {
			return err
		}
		diff := app.monitor.CheckChanges()
		if jsonOutput {
			return outputJSON(diff)
		}
		if diff.Empty() {
			fmt.Println("No changes detected.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
