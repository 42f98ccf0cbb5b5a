package cli

import (
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Record a fresh baseline for the target",
	Long: `Scan fingerprints every file in scope and adopts the result as the
new baseline, replacing any previous one. No changes are reported;
the scan defines the state later checks compare against.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(args)
		if err != nil {
			return err
		}
		report := app.monitor.Scan()
		return outputJSON(report)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
