package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer",
	Long: `Stop the timer daemon. The current pomodoro does not count; completed
sessions and break counters are already recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		if err := app.timer.Stop(); err != nil {
			return err
		}
		fmt.Println("⏹  Timer stopped.")
		return nil
	},
}
