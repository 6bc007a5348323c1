package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running timer",
	Long:  `Pause the countdown. The phase and remaining time are kept until you resume.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		if err := app.timer.Pause(); err != nil {
			return err
		}
		fmt.Println("⏸️  Timer paused. Resume with \"workday resume\".")
		return nil
	},
}
