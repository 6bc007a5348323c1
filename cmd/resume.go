package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"workday/internal/timer"
)

// resumeCmd represents the resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused timer",
	Long:  `Resume the countdown from where pause left it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		if err := app.timer.Resume(); err != nil {
			return err
		}

		// Give the daemon a moment to apply the signal, then show where
		// the countdown picks up.
		time.Sleep(200 * time.Millisecond)
		state, err := app.timer.Status()
		if err == nil && state != nil {
			fmt.Printf("▶️  Timer resumed, %s remaining.\n",
				timer.FormatRemaining(state.TimeRemainingSeconds))
		} else {
			fmt.Println("▶️  Timer resumed.")
		}
		return nil
	},
}
