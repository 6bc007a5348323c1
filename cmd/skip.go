package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"workday/internal/domain"
)

var skipYes bool

// skipCmd represents the skip command
var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip the current phase",
	Long: `End the current phase immediately. Skipping a break jumps straight to
the next focus session; skipping a focus session ends it early and asks
for confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}

		state, err := app.timer.Status()
		if err != nil {
			return err
		}
		if state == nil {
			return domain.ErrNotRunning
		}

		if state.Phase == domain.PhaseFocus && !skipYes {
			question := fmt.Sprintf("End pomodoro #%d early and start the break?", state.CurrentPomodoro)
			if !promptYesNo(question, false) {
				fmt.Println("Skip cancelled.")
				return nil
			}
		}

		state, err = app.timer.Skip()
		if err != nil {
			return err
		}

		if state.Phase == domain.PhaseFocus {
			fmt.Println("⏭  Skipping focus session, heading into the break.")
		} else {
			fmt.Println("⏭  Skipping break, next pomodoro starts now.")
		}
		return nil
	},
}

func init() {
	skipCmd.Flags().BoolVarP(&skipYes, "yes", "y", false, "Skip without confirmation")
}
