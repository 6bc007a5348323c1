package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"workday/internal/domain"
	"workday/internal/timer"
)

var timerTask int

// timerCmd represents the timer command
var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Start the pomodoro timer",
	Long: `Start the detached timer daemon for today's workday.

The timer runs in the background: focus sessions alternate with email,
rest, and long breaks until you stop it. Control it with the pause,
resume, skip, and stop commands; "workday status" shows where it is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		ctx := context.Background()

		day, err := currentDay(ctx)
		if err != nil {
			return fmt.Errorf("failed to load today: %w", err)
		}
		if day == nil {
			return fmt.Errorf("no workday started today: run \"workday start\" first")
		}

		// Picking up after a stop continues the day's numbering.
		completed, err := app.storage.Pomodoros().CountCompleted(ctx, day.ID)
		if err != nil {
			return fmt.Errorf("failed to count pomodoros: %w", err)
		}

		opts := timer.StartOptions{
			DayID:            day.ID,
			StartingPomodoro: completed + 1,
		}

		var taskName string
		if timerTask > 0 {
			tasks, err := app.storage.Tasks().FindByDay(ctx, day.ID)
			if err != nil {
				return fmt.Errorf("failed to load tasks: %w", err)
			}
			if timerTask > len(tasks) {
				return fmt.Errorf("%w: today has %d tasks", domain.ErrInvalidTask, len(tasks))
			}
			opts.TaskID = &tasks[timerTask-1].ID
			taskName = tasks[timerTask-1].Description
		}

		if err := app.timer.Start(opts); err != nil {
			if errors.Is(err, domain.ErrAlreadyRunning) {
				return fmt.Errorf("%w: check \"workday status\"", err)
			}
			return err
		}

		fmt.Printf("🍅 Pomodoro #%d started (%d minutes).\n",
			opts.StartingPomodoro, app.config.Timer.FocusMinutes)
		if taskName != "" {
			fmt.Printf("   Working on: %s\n", taskName)
		}
		fmt.Println(dimStyle.Render("   The timer runs in the background; \"workday status\" shows progress."))
		return nil
	},
}

func init() {
	timerCmd.Flags().IntVarP(&timerTask, "task", "t", 0, "Task number to focus on (from \"workday task list\")")
}
