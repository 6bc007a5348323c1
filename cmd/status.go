package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"workday/internal/timer"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the timer and today's progress",
	Long:  `Show the running timer phase and remaining time, plus today's pomodoro and task progress.`,
	RunE:  runStatus,
}

// runStatus also backs the bare "workday" invocation.
func runStatus(cmd *cobra.Command, args []string) error {
	if !app.paths.IsConfigured() {
		fmt.Println("Workday is not set up yet. Run \"workday setup\" to get started.")
		return nil
	}
	ctx := context.Background()

	state, err := app.timer.Status()
	if err != nil {
		return fmt.Errorf("failed to read timer status: %w", err)
	}

	fmt.Println()
	if state == nil {
		fmt.Println(dimStyle.Render("No timer running."))
	} else {
		fmt.Printf("%s  %s remaining\n",
			titleStyle.Render(phaseLabel(state)),
			valueStyle.Render(timer.FormatRemaining(state.TimeRemainingSeconds)))
		if state.TaskID != nil {
			task, err := app.storage.Tasks().FindByID(ctx, *state.TaskID)
			if err == nil && task != nil {
				fmt.Printf("%s %s\n", dimStyle.Render("Working on:"), task.Description)
			}
		}
	}
	fmt.Println()

	day, err := currentDay(ctx)
	if err != nil {
		return fmt.Errorf("failed to load today: %w", err)
	}
	if day == nil {
		fmt.Println(dimStyle.Render("No workday started today. Run \"workday start\" to plan one."))
		return nil
	}
	renderDayProgress(day)
	return nil
}
