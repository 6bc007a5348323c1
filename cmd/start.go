package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"workday/internal/domain"
)

// maxPlannedTasks caps the morning task list.
const maxPlannedTasks = 10

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the workday and plan it",
	Long: `Plan the day: list the tasks you want to finish and set a pomodoro
goal. One plan per calendar day; rerun to see the existing plan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		ctx := context.Background()

		day, err := currentDay(ctx)
		if err != nil {
			return fmt.Errorf("failed to load today: %w", err)
		}
		if day != nil {
			fmt.Println("Today's workday is already planned.")
			fmt.Println()
			renderDayProgress(day)
			return nil
		}

		fmt.Println(titleStyle.Render("🌅 Good morning! Let's plan your day."))
		fmt.Println()

		var descriptions []string
		fmt.Printf("What do you want to finish today? (up to %d, empty line to stop)\n", maxPlannedTasks)
		for i := 1; i <= maxPlannedTasks; i++ {
			desc := promptString(fmt.Sprintf("  Task %d", i), "")
			if desc == "" {
				break
			}
			descriptions = append(descriptions, desc)
		}

		planned := promptInt("How many pomodoros do you plan?", 8, 1, 40)

		day, err = app.storage.Days().GetOrCreate(ctx, todayDate())
		if err != nil {
			return fmt.Errorf("failed to create day: %w", err)
		}

		now := time.Now()
		day.PlannedPomodoros = planned
		day.StartedAt = &now
		if err := app.storage.Days().Update(ctx, day); err != nil {
			return fmt.Errorf("failed to save day: %w", err)
		}

		for _, desc := range descriptions {
			task := domain.NewTask(day.ID, desc)
			if err := app.storage.Tasks().Create(ctx, task); err != nil {
				return fmt.Errorf("failed to save task: %w", err)
			}
			day.Tasks = append(day.Tasks, task)
		}

		if err := app.notifier.DayStart(planned, descriptions); err != nil {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Notification failed: %v", err)))
		}

		fmt.Println()
		renderDayProgress(day)
		fmt.Println()
		fmt.Println(dimStyle.Render("Start your first pomodoro with \"workday timer\"."))
		return nil
	},
}
