package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"workday/internal/domain"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Close the workday",
	Long: `End the day: stop a running timer, rate the day, jot a note, and see
the summary. A day with at least one completed pomodoro keeps the
streak alive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		ctx := context.Background()

		day, err := requireToday(ctx)
		if err != nil {
			return err
		}
		if day.EndedAt != nil {
			fmt.Println("Today's workday is already closed.")
			return nil
		}

		if err := app.timer.Stop(); err != nil && !errors.Is(err, domain.ErrNotRunning) {
			return err
		}

		// The daemon updated the counters; reload before summarizing.
		day, err = currentDay(ctx)
		if err != nil {
			return fmt.Errorf("failed to load today: %w", err)
		}

		fmt.Println(titleStyle.Render("🌇 Closing the day"))
		fmt.Println()
		satisfaction := promptInt("How satisfied are you with today? (1-4)", 3, 1, 4)
		notes := promptString("Any notes for tomorrow", "")

		now := time.Now()
		day.EndedAt = &now
		day.Satisfaction = &satisfaction
		day.Notes = notes
		if err := app.storage.Days().Update(ctx, day); err != nil {
			return fmt.Errorf("failed to save day: %w", err)
		}

		streak, err := app.storage.Streaks().Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load streak: %w", err)
		}
		if day.ActualPomodoros > 0 && streak.MarkActive(day.Date) {
			if err := app.storage.Streaks().Update(ctx, streak); err != nil {
				return fmt.Errorf("failed to save streak: %w", err)
			}
		}

		fmt.Println()
		renderDayProgress(day)
		fmt.Printf("  Streak     %s\n",
			valueStyle.Render(fmt.Sprintf("%d days (best %d)", streak.Current, streak.Longest)))
		if day.GoalMet() {
			fmt.Println(accentStyle.Render("  Goal met! 🏆"))
		}

		err = app.notifier.DayComplete(
			day.ActualPomodoros, day.PlannedPomodoros,
			day.CompletedTasks(), len(day.Tasks))
		if err != nil {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Notification failed: %v", err)))
		}
		return nil
	},
}
