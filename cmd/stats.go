package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show all-time statistics",
	Long:  `Display lifetime pomodoro counts, the day streak, and the last week of days.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		ctx := context.Background()

		total, err := app.storage.Pomodoros().TotalCompleted(ctx)
		if err != nil {
			return fmt.Errorf("failed to get totals: %w", err)
		}
		activeDays, err := app.storage.Pomodoros().TotalActiveDays(ctx)
		if err != nil {
			return fmt.Errorf("failed to get totals: %w", err)
		}
		streak, err := app.storage.Streaks().Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load streak: %w", err)
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("📊 All-time stats"))
		fmt.Printf("  Pomodoros    %s\n", valueStyle.Render(fmt.Sprintf("%d", total)))
		fmt.Printf("  Active days  %s\n", valueStyle.Render(fmt.Sprintf("%d", activeDays)))
		if activeDays > 0 {
			fmt.Printf("  Per day      %s\n",
				valueStyle.Render(fmt.Sprintf("%.1f", float64(total)/float64(activeDays))))
		}
		fmt.Printf("  Streak       %s\n",
			valueStyle.Render(fmt.Sprintf("%d days (best %d)", streak.Current, streak.Longest)))

		days, err := app.storage.Days().FindRecent(ctx, 7)
		if err != nil {
			return fmt.Errorf("failed to load recent days: %w", err)
		}
		if len(days) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("Last days"))
		for _, day := range days {
			mark := " "
			if day.GoalMet() {
				mark = accentStyle.Render("✓")
			}
			fmt.Printf("  %s %s %s %s\n",
				mark,
				day.Date,
				progressBar(day.ActualPomodoros, day.PlannedPomodoros, 12),
				dimStyle.Render(fmt.Sprintf("%d/%d", day.ActualPomodoros, day.PlannedPomodoros)))
		}
		return nil
	},
}
