package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyDays int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past workdays",
	Long:  `List past workdays with their pomodoro counts, tasks, satisfaction, and notes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		ctx := context.Background()

		days, err := app.storage.Days().FindRecent(ctx, historyDays)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(days) == 0 {
			fmt.Println(dimStyle.Render("No workdays recorded yet."))
			return nil
		}

		for _, day := range days {
			full, err := app.storage.Days().FindByID(ctx, day.ID)
			if err != nil {
				return fmt.Errorf("failed to load day %s: %w", day.Date, err)
			}

			fmt.Println()
			fmt.Println(titleStyle.Render(full.Date))
			fmt.Printf("  Pomodoros  %s  Breaks %s\n",
				valueStyle.Render(fmt.Sprintf("%d/%d", full.ActualPomodoros, full.PlannedPomodoros)),
				dimStyle.Render(fmt.Sprintf("%d email, %d rest", full.EmailBreaks, full.RestBreaks)))
			if len(full.Tasks) > 0 {
				fmt.Printf("  Tasks      %s\n",
					valueStyle.Render(fmt.Sprintf("%d/%d", full.CompletedTasks(), len(full.Tasks))))
			}
			if full.Satisfaction != nil {
				fmt.Printf("  Rating     %s\n", valueStyle.Render(fmt.Sprintf("%d/4", *full.Satisfaction)))
			}
			if full.Notes != "" {
				fmt.Printf("  Notes      %s\n", dimStyle.Render(full.Notes))
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyDays, "days", "n", 14, "Number of days to show")
}
