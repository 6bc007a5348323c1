package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"workday/internal/domain"
)

// taskCmd groups the task subcommands.
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage today's tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task to today's plan",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		ctx := context.Background()

		day, err := requireToday(ctx)
		if err != nil {
			return err
		}

		task := domain.NewTask(day.ID, strings.Join(args, " "))
		if err := app.storage.Tasks().Create(ctx, task); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}

		fmt.Printf("Added task %d: %s\n", task.Position, task.Description)
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		ctx := context.Background()

		day, err := requireToday(ctx)
		if err != nil {
			return err
		}

		number, err := strconv.Atoi(args[0])
		if err != nil || number < 1 {
			return domain.ErrInvalidTask
		}

		tasks, err := app.storage.Tasks().FindByDay(ctx, day.ID)
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		if number > len(tasks) {
			return fmt.Errorf("%w: today has %d tasks", domain.ErrInvalidTask, len(tasks))
		}

		task := tasks[number-1]
		if task.Completed {
			fmt.Printf("Task %d is already done.\n", number)
			return nil
		}
		if err := app.storage.Tasks().Complete(ctx, task.ID); err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		fmt.Printf("✓ Task %d done: %s\n", number, task.Description)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSetup(); err != nil {
			return err
		}
		ctx := context.Background()

		day, err := requireToday(ctx)
		if err != nil {
			return err
		}

		tasks, err := app.storage.Tasks().FindByDay(ctx, day.ID)
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		if len(tasks) == 0 {
			fmt.Println(dimStyle.Render("No tasks yet. Add one with \"workday task add\"."))
			return nil
		}

		renderTaskList(tasks)
		return nil
	},
}

// requireToday loads today's day record, failing when the workday has
// not been started.
func requireToday(ctx context.Context) (*domain.Day, error) {
	day, err := currentDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load today: %w", err)
	}
	if day == nil {
		return nil, fmt.Errorf("no workday started today: run \"workday start\" first")
	}
	return day, nil
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskListCmd)
}
