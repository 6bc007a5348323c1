package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"workday/internal/timer"
)

var (
	daemonDay   int64
	daemonTask  int64
	daemonCycle int
)

// timerDaemonCmd is the detached process behind "workday timer". It is
// spawned by the control client, never by hand, and logs to the daemon
// log file instead of the terminal.
var timerDaemonCmd = &cobra.Command{
	Use:    "timer-daemon",
	Hidden: true,
	Short:  "Run the timer daemon (internal)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, err := os.OpenFile(app.paths.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = logFile.Close() }()
		logger := log.New(logFile, "", log.LstdFlags)

		opts := timer.StartOptions{
			DayID:            daemonDay,
			StartingPomodoro: daemonCycle,
		}
		if daemonTask > 0 {
			opts.TaskID = &daemonTask
		}

		d := timer.NewDaemon(app.paths, app.config.Timer, app.storage, app.notifier, logger)
		return d.Run(context.Background(), opts)
	},
}

func init() {
	timerDaemonCmd.Flags().Int64Var(&daemonDay, "day", 0, "Day record ID")
	timerDaemonCmd.Flags().Int64Var(&daemonTask, "task", 0, "Task record ID")
	timerDaemonCmd.Flags().IntVar(&daemonCycle, "cycle", 1, "Starting pomodoro number")
}
