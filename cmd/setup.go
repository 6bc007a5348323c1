package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"workday/internal/adapters/notification"
	"workday/internal/config"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure workday",
	Long: `Interactive first-time setup: timer durations and an optional Telegram
bot for notifications. Run it again at any time to change settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(titleStyle.Render("⚙️  Workday setup"))
		fmt.Println()

		cfg := app.config

		fmt.Println("Timer durations (minutes):")
		cfg.Timer.FocusMinutes = promptInt("  Focus session", cfg.Timer.FocusMinutes, 1, 120)
		cfg.Timer.ShortBreakMinutes = promptInt("  Short break", cfg.Timer.ShortBreakMinutes, 1, 60)
		cfg.Timer.LongBreakMinutes = promptInt("  Long break", cfg.Timer.LongBreakMinutes, 1, 120)
		cfg.Timer.LongBreakAfter = promptInt("  Long break after how many pomodoros", cfg.Timer.LongBreakAfter, 1, 12)
		fmt.Println()

		if promptYesNo("Enable Telegram notifications?", cfg.Telegram.Enabled) {
			fmt.Println(dimStyle.Render("  Create a bot with @BotFather and send it a message first."))
			cfg.Telegram.BotToken = promptString("  Bot token", cfg.Telegram.BotToken)
			cfg.Telegram.ChatID = promptString("  Chat ID", cfg.Telegram.ChatID)
			cfg.Telegram.Enabled = true

			tg := notification.NewTelegram(cfg.Telegram)
			username, err := tg.TestConnection()
			if err != nil {
				fmt.Println(warnStyle.Render(fmt.Sprintf("  Telegram test failed: %v", err)))
				if !promptYesNo("  Keep Telegram enabled anyway?", false) {
					cfg.Telegram.Enabled = false
				}
			} else {
				fmt.Println(accentStyle.Render(fmt.Sprintf("  Connected as @%s, test message sent.", username)))
			}
		} else {
			cfg.Telegram.Enabled = false
		}

		if err := config.Save(app.paths, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Println()
		fmt.Println(accentStyle.Render("Setup complete."))
		fmt.Println(dimStyle.Render("Plan your day with \"workday start\", then run \"workday timer\"."))
		return nil
	},
}
