// Package notification provides the outbound notifiers: a Telegram
// sender and a desktop toast sender. Both are best-effort; callers log
// failures and continue.
package notification

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"workday/internal/config"
	"workday/internal/domain"
	"workday/internal/ports"
)

// Telegram sends timer and day notifications to a Telegram chat.
type Telegram struct {
	cfg config.TelegramConfig
	bot *tgbotapi.BotAPI
}

// Ensure Telegram implements ports.Notifier.
var _ ports.Notifier = (*Telegram)(nil)

// NewTelegram creates a Telegram notifier from the given configuration.
func NewTelegram(cfg config.TelegramConfig) *Telegram {
	return &Telegram{cfg: cfg}
}

// Enabled reports whether the notifier is configured and switched on.
func (t *Telegram) Enabled() bool {
	return t.cfg.Enabled && t.cfg.BotToken != "" && t.cfg.ChatID != ""
}

// send delivers one message with HTML formatting. The bot client is
// created lazily so that CLI commands which never notify skip the
// authorization round trip.
func (t *Telegram) send(text string) error {
	if !t.Enabled() {
		return nil
	}

	chatID, err := strconv.ParseInt(t.cfg.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", t.cfg.ChatID, err)
	}

	if t.bot == nil {
		bot, err := tgbotapi.NewBotAPI(t.cfg.BotToken)
		if err != nil {
			return fmt.Errorf("failed to create bot api: %w", err)
		}
		t.bot = bot
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// FocusStart announces a new focus session.
func (t *Telegram) FocusStart(cycle int, taskName string) error {
	taskText := ""
	if taskName != "" {
		taskText = fmt.Sprintf("\nTask: %s", taskName)
	}
	return t.send(fmt.Sprintf(
		"🍅 <b>Focus Time</b>\n\nPomodoro #%d started.%s", cycle, taskText))
}

// FocusComplete announces a finished focus session.
func (t *Telegram) FocusComplete(cycle int) error {
	return t.send(fmt.Sprintf(
		"✅ <b>Pomodoro #%d Complete!</b>\n\nGreat work! Time for a break.", cycle))
}

// BreakStart announces a break of the given kind and length.
func (t *Telegram) BreakStart(kind domain.BreakKind, minutes int) error {
	var title, suggestion string
	switch kind {
	case domain.BreakEmail:
		title = "📧 <b>Email Break</b>"
		suggestion = "Check your inbox, respond to messages."
	case domain.BreakLong:
		title = "☕ <b>Long Break</b>"
		suggestion = "Stretch, grab a coffee, take a walk."
	default:
		title = "🧘 <b>Rest Break</b>"
		suggestion = "Step away from the screen. Stretch. Breathe."
	}
	return t.send(fmt.Sprintf("%s\n\n%d minutes.\n%s", title, minutes, suggestion))
}

// BreakEnd announces the end of a break.
func (t *Telegram) BreakEnd() error {
	return t.send("⏰ <b>Break Over</b>\n\nReady for the next pomodoro?")
}

// DayStart announces the day plan.
func (t *Telegram) DayStart(planned int, tasks []string) error {
	taskList := "No tasks set"
	if len(tasks) > 0 {
		var b strings.Builder
		for i, task := range tasks {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("• " + task)
		}
		taskList = b.String()
	}
	return t.send(fmt.Sprintf(
		"🌅 <b>Workday Started</b>\n\nPlan: %d pomodoros\n\n<b>Tasks:</b>\n%s",
		planned, taskList))
}

// DayComplete announces the end-of-day summary.
func (t *Telegram) DayComplete(completed, planned, tasksDone, tasksTotal int) error {
	goalMet := planned > 0 && completed >= planned
	emoji := "📊"
	if goalMet {
		emoji = "🎉"
	}

	msg := fmt.Sprintf("%s <b>Day Complete</b>\n\nPomodoros: %d/%d\nTasks: %d/%d\n",
		emoji, completed, planned, tasksDone, tasksTotal)
	if goalMet {
		msg += "\nGoal achieved! Great work! 🏆"
	} else if completed > 0 {
		msg += fmt.Sprintf("\n%d short of goal.", planned-completed)
	}
	return t.send(msg)
}

// TimerPaused announces a pause.
func (t *Telegram) TimerPaused() error {
	return t.send("⏸️ <b>Timer Paused</b>\n\nResume when ready.")
}

// TimerResumed announces a resume.
func (t *Telegram) TimerResumed(remaining string) error {
	return t.send(fmt.Sprintf("▶️ <b>Timer Resumed</b>\n\n%s remaining.", remaining))
}

// TestConnection verifies the bot token and sends a test message.
// Used by setup; returns the bot username on success.
func (t *Telegram) TestConnection() (string, error) {
	if t.cfg.BotToken == "" {
		return "", fmt.Errorf("bot token not configured")
	}
	if t.cfg.ChatID == "" {
		return "", fmt.Errorf("chat ID not configured")
	}

	bot, err := tgbotapi.NewBotAPI(t.cfg.BotToken)
	if err != nil {
		return "", fmt.Errorf("connection failed: %w", err)
	}
	t.bot = bot

	chatID, err := strconv.ParseInt(t.cfg.ChatID, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid chat id %q: %w", t.cfg.ChatID, err)
	}

	msg := tgbotapi.NewMessage(chatID, "🔔 <b>Workday</b>\n\nConnection test successful!")
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := bot.Send(msg); err != nil {
		return "", fmt.Errorf("connection failed: %w", err)
	}

	return bot.Self.UserName, nil
}
