package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"workday/internal/domain"
	"workday/internal/ports"
)

// Desktop shows local toast notifications alongside the Telegram sender.
type Desktop struct {
	enabled bool
}

// Ensure Desktop implements ports.Notifier.
var _ ports.Notifier = (*Desktop)(nil)

// NewDesktop creates a desktop notifier.
func NewDesktop(enabled bool) *Desktop {
	return &Desktop{enabled: enabled}
}

// notify displays a desktop notification if enabled.
func (d *Desktop) notify(title, message string) error {
	if !d.enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// FocusStart announces a new focus session.
func (d *Desktop) FocusStart(cycle int, taskName string) error {
	message := fmt.Sprintf("Pomodoro #%d started.", cycle)
	if taskName != "" {
		message = fmt.Sprintf("Pomodoro #%d: %s", cycle, taskName)
	}
	return d.notify("🍅 Focus Time", message)
}

// FocusComplete announces a finished focus session.
func (d *Desktop) FocusComplete(cycle int) error {
	return d.notify("✅ Pomodoro Complete",
		fmt.Sprintf("Pomodoro #%d done. Time for a break.", cycle))
}

// BreakStart announces a break.
func (d *Desktop) BreakStart(kind domain.BreakKind, minutes int) error {
	var title string
	switch kind {
	case domain.BreakEmail:
		title = "📧 Email Break"
	case domain.BreakLong:
		title = "☕ Long Break"
	default:
		title = "🧘 Rest Break"
	}
	return d.notify(title, fmt.Sprintf("%d minutes.", minutes))
}

// BreakEnd announces the end of a break.
func (d *Desktop) BreakEnd() error {
	return d.notify("⏰ Break Over", "Ready for the next pomodoro?")
}

// DayStart announces the day plan.
func (d *Desktop) DayStart(planned int, tasks []string) error {
	return d.notify("🌅 Workday Started",
		fmt.Sprintf("Plan: %d pomodoros, %d tasks.", planned, len(tasks)))
}

// DayComplete announces the end-of-day summary.
func (d *Desktop) DayComplete(completed, planned, tasksDone, tasksTotal int) error {
	return d.notify("Day Complete",
		fmt.Sprintf("Pomodoros: %d/%d, tasks: %d/%d.", completed, planned, tasksDone, tasksTotal))
}

// TimerPaused announces a pause.
func (d *Desktop) TimerPaused() error {
	return d.notify("⏸ Timer Paused", "Resume when ready.")
}

// TimerResumed announces a resume.
func (d *Desktop) TimerResumed(remaining string) error {
	return d.notify("▶ Timer Resumed", fmt.Sprintf("%s remaining.", remaining))
}
