package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"workday/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// phaseLabel renders a human label for the timer phase.
func phaseLabel(state *domain.TimerState) string {
	switch state.Phase {
	case domain.PhaseFocus:
		return fmt.Sprintf("🍅 Focus (pomodoro #%d)", state.CurrentPomodoro)
	case domain.PhaseBreak:
		if state.BreakKind != nil {
			return breakLabel(*state.BreakKind)
		}
		return "Break"
	case domain.PhasePaused:
		if state.BreakKind != nil {
			return fmt.Sprintf("⏸  Paused (%s)", strings.ToLower(breakLabel(*state.BreakKind)))
		}
		return fmt.Sprintf("⏸  Paused (pomodoro #%d)", state.CurrentPomodoro)
	default:
		return string(state.Phase)
	}
}

// breakLabel renders a human label for a break kind.
func breakLabel(kind domain.BreakKind) string {
	switch kind {
	case domain.BreakEmail:
		return "📧 Email break"
	case domain.BreakLong:
		return "☕ Long break"
	default:
		return "🧘 Rest break"
	}
}

// progressBar renders a fixed-width done/total bar.
func progressBar(done, total, width int) string {
	if total <= 0 {
		return dimStyle.Render(strings.Repeat("░", width))
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return accentStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

// renderDayProgress prints the day's counters and task list.
func renderDayProgress(day *domain.Day) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Workday %s", day.Date)))
	fmt.Printf("  Pomodoros  %s %s\n",
		progressBar(day.ActualPomodoros, day.PlannedPomodoros, 20),
		valueStyle.Render(fmt.Sprintf("%d/%d", day.ActualPomodoros, day.PlannedPomodoros)))
	fmt.Printf("  Breaks     %s\n",
		dimStyle.Render(fmt.Sprintf("%d email, %d rest", day.EmailBreaks, day.RestBreaks)))
	if len(day.Tasks) > 0 {
		fmt.Println("  Tasks")
		renderTaskList(day.Tasks)
	}
}

// renderTaskList prints tasks with their 1-based numbers.
func renderTaskList(tasks []*domain.Task) {
	for _, t := range tasks {
		mark := dimStyle.Render("[ ]")
		desc := t.Description
		if t.Completed {
			mark = accentStyle.Render("[✓]")
			desc = dimStyle.Render(desc)
		}
		fmt.Printf("    %s %d. %s\n", mark, t.Position, desc)
	}
}
