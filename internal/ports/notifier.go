package ports

import "workday/internal/domain"

// Notifier pushes best-effort messages at timer and day boundaries.
// Every method makes at most one delivery attempt; callers log failures
// and continue, they never treat them as fatal.
type Notifier interface {
	// FocusStart announces a new focus session. taskName may be empty.
	FocusStart(cycle int, taskName string) error

	// FocusComplete announces a finished focus session.
	FocusComplete(cycle int) error

	// BreakStart announces a break of the given kind and length.
	BreakStart(kind domain.BreakKind, minutes int) error

	// BreakEnd announces the end of a break.
	BreakEnd() error

	// DayStart announces the day plan.
	DayStart(planned int, tasks []string) error

	// DayComplete announces the end-of-day summary.
	DayComplete(completed, planned, tasksDone, tasksTotal int) error

	// TimerPaused announces a pause.
	TimerPaused() error

	// TimerResumed announces a resume with the remaining time display.
	TimerResumed(remaining string) error
}
