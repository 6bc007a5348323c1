package notification

import (
	"errors"

	"workday/internal/domain"
	"workday/internal/ports"
)

// Multi fans every notification out to all wrapped notifiers. Errors are
// joined so the caller can log them in one line.
type Multi struct {
	notifiers []ports.Notifier
}

// Ensure Multi implements ports.Notifier.
var _ ports.Notifier = (*Multi)(nil)

// NewMulti creates a fan-out notifier.
func NewMulti(notifiers ...ports.Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) each(fn func(n ports.Notifier) error) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := fn(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) FocusStart(cycle int, taskName string) error {
	return m.each(func(n ports.Notifier) error { return n.FocusStart(cycle, taskName) })
}

func (m *Multi) FocusComplete(cycle int) error {
	return m.each(func(n ports.Notifier) error { return n.FocusComplete(cycle) })
}

func (m *Multi) BreakStart(kind domain.BreakKind, minutes int) error {
	return m.each(func(n ports.Notifier) error { return n.BreakStart(kind, minutes) })
}

func (m *Multi) BreakEnd() error {
	return m.each(func(n ports.Notifier) error { return n.BreakEnd() })
}

func (m *Multi) DayStart(planned int, tasks []string) error {
	return m.each(func(n ports.Notifier) error { return n.DayStart(planned, tasks) })
}

func (m *Multi) DayComplete(completed, planned, tasksDone, tasksTotal int) error {
	return m.each(func(n ports.Notifier) error {
		return n.DayComplete(completed, planned, tasksDone, tasksTotal)
	})
}

func (m *Multi) TimerPaused() error {
	return m.each(func(n ports.Notifier) error { return n.TimerPaused() })
}

func (m *Multi) TimerResumed(remaining string) error {
	return m.each(func(n ports.Notifier) error { return n.TimerResumed(remaining) })
}
