package domain

import "time"

// Pomodoro is one focus session record. It is created when a focus phase
// begins and marked complete when the phase ends, whether it ran out or
// was skipped. A record whose CompletedAt is nil was interrupted (stop or
// daemon crash) and is excluded from completed aggregates.
type Pomodoro struct {
	ID              int64
	DayID           int64
	TaskID          *int64
	StartedAt       time.Time
	CompletedAt     *time.Time
	DurationMinutes int
}

// NewPomodoro creates an open pomodoro record for the given day.
func NewPomodoro(dayID int64, taskID *int64, durationMinutes int) *Pomodoro {
	return &Pomodoro{
		DayID:           dayID,
		TaskID:          taskID,
		StartedAt:       time.Now(),
		DurationMinutes: durationMinutes,
	}
}

// Done reports whether the session ran to completion.
func (p *Pomodoro) Done() bool {
	return p.CompletedAt != nil
}
