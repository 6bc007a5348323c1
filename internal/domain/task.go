package domain

import "time"

// Task is a single item on a day's plan. Position is 1-based, assigned
// at creation time, and never changes afterwards.
type Task struct {
	ID          int64
	DayID       int64
	Description string
	Completed   bool
	Position    int
	CreatedAt   time.Time
}

// NewTask creates a task for the given day. The repository assigns the
// position when the task is saved.
func NewTask(dayID int64, description string) *Task {
	return &Task{
		DayID:       dayID,
		Description: description,
		CreatedAt:   time.Now(),
	}
}
