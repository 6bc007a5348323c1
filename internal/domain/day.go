package domain

import "time"

// DateFormat is the calendar-date key used for Day and Streak records.
const DateFormat = "2006-01-02"

// Day is a single workday record: the plan, the counters the daemon
// increments as pomodoros complete, and the end-of-day review.
type Day struct {
	ID               int64
	Date             string // YYYY-MM-DD, unique
	PlannedPomodoros int
	ActualPomodoros  int
	EmailBreaks      int
	RestBreaks       int
	Satisfaction     *int // 1-4 rating, set by the end-of-day review
	Notes            string
	CreatedAt        time.Time
	StartedAt        *time.Time
	EndedAt          *time.Time
	Tasks            []*Task
	Pomodoros        []*Pomodoro
}

// NewDay creates a day record for the given calendar date.
func NewDay(date string) *Day {
	return &Day{
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// CompletedTasks returns how many of the day's tasks are done.
func (d *Day) CompletedTasks() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// GoalMet reports whether the actual pomodoro count reached the plan.
func (d *Day) GoalMet() bool {
	return d.PlannedPomodoros > 0 && d.ActualPomodoros >= d.PlannedPomodoros
}
