// Package ports defines the interfaces between the workday core and its
// infrastructure: the record store and the notifier. These are driven
// ports, implemented by the adapters packages.
package ports

import (
	"context"

	"workday/internal/domain"
)

// DayRepository defines the interface for day-plan persistence.
type DayRepository interface {
	// Create persists a new day record and assigns its ID.
	Create(ctx context.Context, day *domain.Day) error

	// FindByID retrieves a day with its tasks and pomodoros loaded.
	FindByID(ctx context.Context, id int64) (*domain.Day, error)

	// FindByDate retrieves a day by calendar date, or nil if absent.
	FindByDate(ctx context.Context, date string) (*domain.Day, error)

	// GetOrCreate returns the day for the given date, creating it if
	// needed. Idempotent: the date column carries a unique constraint.
	GetOrCreate(ctx context.Context, date string) (*domain.Day, error)

	// Update persists the mutable day fields.
	Update(ctx context.Context, day *domain.Day) error

	// IncrementActualPomodoros bumps the day's completed-session counter.
	IncrementActualPomodoros(ctx context.Context, id int64) error

	// IncrementBreakCounter bumps the day's counter for the given break
	// kind. Long breaks are not counted per day.
	IncrementBreakCounter(ctx context.Context, id int64, kind domain.BreakKind) error

	// FindRecent returns up to limit days, most recent first.
	FindRecent(ctx context.Context, limit int) ([]*domain.Day, error)
}

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	// Create persists a task, assigning its ID and the next 1-based
	// position within its day.
	Create(ctx context.Context, task *domain.Task) error

	// FindByID retrieves a task by ID, or nil if absent.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// FindByDay returns a day's tasks ordered by position.
	FindByDay(ctx context.Context, dayID int64) ([]*domain.Task, error)

	// Complete marks a task as done.
	Complete(ctx context.Context, id int64) error
}

// PomodoroRepository defines the interface for focus-session records.
type PomodoroRepository interface {
	// Create persists an open pomodoro record and assigns its ID.
	Create(ctx context.Context, p *domain.Pomodoro) error

	// Complete stamps the record's completion time.
	Complete(ctx context.Context, id int64) error

	// FindByDay returns a day's pomodoros ordered by start time.
	FindByDay(ctx context.Context, dayID int64) ([]*domain.Pomodoro, error)

	// CountCompleted returns the number of completed pomodoros for a day.
	CountCompleted(ctx context.Context, dayID int64) (int, error)

	// TotalCompleted returns the all-time completed pomodoro count.
	TotalCompleted(ctx context.Context) (int, error)

	// TotalActiveDays returns the number of distinct days with at least
	// one completed pomodoro.
	TotalActiveDays(ctx context.Context) (int, error)
}

// StreakRepository defines the interface for the singleton streak record.
type StreakRepository interface {
	// Get returns the streak record, initialized to zeros on first use.
	Get(ctx context.Context) (*domain.Streak, error)

	// Update persists the streak record.
	Update(ctx context.Context, streak *domain.Streak) error
}

// Storage is the combined repository interface.
type Storage interface {
	// Days provides access to day operations.
	Days() DayRepository

	// Tasks provides access to task operations.
	Tasks() TaskRepository

	// Pomodoros provides access to pomodoro operations.
	Pomodoros() PomodoroRepository

	// Streaks provides access to streak operations.
	Streaks() StreakRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
