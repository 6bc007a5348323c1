package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"workday/internal/domain"
	"workday/internal/ports"
)

// pomodoroRepository implements ports.PomodoroRepository using SQLite.
type pomodoroRepository struct {
	db *sql.DB
}

// newPomodoroRepository creates a new pomodoro repository.
func newPomodoroRepository(db *sql.DB) ports.PomodoroRepository {
	return &pomodoroRepository{db: db}
}

// Create persists an open pomodoro record and assigns its ID.
func (r *pomodoroRepository) Create(ctx context.Context, p *domain.Pomodoro) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO pomodoros (day_id, task_id, started_at, completed_at, duration_minutes)
		VALUES (?, ?, ?, ?, ?)`,
		p.DayID,
		p.TaskID,
		p.StartedAt,
		p.CompletedAt,
		p.DurationMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to create pomodoro: %w", err)
	}

	p.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read pomodoro id: %w", err)
	}

	return nil
}

// Complete stamps the record's completion time.
func (r *pomodoroRepository) Complete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE pomodoros SET completed_at = ? WHERE id = ?", time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to complete pomodoro: %w", err)
	}
	return nil
}

// FindByDay returns a day's pomodoros ordered by start time.
func (r *pomodoroRepository) FindByDay(ctx context.Context, dayID int64) ([]*domain.Pomodoro, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day_id, task_id, started_at, completed_at, duration_minutes
		FROM pomodoros WHERE day_id = ? ORDER BY started_at`, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pomodoros: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pomodoros []*domain.Pomodoro
	for rows.Next() {
		var p domain.Pomodoro
		var taskID sql.NullInt64
		var completedAt sql.NullTime

		err := rows.Scan(&p.ID, &p.DayID, &taskID, &p.StartedAt, &completedAt, &p.DurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pomodoro: %w", err)
		}

		if taskID.Valid {
			p.TaskID = &taskID.Int64
		}
		if completedAt.Valid {
			p.CompletedAt = &completedAt.Time
		}

		pomodoros = append(pomodoros, &p)
	}

	return pomodoros, rows.Err()
}

// CountCompleted returns the number of completed pomodoros for a day.
func (r *pomodoroRepository) CountCompleted(ctx context.Context, dayID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pomodoros WHERE day_id = ? AND completed_at IS NOT NULL",
		dayID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pomodoros: %w", err)
	}
	return count, nil
}

// TotalCompleted returns the all-time completed pomodoro count.
func (r *pomodoroRepository) TotalCompleted(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pomodoros WHERE completed_at IS NOT NULL",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pomodoros: %w", err)
	}
	return count, nil
}

// TotalActiveDays returns the number of distinct days with at least one
// completed pomodoro.
func (r *pomodoroRepository) TotalActiveDays(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT day_id) FROM pomodoros WHERE completed_at IS NOT NULL",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active days: %w", err)
	}
	return count, nil
}
