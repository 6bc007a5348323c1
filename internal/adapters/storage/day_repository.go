package storage

import (
	"context"
	"database/sql"
	"fmt"

	"workday/internal/domain"
	"workday/internal/ports"
)

// dayRepository implements ports.DayRepository using SQLite.
type dayRepository struct {
	db        *sql.DB
	tasks     ports.TaskRepository
	pomodoros ports.PomodoroRepository
}

// newDayRepository creates a new day repository.
func newDayRepository(db *sql.DB, tasks ports.TaskRepository, pomodoros ports.PomodoroRepository) ports.DayRepository {
	return &dayRepository{db: db, tasks: tasks, pomodoros: pomodoros}
}

const dayColumns = `id, date, planned_pomodoros, actual_pomodoros, email_breaks,
	rest_breaks, satisfaction, notes, created_at, started_at, ended_at`

// Create persists a new day record and assigns its ID.
func (r *dayRepository) Create(ctx context.Context, day *domain.Day) error {
	query := `
		INSERT INTO days (date, planned_pomodoros, actual_pomodoros, email_breaks,
			rest_breaks, satisfaction, notes, created_at, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		day.Date,
		day.PlannedPomodoros,
		day.ActualPomodoros,
		day.EmailBreaks,
		day.RestBreaks,
		day.Satisfaction,
		day.Notes,
		day.CreatedAt,
		day.StartedAt,
		day.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create day: %w", err)
	}

	day.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read day id: %w", err)
	}

	return nil
}

// FindByID retrieves a day with its tasks and pomodoros loaded.
func (r *dayRepository) FindByID(ctx context.Context, id int64) (*domain.Day, error) {
	query := fmt.Sprintf("SELECT %s FROM days WHERE id = ?", dayColumns)
	day, err := r.scanDay(r.db.QueryRowContext(ctx, query, id))
	if err != nil || day == nil {
		return day, err
	}
	return day, r.loadChildren(ctx, day)
}

// FindByDate retrieves a day by calendar date, or nil if absent.
func (r *dayRepository) FindByDate(ctx context.Context, date string) (*domain.Day, error) {
	query := fmt.Sprintf("SELECT %s FROM days WHERE date = ?", dayColumns)
	day, err := r.scanDay(r.db.QueryRowContext(ctx, query, date))
	if err != nil || day == nil {
		return day, err
	}
	return day, r.loadChildren(ctx, day)
}

// GetOrCreate returns the day for the given date, creating it if needed.
func (r *dayRepository) GetOrCreate(ctx context.Context, date string) (*domain.Day, error) {
	day, err := r.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if day != nil {
		return day, nil
	}

	day = domain.NewDay(date)
	if err := r.Create(ctx, day); err != nil {
		// A concurrent creator may have won the race on the unique date.
		if isUniqueConstraintError(err) {
			return r.FindByDate(ctx, date)
		}
		return nil, err
	}
	return day, nil
}

// Update persists the mutable day fields.
func (r *dayRepository) Update(ctx context.Context, day *domain.Day) error {
	query := `
		UPDATE days
		SET planned_pomodoros = ?, actual_pomodoros = ?, email_breaks = ?,
		    rest_breaks = ?, satisfaction = ?, notes = ?, started_at = ?, ended_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		day.PlannedPomodoros,
		day.ActualPomodoros,
		day.EmailBreaks,
		day.RestBreaks,
		day.Satisfaction,
		day.Notes,
		day.StartedAt,
		day.EndedAt,
		day.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update day: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrDayNotFound
	}

	return nil
}

// IncrementActualPomodoros bumps the day's completed-session counter.
func (r *dayRepository) IncrementActualPomodoros(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE days SET actual_pomodoros = actual_pomodoros + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to increment pomodoro count: %w", err)
	}
	return nil
}

// IncrementBreakCounter bumps the day's counter for the given break kind.
func (r *dayRepository) IncrementBreakCounter(ctx context.Context, id int64, kind domain.BreakKind) error {
	var column string
	switch kind {
	case domain.BreakEmail:
		column = "email_breaks"
	case domain.BreakRest:
		column = "rest_breaks"
	default:
		return nil
	}

	query := fmt.Sprintf("UPDATE days SET %s = %s + 1 WHERE id = ?", column, column)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment break counter: %w", err)
	}
	return nil
}

// FindRecent returns up to limit days, most recent first.
func (r *dayRepository) FindRecent(ctx context.Context, limit int) ([]*domain.Day, error) {
	query := fmt.Sprintf("SELECT %s FROM days ORDER BY date DESC LIMIT ?", dayColumns)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []*domain.Day
	for rows.Next() {
		day, err := scanDayRow(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, day := range days {
		if err := r.loadChildren(ctx, day); err != nil {
			return nil, err
		}
	}

	return days, nil
}

// loadChildren attaches the day's tasks and pomodoros.
func (r *dayRepository) loadChildren(ctx context.Context, day *domain.Day) error {
	tasks, err := r.tasks.FindByDay(ctx, day.ID)
	if err != nil {
		return err
	}
	day.Tasks = tasks

	pomodoros, err := r.pomodoros.FindByDay(ctx, day.ID)
	if err != nil {
		return err
	}
	day.Pomodoros = pomodoros

	return nil
}

// scanDay scans a single day row.
func (r *dayRepository) scanDay(row *sql.Row) (*domain.Day, error) {
	var day domain.Day
	var satisfaction sql.NullInt64
	var startedAt, endedAt sql.NullTime

	err := row.Scan(
		&day.ID,
		&day.Date,
		&day.PlannedPomodoros,
		&day.ActualPomodoros,
		&day.EmailBreaks,
		&day.RestBreaks,
		&satisfaction,
		&day.Notes,
		&day.CreatedAt,
		&startedAt,
		&endedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan day: %w", err)
	}

	applyDayNullables(&day, satisfaction, startedAt, endedAt)
	return &day, nil
}

// scanDayRow scans a day from a multi-row result.
func scanDayRow(rows *sql.Rows) (*domain.Day, error) {
	var day domain.Day
	var satisfaction sql.NullInt64
	var startedAt, endedAt sql.NullTime

	err := rows.Scan(
		&day.ID,
		&day.Date,
		&day.PlannedPomodoros,
		&day.ActualPomodoros,
		&day.EmailBreaks,
		&day.RestBreaks,
		&satisfaction,
		&day.Notes,
		&day.CreatedAt,
		&startedAt,
		&endedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan day: %w", err)
	}

	applyDayNullables(&day, satisfaction, startedAt, endedAt)
	return &day, nil
}

func applyDayNullables(day *domain.Day, satisfaction sql.NullInt64, startedAt, endedAt sql.NullTime) {
	if satisfaction.Valid {
		rating := int(satisfaction.Int64)
		day.Satisfaction = &rating
	}
	if startedAt.Valid {
		day.StartedAt = &startedAt.Time
	}
	if endedAt.Valid {
		day.EndedAt = &endedAt.Time
	}
}
