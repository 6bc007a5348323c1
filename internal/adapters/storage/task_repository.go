package storage

import (
	"context"
	"database/sql"
	"fmt"

	"workday/internal/domain"
	"workday/internal/ports"
)

// taskRepository implements ports.TaskRepository using SQLite.
type taskRepository struct {
	db *sql.DB
}

// newTaskRepository creates a new task repository.
func newTaskRepository(db *sql.DB) ports.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a task, assigning its ID and the next position within
// its day.
func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	var position int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), 0) + 1 FROM tasks WHERE day_id = ?",
		task.DayID,
	).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to assign task position: %w", err)
	}
	task.Position = position

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (day_id, description, completed, position, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		task.DayID,
		task.Description,
		task.Completed,
		task.Position,
		task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	task.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read task id: %w", err)
	}

	return nil
}

// FindByID retrieves a task by ID, or nil if absent.
func (r *taskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, day_id, description, completed, position, created_at
		FROM tasks WHERE id = ?`, id)

	var task domain.Task
	err := row.Scan(&task.ID, &task.DayID, &task.Description, &task.Completed,
		&task.Position, &task.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}

	return &task, nil
}

// FindByDay returns a day's tasks ordered by position.
func (r *taskRepository) FindByDay(ctx context.Context, dayID int64) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day_id, description, completed, position, created_at
		FROM tasks WHERE day_id = ? ORDER BY position`, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		var task domain.Task
		err := rows.Scan(&task.ID, &task.DayID, &task.Description, &task.Completed,
			&task.Position, &task.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &task)
	}

	return tasks, rows.Err()
}

// Complete marks a task as done.
func (r *taskRepository) Complete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "UPDATE tasks SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}
