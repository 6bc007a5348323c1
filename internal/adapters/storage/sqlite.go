// Package storage provides SQLite implementations of the storage ports.
package storage

import (
	"database/sql"
	"fmt"

	"modernc.org/sqlite"
	"workday/internal/ports"
)

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db           *sql.DB
	dayRepo      ports.DayRepository
	taskRepo     ports.TaskRepository
	pomodoroRepo ports.PomodoroRepository
	streakRepo   ports.StreakRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New creates a new SQLite storage instance.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	taskRepo := newTaskRepository(db)
	pomodoroRepo := newPomodoroRepository(db)

	storage := &sqliteStorage{
		db:           db,
		dayRepo:      newDayRepository(db, taskRepo, pomodoroRepo),
		taskRepo:     taskRepo,
		pomodoroRepo: pomodoroRepo,
		streakRepo:   newStreakRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates a new in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// Days returns the day repository.
func (s *sqliteStorage) Days() ports.DayRepository {
	return s.dayRepo
}

// Tasks returns the task repository.
func (s *sqliteStorage) Tasks() ports.TaskRepository {
	return s.taskRepo
}

// Pomodoros returns the pomodoro repository.
func (s *sqliteStorage) Pomodoros() ports.PomodoroRepository {
	return s.pomodoroRepo
}

// Streaks returns the streak repository.
func (s *sqliteStorage) Streaks() ports.StreakRepository {
	return s.streakRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS days (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT UNIQUE NOT NULL,
		planned_pomodoros INTEGER NOT NULL DEFAULT 0,
		actual_pomodoros INTEGER NOT NULL DEFAULT 0,
		email_breaks INTEGER NOT NULL DEFAULT 0,
		rest_breaks INTEGER NOT NULL DEFAULT 0,
		satisfaction INTEGER,
		notes TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		started_at DATETIME,
		ended_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_days_date ON days(date);

	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day_id INTEGER NOT NULL REFERENCES days(id),
		description TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_day ON tasks(day_id);

	CREATE TABLE IF NOT EXISTS pomodoros (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day_id INTEGER NOT NULL REFERENCES days(id),
		task_id INTEGER REFERENCES tasks(id),
		started_at DATETIME NOT NULL,
		completed_at DATETIME,
		duration_minutes INTEGER NOT NULL DEFAULT 25
	);

	CREATE INDEX IF NOT EXISTS idx_pomodoros_day ON pomodoros(day_id);

	CREATE TABLE IF NOT EXISTS streaks (
		id INTEGER PRIMARY KEY,
		current_streak INTEGER NOT NULL DEFAULT 0,
		longest_streak INTEGER NOT NULL DEFAULT 0,
		last_active_date TEXT NOT NULL DEFAULT ''
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	// Seed the singleton streak row.
	_, err := s.db.Exec(`INSERT INTO streaks (id, current_streak, longest_streak, last_active_date)
		SELECT 1, 0, 0, '' WHERE NOT EXISTS (SELECT 1 FROM streaks)`)
	if err != nil {
		return fmt.Errorf("failed to seed streaks: %w", err)
	}

	return nil
}

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	sqliteErr, ok := err.(*sqlite.Error)
	return ok && sqliteErr.Code() == 2067 // SQLITE_CONSTRAINT_UNIQUE
}
