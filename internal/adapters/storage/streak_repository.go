package storage

import (
	"context"
	"database/sql"
	"fmt"

	"workday/internal/domain"
	"workday/internal/ports"
)

// streakRepository implements ports.StreakRepository using SQLite.
// The streaks table holds exactly one row, seeded by Migrate.
type streakRepository struct {
	db *sql.DB
}

// newStreakRepository creates a new streak repository.
func newStreakRepository(db *sql.DB) ports.StreakRepository {
	return &streakRepository{db: db}
}

// Get returns the streak record.
func (r *streakRepository) Get(ctx context.Context) (*domain.Streak, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, current_streak, longest_streak, last_active_date FROM streaks LIMIT 1")

	var streak domain.Streak
	err := row.Scan(&streak.ID, &streak.Current, &streak.Longest, &streak.LastActiveDate)
	if err == sql.ErrNoRows {
		return &domain.Streak{ID: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan streak: %w", err)
	}

	return &streak, nil
}

// Update persists the streak record.
func (r *streakRepository) Update(ctx context.Context, streak *domain.Streak) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE streaks
		SET current_streak = ?, longest_streak = ?, last_active_date = ?
		WHERE id = ?`,
		streak.Current,
		streak.Longest,
		streak.LastActiveDate,
		streak.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}
	return nil
}
