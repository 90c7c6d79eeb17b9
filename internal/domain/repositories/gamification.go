package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// StreakRepository defines data access operations for streaks.
type StreakRepository interface {
	// Get retrieves the user's streak, returning a zero-value streak if the
	// user has no row yet
	Get(ctx context.Context, userID string) (*models.Streak, error)

	// Upsert inserts or updates the user's streak row
	Upsert(ctx context.Context, streak *models.Streak) error
}

// AchievementRepository defines data access operations for achievements.
type AchievementRepository interface {
	// Unlock records a badge unlock. Returns false without error if the user
	// already holds the badge.
	Unlock(ctx context.Context, achievement *models.Achievement) (bool, error)

	// ListByUser retrieves the user's achievements, newest first
	ListByUser(ctx context.Context, userID string) ([]models.Achievement, error)
}
