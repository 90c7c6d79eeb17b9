package services

import (
	"context"

	"inkwell/internal/domain/models"
)

// GamificationService tracks journaling streaks and unlocks badges.
type GamificationService interface {
	// RecordActivity advances the user's streak for activity happening now
	// and evaluates badge unlocks. Called by other services on journaling
	// actions; failures here never fail the triggering operation.
	RecordActivity(ctx context.Context, userID string) error

	// GetStreak retrieves the user's streak counters
	GetStreak(ctx context.Context, userID string) (*models.Streak, error)

	// ListBadges lists all badge definitions
	ListBadges(ctx context.Context) ([]models.Badge, error)

	// ListAchievements lists the user's unlocked badges, newest first
	ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error)
}
