package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// PostgresStreakRepository implements the StreakRepository interface
type PostgresStreakRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewStreakRepository creates a new streak repository
func NewStreakRepository(config *RepositoryConfig) repositories.StreakRepository {
	return &PostgresStreakRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Get retrieves the user's streak. A user with no row yet gets a zero-value
// streak rather than not-found, since every user implicitly has one.
func (r *PostgresStreakRepository) Get(ctx context.Context, userID string) (*models.Streak, error) {
	query := fmt.Sprintf(`
		SELECT user_id, current_streak, longest_streak, last_activity_date, updated_at
		FROM %s
		WHERE user_id = $1
	`, r.tables.Streaks)

	var streak models.Streak
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID).Scan(
		&streak.UserID,
		&streak.CurrentStreak,
		&streak.LongestStreak,
		&streak.LastActivityDate,
		&streak.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return &models.Streak{UserID: userID}, nil
		}
		return nil, fmt.Errorf("get streak: %w", err)
	}

	return &streak, nil
}

// Upsert inserts or updates the user's streak row
func (r *PostgresStreakRepository) Upsert(ctx context.Context, streak *models.Streak) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, current_streak, longest_streak, last_activity_date, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
		    longest_streak = EXCLUDED.longest_streak,
		    last_activity_date = EXCLUDED.last_activity_date,
		    updated_at = NOW()
	`, r.tables.Streaks)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query,
		streak.UserID,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.LastActivityDate,
	); err != nil {
		return fmt.Errorf("upsert streak: %w", err)
	}

	return nil
}

// PostgresAchievementRepository implements the AchievementRepository interface
type PostgresAchievementRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(config *RepositoryConfig) repositories.AchievementRepository {
	return &PostgresAchievementRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Unlock records a badge unlock. ON CONFLICT DO NOTHING keeps re-evaluation
// idempotent; returns false if the user already held the badge.
func (r *PostgresAchievementRepository) Unlock(ctx context.Context, achievement *models.Achievement) (bool, error) {
	if achievement.ID == "" {
		achievement.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, badge_name, achievement_type, unlocked_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, badge_name) DO NOTHING
	`, r.tables.Achievements)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		achievement.ID,
		achievement.UserID,
		achievement.BadgeName,
		achievement.Type,
	)
	if err != nil {
		return false, fmt.Errorf("unlock achievement: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListByUser retrieves the user's achievements, newest first
func (r *PostgresAchievementRepository) ListByUser(ctx context.Context, userID string) ([]models.Achievement, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, badge_name, achievement_type, unlocked_at
		FROM %s
		WHERE user_id = $1
		ORDER BY unlocked_at DESC
	`, r.tables.Achievements)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var achievement models.Achievement
		err := rows.Scan(
			&achievement.ID,
			&achievement.UserID,
			&achievement.BadgeName,
			&achievement.Type,
			&achievement.UnlockedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		achievements = append(achievements, achievement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}

	return achievements, nil
}
