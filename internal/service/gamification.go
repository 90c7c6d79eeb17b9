package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inkwell/internal/badges"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/domain/services"
)

// gamificationService implements the GamificationService interface
type gamificationService struct {
	streakRepo      repositories.StreakRepository
	achievementRepo repositories.AchievementRepository
	journalRepo     repositories.JournalRepository
	comicRepo       repositories.ComicRepository
	mediaRepo       repositories.MediaRepository
	registry        *badges.Registry
	txManager       repositories.TransactionManager
	logger          *slog.Logger
	now             func() time.Time
}

// NewGamificationService creates a new gamification service
func NewGamificationService(
	streakRepo repositories.StreakRepository,
	achievementRepo repositories.AchievementRepository,
	journalRepo repositories.JournalRepository,
	comicRepo repositories.ComicRepository,
	mediaRepo repositories.MediaRepository,
	registry *badges.Registry,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.GamificationService {
	return &gamificationService{
		streakRepo:      streakRepo,
		achievementRepo: achievementRepo,
		journalRepo:     journalRepo,
		comicRepo:       comicRepo,
		mediaRepo:       mediaRepo,
		registry:        registry,
		txManager:       txManager,
		logger:          logger,
		now:             time.Now,
	}
}

// RecordActivity advances the user's streak for activity happening now and
// re-evaluates badge unlocks. Same-day repeat activity leaves the streak
// untouched but still evaluates badges, since counters may have moved.
func (s *gamificationService) RecordActivity(ctx context.Context, userID string) error {
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		streak, err := s.streakRepo.Get(txCtx, userID)
		if err != nil {
			return err
		}
		if !streak.Touch(s.now()) {
			return nil
		}
		return s.streakRepo.Upsert(txCtx, streak)
	})
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	return s.evaluateBadges(ctx, userID)
}

// GetStreak retrieves the user's streak counters
func (s *gamificationService) GetStreak(ctx context.Context, userID string) (*models.Streak, error) {
	return s.streakRepo.Get(ctx, userID)
}

// ListBadges lists all badge definitions
func (s *gamificationService) ListBadges(ctx context.Context) ([]models.Badge, error) {
	return s.registry.All(), nil
}

// ListAchievements lists the user's unlocked badges, newest first
func (s *gamificationService) ListAchievements(ctx context.Context, userID string) ([]models.Achievement, error) {
	return s.achievementRepo.ListByUser(ctx, userID)
}

// evaluateBadges compares the user's counters against every badge threshold
// and unlocks what is newly earned. Unlocks are idempotent at the store, so
// re-evaluating already-held badges is harmless.
func (s *gamificationService) evaluateBadges(ctx context.Context, userID string) error {
	counters, err := s.loadCounters(ctx, userID)
	if err != nil {
		return fmt.Errorf("evaluate badges: %w", err)
	}

	for _, badge := range s.registry.All() {
		count, ok := counters[badge.Type]
		if !ok || count < badge.Threshold {
			continue
		}

		unlocked, err := s.achievementRepo.Unlock(ctx, &models.Achievement{
			UserID:    userID,
			BadgeName: badge.Name,
			Type:      badge.Type,
		})
		if err != nil {
			return fmt.Errorf("unlock badge %s: %w", badge.Name, err)
		}
		if unlocked {
			s.logger.Info("badge unlocked", "user_id", userID, "badge", badge.Name)
		}
	}

	return nil
}

func (s *gamificationService) loadCounters(ctx context.Context, userID string) (map[models.AchievementType]int, error) {
	streak, err := s.streakRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	entryCount, err := s.journalRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	comicCount, err := s.comicRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	mediaCount, err := s.mediaRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[models.AchievementType]int{
		models.AchievementStreak:  streak.CurrentStreak,
		models.AchievementEntries: entryCount,
		models.AchievementComics:  comicCount,
		models.AchievementMedia:   mediaCount,
	}, nil
}
