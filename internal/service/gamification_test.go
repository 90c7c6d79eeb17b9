package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/badges"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/services"
)

type fakeStreakRepo struct {
	streaks map[string]*models.Streak
}

func (r *fakeStreakRepo) Get(_ context.Context, userID string) (*models.Streak, error) {
	if s, ok := r.streaks[userID]; ok {
		copied := *s
		return &copied, nil
	}
	return &models.Streak{UserID: userID}, nil
}

func (r *fakeStreakRepo) Upsert(_ context.Context, streak *models.Streak) error {
	copied := *streak
	r.streaks[streak.UserID] = &copied
	return nil
}

type fakeAchievementRepo struct {
	unlocked map[string]bool // userID + badge
}

func (r *fakeAchievementRepo) Unlock(_ context.Context, achievement *models.Achievement) (bool, error) {
	key := achievement.UserID + "/" + achievement.BadgeName
	if r.unlocked[key] {
		return false, nil
	}
	r.unlocked[key] = true
	return true, nil
}

func (r *fakeAchievementRepo) ListByUser(_ context.Context, userID string) ([]models.Achievement, error) {
	var out []models.Achievement
	prefix := userID + "/"
	for key := range r.unlocked {
		if strings.HasPrefix(key, prefix) {
			out = append(out, models.Achievement{UserID: userID, BadgeName: strings.TrimPrefix(key, prefix)})
		}
	}
	return out, nil
}

type fakeComicRepo struct {
	count int
}

func (r *fakeComicRepo) Create(context.Context, *models.ComicEntry) error { return nil }
func (r *fakeComicRepo) GetByEntry(context.Context, string) (*models.ComicEntry, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeComicRepo) CountByUser(context.Context, string) (int, error) { return r.count, nil }

type fakeMediaRepo struct {
	count int
}

func (r *fakeMediaRepo) Create(context.Context, *models.MediaAsset) error { return nil }
func (r *fakeMediaRepo) GetByID(context.Context, string, string) (*models.MediaAsset, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeMediaRepo) ListByEntry(context.Context, string) ([]models.MediaAsset, error) {
	return nil, nil
}
func (r *fakeMediaRepo) Delete(context.Context, string, string) error     { return nil }
func (r *fakeMediaRepo) CountByUser(context.Context, string) (int, error) { return r.count, nil }

func newTestGamification(t *testing.T, store *memStore, streaks *fakeStreakRepo, achievements *fakeAchievementRepo) services.GamificationService {
	t.Helper()
	registry, err := badges.NewRegistry()
	require.NoError(t, err)
	return NewGamificationService(
		streaks,
		achievements,
		&fakeJournalRepo{store: store},
		&fakeComicRepo{},
		&fakeMediaRepo{},
		registry,
		fakeTxManager{},
		newTestLogger(),
	)
}

func TestRecordActivityAdvancesStreak(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	streaks := &fakeStreakRepo{streaks: map[string]*models.Streak{}}
	achievements := &fakeAchievementRepo{unlocked: map[string]bool{}}
	svc := newTestGamification(t, store, streaks, achievements)

	require.NoError(t, svc.RecordActivity(ctx, "u1"))

	streak, err := svc.GetStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)

	// Same-day repeat leaves the streak alone
	require.NoError(t, svc.RecordActivity(ctx, "u1"))
	streak, err = svc.GetStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
}

func TestRecordActivityUnlocksEntryBadge(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	streaks := &fakeStreakRepo{streaks: map[string]*models.Streak{}}
	achievements := &fakeAchievementRepo{unlocked: map[string]bool{}}
	svc := newTestGamification(t, store, streaks, achievements)

	// One entry on record: first_entry threshold is met
	require.NoError(t, (&fakeJournalRepo{store: store}).Create(ctx, &models.JournalEntry{UserID: "u1", Title: "One"}))

	require.NoError(t, svc.RecordActivity(ctx, "u1"))
	assert.True(t, achievements.unlocked["u1/first_entry"], "first_entry should unlock at one entry")
	assert.False(t, achievements.unlocked["u1/prolific_writer"], "prolific_writer needs ten entries")

	// Streak of 1 unlocks nothing; three_day_spark needs three days
	assert.False(t, achievements.unlocked["u1/three_day_spark"])
}

func TestStreakBadgeUnlocksOverDays(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	streaks := &fakeStreakRepo{streaks: map[string]*models.Streak{}}
	achievements := &fakeAchievementRepo{unlocked: map[string]bool{}}

	registry, err := badges.NewRegistry()
	require.NoError(t, err)

	svc := &gamificationService{
		streakRepo:      streaks,
		achievementRepo: achievements,
		journalRepo:     &fakeJournalRepo{store: store},
		comicRepo:       &fakeComicRepo{},
		mediaRepo:       &fakeMediaRepo{},
		registry:        registry,
		txManager:       fakeTxManager{},
		logger:          newTestLogger(),
	}

	day := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		current := day.AddDate(0, 0, i)
		svc.now = func() time.Time { return current }
		require.NoError(t, svc.RecordActivity(ctx, "u1"))
	}

	streak, err := svc.GetStreak(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, streak.CurrentStreak)
	assert.True(t, achievements.unlocked["u1/three_day_spark"])
	assert.False(t, achievements.unlocked["u1/week_of_ink"])
}
