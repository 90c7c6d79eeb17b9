package badges

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/internal/domain/models"
)

func TestRegistryLoads(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	require.NotEmpty(t, registry.All())

	seen := map[string]bool{}
	for _, badge := range registry.All() {
		require.NotEmpty(t, badge.Name)
		require.NotEmpty(t, badge.Description)
		require.Positive(t, badge.Threshold)
		require.False(t, seen[badge.Name], "duplicate badge %s", badge.Name)
		seen[badge.Name] = true
	}
}

func TestRegistryByType(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	streakBadges := registry.ByType(models.AchievementStreak)
	require.NotEmpty(t, streakBadges)
	for _, badge := range streakBadges {
		require.Equal(t, models.AchievementStreak, badge.Type)
	}

	require.Empty(t, registry.ByType(models.AchievementOther))
}
