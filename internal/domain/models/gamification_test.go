package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStreakTouch(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC).AddDate(0, 0, n)
	}

	t.Run("first activity starts at one", func(t *testing.T) {
		s := &Streak{UserID: "u1"}
		changed := s.Touch(day(0))
		assert.True(t, changed)
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, 1, s.LongestStreak)
		assert.NotNil(t, s.LastActivityDate)
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		s := &Streak{UserID: "u1"}
		s.Touch(day(0))
		changed := s.Touch(day(0).Add(5 * time.Hour))
		assert.False(t, changed)
		assert.Equal(t, 1, s.CurrentStreak)
	})

	t.Run("next day extends", func(t *testing.T) {
		s := &Streak{UserID: "u1"}
		s.Touch(day(0))
		s.Touch(day(1))
		s.Touch(day(2))
		assert.Equal(t, 3, s.CurrentStreak)
		assert.Equal(t, 3, s.LongestStreak)
	})

	t.Run("gap resets current but keeps longest", func(t *testing.T) {
		s := &Streak{UserID: "u1"}
		for i := 0; i < 5; i++ {
			s.Touch(day(i))
		}
		s.Touch(day(10))
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, 5, s.LongestStreak)
	})

	t.Run("zoned timestamps bucket by utc day", func(t *testing.T) {
		s := &Streak{UserID: "u1"}
		zone := time.FixedZone("UTC-5", -5*60*60)

		// 22:00-05:00 on June 1 is already June 2 in UTC
		s.Touch(time.Date(2025, 6, 1, 22, 0, 0, 0, zone))
		changed := s.Touch(time.Date(2025, 6, 2, 10, 0, 0, 0, zone)) // 15:00 UTC, same day
		assert.False(t, changed)
		assert.Equal(t, 1, s.CurrentStreak)

		changed = s.Touch(time.Date(2025, 6, 2, 23, 30, 0, 0, zone)) // 04:30 UTC next day
		assert.True(t, changed)
		assert.Equal(t, 2, s.CurrentStreak)
	})

	t.Run("activity just across midnight extends", func(t *testing.T) {
		s := &Streak{UserID: "u1"}
		s.Touch(time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC))
		changed := s.Touch(time.Date(2025, 6, 2, 0, 30, 0, 0, time.UTC))
		assert.True(t, changed)
		assert.Equal(t, 2, s.CurrentStreak)
	})

	t.Run("rebuilding past the old record", func(t *testing.T) {
		s := &Streak{UserID: "u1"}
		s.Touch(day(0))
		s.Touch(day(1))
		s.Touch(day(5))
		s.Touch(day(6))
		s.Touch(day(7))
		assert.Equal(t, 3, s.CurrentStreak)
		assert.Equal(t, 3, s.LongestStreak)
	})
}
