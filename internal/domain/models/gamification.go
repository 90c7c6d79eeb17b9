package models

import (
	"time"
)

// Streak tracks consecutive days of journaling for a user. One row per user.
type Streak struct {
	UserID           string     `json:"user_id" db:"user_id"`
	CurrentStreak    int        `json:"current_streak" db:"current_streak"`
	LongestStreak    int        `json:"longest_streak" db:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date" db:"last_activity_date"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// Touch advances the streak for activity at the given time. Same-day activity
// is a no-op; a one-day gap extends the streak; anything longer resets it.
// Returns true if the streak changed.
func (s *Streak) Touch(now time.Time) bool {
	today := utcDay(now)
	if s.LastActivityDate != nil {
		switch today.Sub(utcDay(*s.LastActivityDate)) {
		case 0:
			return false
		case 24 * time.Hour:
			s.CurrentStreak++
		default:
			s.CurrentStreak = 1
		}
	} else {
		s.CurrentStreak = 1
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActivityDate = &today
	return true
}

// utcDay collapses a timestamp to its UTC calendar day, using the
// year/month/day fields rather than 24h duration blocks, so zoned inputs
// bucket consistently. UTC has no DST, so consecutive days are always
// exactly 24h apart.
func utcDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AchievementType categorizes what unlocked a badge.
type AchievementType string

const (
	AchievementStreak  AchievementType = "streak"
	AchievementEntries AchievementType = "entries"
	AchievementComics  AchievementType = "comics"
	AchievementMedia   AchievementType = "media"
	AchievementOther   AchievementType = "other"
)

// Badge is an unlockable reward. Definitions ship with the binary (embedded
// registry); achievements reference badges by name.
type Badge struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	ImageURL    string          `json:"image_url" yaml:"image_url"`
	Type        AchievementType `json:"type" yaml:"type"`
	Threshold   int             `json:"threshold" yaml:"threshold"`
}

// Achievement records a badge unlocked by a user. (user, badge) is unique.
type Achievement struct {
	ID         string          `json:"id" db:"id"`
	UserID     string          `json:"user_id" db:"user_id"`
	BadgeName  string          `json:"badge_name" db:"badge_name"`
	Type       AchievementType `json:"achievement_type" db:"achievement_type"`
	UnlockedAt time.Time       `json:"unlocked_at" db:"unlocked_at"`
}
