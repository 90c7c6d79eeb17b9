package models

import (
	"encoding/json"
	"time"
)

// Mood is an optional tag on a journal entry. Empty string means untagged.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodExcited  Mood = "excited"
	MoodCalm     Mood = "calm"
	MoodAnxious  Mood = "anxious"
	MoodAngry    Mood = "angry"
	MoodGrateful Mood = "grateful"
	MoodOther    Mood = "other"
)

// Moods lists the accepted mood tags for validation.
var Moods = []interface{}{
	MoodHappy, MoodSad, MoodExcited, MoodCalm,
	MoodAnxious, MoodAngry, MoodGrateful, MoodOther,
}

// JournalEntry is a user's journal entry. Content is an opaque rich-text
// document (Lexical editor JSON) - the server never interprets it. FolderID
// is NULL for unfiled entries; deleting a folder unfiles its entries rather
// than deleting them.
type JournalEntry struct {
	ID        string          `json:"id" db:"id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Title     string          `json:"title" db:"title"`
	Content   json.RawMessage `json:"content" db:"content"`
	MoodTag   Mood            `json:"mood_tag" db:"mood_tag"`
	FolderID  *string         `json:"folder_id" db:"folder_id"` // NULL = unfiled
	IsLocked  bool            `json:"is_locked" db:"is_locked"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// CloneInto returns a copy of the entry titled "<title> (Copy)" placed in the
// given folder. Content, mood and lock flag are preserved.
func (j *JournalEntry) CloneInto(folderID *string) *JournalEntry {
	return &JournalEntry{
		UserID:   j.UserID,
		Title:    j.Title + " (Copy)",
		Content:  j.Content,
		MoodTag:  j.MoodTag,
		FolderID: folderID,
		IsLocked: j.IsLocked,
	}
}
