package models

import (
	"time"
)

// Character is a recurring person in a user's journals (friend, family, ...).
type Character struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Relationship string    `json:"relationship" db:"relationship"`
	AvatarURL    string    `json:"avatar_url" db:"avatar_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CharacterAssignment links a character to a journal entry with a role
// (main_character, mentioned, ...). A character appears at most once per entry.
type CharacterAssignment struct {
	ID             string `json:"id" db:"id"`
	JournalEntryID string `json:"journal_entry_id" db:"journal_entry_id"`
	CharacterID    string `json:"character_id" db:"character_id"`
	Role           string `json:"role" db:"role"`
}
