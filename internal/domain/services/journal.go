package services

import (
	"context"
	"encoding/json"

	"inkwell/internal/domain/models"
	"inkwell/internal/httputil"
)

// JournalService handles journal entry business logic.
type JournalService interface {
	// CreateJournal creates a new entry and advances the user's streak
	CreateJournal(ctx context.Context, userID string, req *CreateJournalRequest) (*models.JournalEntry, error)

	// GetJournal retrieves an entry
	GetJournal(ctx context.Context, userID, entryID string) (*models.JournalEntry, error)

	// ListJournals retrieves all of the user's entries, newest first
	ListJournals(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// ListLockedJournals retrieves the user's locked entries
	ListLockedJournals(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// UpdateJournal updates title/content/mood/folder. Rejected with
	// ErrLocked when the entry is locked and lock enforcement is on.
	UpdateJournal(ctx context.Context, userID, entryID string, req *UpdateJournalRequest) (*models.JournalEntry, error)

	// RenameJournal sets a new title (no sibling uniqueness for journals)
	RenameJournal(ctx context.Context, userID, entryID, title string) (*models.JournalEntry, error)

	// MoveJournal refiles an entry (nil folder = unfile)
	MoveJournal(ctx context.Context, userID, entryID string, folderID *string) (*models.JournalEntry, error)

	// ToggleLock flips the entry's lock flag and returns the new value
	ToggleLock(ctx context.Context, userID, entryID string) (bool, error)

	// CloneJournal copies an entry into the same folder, "(Copy)"-suffixed
	CloneJournal(ctx context.Context, userID, entryID string) (*models.JournalEntry, error)

	// DeleteJournal deletes an entry with its media and comic
	DeleteJournal(ctx context.Context, userID, entryID string) error
}

// CreateJournalRequest represents an entry creation request
type CreateJournalRequest struct {
	Title    string          `json:"title"`
	Content  json.RawMessage `json:"content,omitempty"`
	MoodTag  models.Mood     `json:"mood_tag,omitempty"`
	FolderID *string         `json:"folder_id,omitempty"`
	IsLocked bool            `json:"is_locked,omitempty"`
}

// UpdateJournalRequest represents a partial entry update. FolderID uses
// tri-state presence so "unfile" (null) and "leave alone" (absent) differ.
type UpdateJournalRequest struct {
	Title    *string                 `json:"title,omitempty"`
	Content  json.RawMessage         `json:"content,omitempty"`
	MoodTag  *models.Mood            `json:"mood_tag,omitempty"`
	FolderID httputil.OptionalString `json:"folder_id"`
}

// RenameJournalRequest carries the new title for a journal rename
type RenameJournalRequest struct {
	Title string `json:"title"`
}

// MoveJournalRequest represents a journal move request
type MoveJournalRequest struct {
	FolderID httputil.OptionalString `json:"folder_id"`
}
