package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// JournalRepository defines data access operations for journal entries.
// Owner-scoped like FolderRepository: foreign entries read as not-found.
type JournalRepository interface {
	// Create creates a new journal entry (ID is assigned here)
	Create(ctx context.Context, entry *models.JournalEntry) error

	// GetByID retrieves an entry by ID and owner
	GetByID(ctx context.Context, id, userID string) (*models.JournalEntry, error)

	// Update persists title, content, mood, folder and flag changes
	Update(ctx context.Context, entry *models.JournalEntry) error

	// Delete deletes an entry. Media assets and the comic cascade with it.
	Delete(ctx context.Context, id, userID string) error

	// ListByUser retrieves all of the user's entries, newest first
	ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// ListByFolder lists entries directly in a folder (folderID nil = unfiled)
	ListByFolder(ctx context.Context, folderID *string, userID string) ([]models.JournalEntry, error)

	// ListLocked retrieves the user's locked entries
	ListLocked(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// CountByUser returns how many entries the user owns
	CountByUser(ctx context.Context, userID string) (int, error)
}
