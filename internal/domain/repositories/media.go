package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// MediaRepository defines data access operations for media assets. Ownership
// is checked through the parent journal entry.
type MediaRepository interface {
	// Create creates a new media asset (ID is assigned here)
	Create(ctx context.Context, asset *models.MediaAsset) error

	// GetByID retrieves an asset whose parent entry belongs to the user
	GetByID(ctx context.Context, id, userID string) (*models.MediaAsset, error)

	// ListByEntry lists assets attached to a journal entry
	ListByEntry(ctx context.Context, journalEntryID string) ([]models.MediaAsset, error)

	// Delete deletes an asset whose parent entry belongs to the user
	Delete(ctx context.Context, id, userID string) error

	// CountByUser returns how many assets the user has uploaded
	CountByUser(ctx context.Context, userID string) (int, error)
}

// ComicRepository defines data access operations for comic entries.
type ComicRepository interface {
	// Create creates a new comic entry (ID is assigned here). Returns
	// ErrConflict if the journal entry already has a comic.
	Create(ctx context.Context, comic *models.ComicEntry) error

	// GetByEntry retrieves the comic for a journal entry
	GetByEntry(ctx context.Context, journalEntryID string) (*models.ComicEntry, error)

	// CountByUser returns how many comics the user has generated
	CountByUser(ctx context.Context, userID string) (int, error)
}
