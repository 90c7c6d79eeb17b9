package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// FolderRepository defines data access operations for folders. All reads are
// scoped by owner: a folder belonging to another user behaves exactly like a
// missing folder.
type FolderRepository interface {
	// Create creates a new folder (ID is assigned here)
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID and owner
	GetByID(ctx context.Context, id, userID string) (*models.Folder, error)

	// Update persists name, parent, color and flag changes
	Update(ctx context.Context, folder *models.Folder) error

	// Delete deletes a folder. Descendant folders go with it (FK cascade);
	// contained journals are unfiled by the store (FK SET NULL).
	Delete(ctx context.Context, id, userID string) error

	// ListChildren lists immediate child folders (parentID nil = roots)
	ListChildren(ctx context.Context, parentID *string, userID string) ([]models.Folder, error)

	// GetAllByUser retrieves every folder the user owns (flat list)
	GetAllByUser(ctx context.Context, userID string) ([]models.Folder, error)
}
