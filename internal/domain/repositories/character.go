package repositories

import (
	"context"

	"inkwell/internal/domain/models"
)

// CharacterRepository defines data access operations for characters.
type CharacterRepository interface {
	// Create creates a new character (ID is assigned here)
	Create(ctx context.Context, character *models.Character) error

	// GetByID retrieves a character by ID and owner
	GetByID(ctx context.Context, id, userID string) (*models.Character, error)

	// Update persists name, description, relationship and avatar changes
	Update(ctx context.Context, character *models.Character) error

	// Delete deletes a character and its assignments (FK cascade)
	Delete(ctx context.Context, id, userID string) error

	// ListByUser retrieves all of the user's characters
	ListByUser(ctx context.Context, userID string) ([]models.Character, error)
}

// AssignmentRepository defines data access operations for character
// assignments on journal entries.
type AssignmentRepository interface {
	// Create links a character to an entry. Returns ErrConflict if the
	// character is already assigned to that entry.
	Create(ctx context.Context, assignment *models.CharacterAssignment) error

	// ListByEntry lists assignments on a journal entry
	ListByEntry(ctx context.Context, journalEntryID string) ([]models.CharacterAssignment, error)

	// Exists reports whether the character is already assigned to the entry
	Exists(ctx context.Context, journalEntryID, characterID string) (bool, error)
}
