package services

import (
	"context"

	"inkwell/internal/domain/models"
)

// CharacterService handles recurring characters and their assignments to
// journal entries. Assignments never touch folder-tree structure.
type CharacterService interface {
	// CreateCharacter creates a new character for the user
	CreateCharacter(ctx context.Context, userID string, req *CharacterRequest) (*models.Character, error)

	// GetCharacter retrieves one of the user's characters
	GetCharacter(ctx context.Context, userID, characterID string) (*models.Character, error)

	// ListCharacters retrieves all of the user's characters
	ListCharacters(ctx context.Context, userID string) ([]models.Character, error)

	// UpdateCharacter applies a partial update
	UpdateCharacter(ctx context.Context, userID, characterID string, req *UpdateCharacterRequest) (*models.Character, error)

	// DeleteCharacter deletes a character and its assignments
	DeleteCharacter(ctx context.Context, userID, characterID string) error

	// AssignCharacter links a character to one of the user's entries
	AssignCharacter(ctx context.Context, userID, entryID string, req *AssignCharacterRequest) (*models.CharacterAssignment, error)

	// ListAssignments lists the character assignments on an entry
	ListAssignments(ctx context.Context, userID, entryID string) ([]models.CharacterAssignment, error)
}

// CharacterRequest represents a character creation request
type CharacterRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
}

// UpdateCharacterRequest represents a partial character update
type UpdateCharacterRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
}

// AssignCharacterRequest represents a character assignment request
type AssignCharacterRequest struct {
	CharacterID string `json:"character_id"`
	Role        string `json:"role"` // main_character, mentioned, ...
}
