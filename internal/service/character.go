package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/domain/services"
)

// characterService implements the CharacterService interface
type characterService struct {
	characterRepo  repositories.CharacterRepository
	assignmentRepo repositories.AssignmentRepository
	journalRepo    repositories.JournalRepository
	logger         *slog.Logger
}

// NewCharacterService creates a new character service
func NewCharacterService(
	characterRepo repositories.CharacterRepository,
	assignmentRepo repositories.AssignmentRepository,
	journalRepo repositories.JournalRepository,
	logger *slog.Logger,
) services.CharacterService {
	return &characterService{
		characterRepo:  characterRepo,
		assignmentRepo: assignmentRepo,
		journalRepo:    journalRepo,
		logger:         logger,
	}
}

// CreateCharacter creates a new character for the user
func (s *characterService) CreateCharacter(ctx context.Context, userID string, req *services.CharacterRequest) (*models.Character, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	character := &models.Character{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Relationship: req.Relationship,
		AvatarURL:    req.AvatarURL,
	}
	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, err
	}

	s.logger.Info("character created", "id", character.ID, "name", character.Name, "user_id", userID)

	return character, nil
}

// GetCharacter retrieves one of the user's characters
func (s *characterService) GetCharacter(ctx context.Context, userID, characterID string) (*models.Character, error) {
	return s.characterRepo.GetByID(ctx, characterID, userID)
}

// ListCharacters retrieves all of the user's characters
func (s *characterService) ListCharacters(ctx context.Context, userID string) ([]models.Character, error) {
	return s.characterRepo.ListByUser(ctx, userID)
}

// UpdateCharacter applies a partial update
func (s *characterService) UpdateCharacter(ctx context.Context, userID, characterID string, req *services.UpdateCharacterRequest) (*models.Character, error) {
	character, err := s.characterRepo.GetByID(ctx, characterID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, &domain.ValidationError{Message: "name required"}
		}
		if len(name) > config.MaxCharacterNameLength {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("name must be at most %d characters", config.MaxCharacterNameLength),
			}
		}
		character.Name = name
	}
	if req.Description != nil {
		character.Description = *req.Description
	}
	if req.Relationship != nil {
		character.Relationship = *req.Relationship
	}
	if req.AvatarURL != nil {
		character.AvatarURL = *req.AvatarURL
	}

	if err := s.characterRepo.Update(ctx, character); err != nil {
		return nil, err
	}

	s.logger.Info("character updated", "id", character.ID, "user_id", userID)

	return character, nil
}

// DeleteCharacter deletes a character; its assignments cascade at the store
func (s *characterService) DeleteCharacter(ctx context.Context, userID, characterID string) error {
	if err := s.characterRepo.Delete(ctx, characterID, userID); err != nil {
		return err
	}

	s.logger.Info("character deleted", "id", characterID, "user_id", userID)

	return nil
}

// AssignCharacter links a character to one of the user's entries. Both sides
// are ownership-checked before the link is written.
func (s *characterService) AssignCharacter(ctx context.Context, userID, entryID string, req *services.AssignCharacterRequest) (*models.CharacterAssignment, error) {
	if req.CharacterID == "" {
		return nil, &domain.ValidationError{Message: "character_id required"}
	}
	if req.Role == "" {
		req.Role = "mentioned"
	}

	entry, err := s.journalRepo.GetByID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	character, err := s.characterRepo.GetByID(ctx, req.CharacterID, userID)
	if err != nil {
		return nil, err
	}

	assignment := &models.CharacterAssignment{
		JournalEntryID: entry.ID,
		CharacterID:    character.ID,
		Role:           req.Role,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("character assigned",
		"entry_id", entry.ID,
		"character_id", character.ID,
		"role", assignment.Role,
		"user_id", userID,
	)

	return assignment, nil
}

// ListAssignments lists the character assignments on an entry
func (s *characterService) ListAssignments(ctx context.Context, userID, entryID string) ([]models.CharacterAssignment, error) {
	entry, err := s.journalRepo.GetByID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListByEntry(ctx, entry.ID)
}

// validateRequest validates a character creation request
func (s *characterService) validateRequest(req *services.CharacterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxCharacterNameLength),
		),
	)
}
