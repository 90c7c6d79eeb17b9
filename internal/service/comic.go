package service

import (
	"context"
	"fmt"
	"log/slog"

	"inkwell/internal/comicgen"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/domain/services"
)

// comicService implements the ComicService interface
type comicService struct {
	comicRepo      repositories.ComicRepository
	journalRepo    repositories.JournalRepository
	characterRepo  repositories.CharacterRepository
	assignmentRepo repositories.AssignmentRepository
	generator      comicgen.Generator
	txManager      repositories.TransactionManager
	gamification   services.GamificationService
	logger         *slog.Logger
}

// NewComicService creates a new comic service
func NewComicService(
	comicRepo repositories.ComicRepository,
	journalRepo repositories.JournalRepository,
	characterRepo repositories.CharacterRepository,
	assignmentRepo repositories.AssignmentRepository,
	generator comicgen.Generator,
	txManager repositories.TransactionManager,
	gamification services.GamificationService,
	logger *slog.Logger,
) services.ComicService {
	return &comicService{
		comicRepo:      comicRepo,
		journalRepo:    journalRepo,
		characterRepo:  characterRepo,
		assignmentRepo: assignmentRepo,
		generator:      generator,
		txManager:      txManager,
		gamification:   gamification,
		logger:         logger,
	}
}

// CreateComic generates the comic for an entry, featuring one of the user's
// characters. The featured character is also assigned to the entry as
// main_character unless it already is. At most one comic exists per entry.
func (s *comicService) CreateComic(ctx context.Context, userID, entryID string, req *services.CreateComicRequest) (*models.ComicEntry, error) {
	if req.CharacterID == "" {
		return nil, &domain.ValidationError{Message: "character_id required"}
	}

	entry, err := s.journalRepo.GetByID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	character, err := s.characterRepo.GetByID(ctx, req.CharacterID, userID)
	if err != nil {
		return nil, err
	}

	// Generation happens outside the transaction; it may take a while and
	// holds no locks.
	generated, err := s.generator.Generate(ctx, entry, character)
	if err != nil {
		return nil, fmt.Errorf("generate comic: %w", err)
	}

	comic := &models.ComicEntry{
		JournalEntryID:   entry.ID,
		ImageURL:         generated.ImageURL,
		GenerationPrompt: generated.Prompt,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.comicRepo.Create(txCtx, comic); err != nil {
			return err
		}

		assigned, err := s.assignmentRepo.Exists(txCtx, entry.ID, character.ID)
		if err != nil {
			return err
		}
		if !assigned {
			return s.assignmentRepo.Create(txCtx, &models.CharacterAssignment{
				JournalEntryID: entry.ID,
				CharacterID:    character.ID,
				Role:           "main_character",
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comic generated",
		"id", comic.ID,
		"entry_id", entry.ID,
		"character_id", character.ID,
		"user_id", userID,
	)

	if err := s.gamification.RecordActivity(ctx, userID); err != nil {
		s.logger.Warn("failed to record comic activity", "user_id", userID, "error", err)
	}

	return comic, nil
}

// GetComic retrieves the comic for one of the user's entries
func (s *comicService) GetComic(ctx context.Context, userID, entryID string) (*models.ComicEntry, error) {
	entry, err := s.journalRepo.GetByID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	return s.comicRepo.GetByEntry(ctx, entry.ID)
}
