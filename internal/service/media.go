package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/domain/services"
)

// mediaService implements the MediaService interface
type mediaService struct {
	mediaRepo   repositories.MediaRepository
	journalRepo repositories.JournalRepository
	logger      *slog.Logger
}

// NewMediaService creates a new media service
func NewMediaService(
	mediaRepo repositories.MediaRepository,
	journalRepo repositories.JournalRepository,
	logger *slog.Logger,
) services.MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// AddMedia attaches an asset to one of the user's entries. Blob bytes are
// already in external storage; only the URL is recorded.
func (s *mediaService) AddMedia(ctx context.Context, userID, entryID string, req *services.AddMediaRequest) (*models.MediaAsset, error) {
	if err := s.validateAddRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Ownership gate: a foreign entry reads as not-found
	entry, err := s.journalRepo.GetByID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}

	asset := &models.MediaAsset{
		JournalEntryID: entry.ID,
		FileURL:        req.FileURL,
		FileType:       req.FileType,
		Caption:        req.Caption,
	}
	if err := s.mediaRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	s.logger.Info("media attached",
		"id", asset.ID,
		"entry_id", entry.ID,
		"file_type", asset.FileType,
		"user_id", userID,
	)

	return asset, nil
}

// ListMedia lists the assets on one of the user's entries
func (s *mediaService) ListMedia(ctx context.Context, userID, entryID string) ([]models.MediaAsset, error) {
	entry, err := s.journalRepo.GetByID(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	return s.mediaRepo.ListByEntry(ctx, entry.ID)
}

// DeleteMedia removes an asset from one of the user's entries
func (s *mediaService) DeleteMedia(ctx context.Context, userID, assetID string) error {
	if err := s.mediaRepo.Delete(ctx, assetID, userID); err != nil {
		return err
	}

	s.logger.Info("media deleted", "id", assetID, "user_id", userID)

	return nil
}

// validateAddRequest validates a media attachment request
func (s *mediaService) validateAddRequest(req *services.AddMediaRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.FileURL,
			validation.Required,
			is.URL,
		),
		validation.Field(&req.FileType,
			validation.Required,
			validation.In(models.FileTypes...),
		),
		validation.Field(&req.Caption,
			validation.Length(0, config.MaxCaptionLength),
		),
	)
}
