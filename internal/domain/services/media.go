package services

import (
	"context"

	"inkwell/internal/domain/models"
)

// MediaService handles media asset attachments. Blob bytes live in external
// storage; this service only records URLs against owned journal entries.
type MediaService interface {
	// AddMedia attaches an asset to one of the user's entries
	AddMedia(ctx context.Context, userID, entryID string, req *AddMediaRequest) (*models.MediaAsset, error)

	// ListMedia lists the assets on one of the user's entries
	ListMedia(ctx context.Context, userID, entryID string) ([]models.MediaAsset, error)

	// DeleteMedia removes an asset from one of the user's entries
	DeleteMedia(ctx context.Context, userID, assetID string) error
}

// AddMediaRequest represents a media attachment request
type AddMediaRequest struct {
	FileURL  string          `json:"file_url"`
	FileType models.FileType `json:"file_type"`
	Caption  string          `json:"caption,omitempty"`
}

// ComicService turns a journal entry into a comic rendering featuring one of
// the user's characters. Generation itself is delegated to a Generator.
type ComicService interface {
	// CreateComic generates and stores the comic for an entry. Fails with a
	// conflict if the entry already has a comic. The featured character is
	// assigned to the entry as main_character unless already assigned.
	CreateComic(ctx context.Context, userID, entryID string, req *CreateComicRequest) (*models.ComicEntry, error)

	// GetComic retrieves the comic for one of the user's entries
	GetComic(ctx context.Context, userID, entryID string) (*models.ComicEntry, error)
}

// CreateComicRequest represents a comic generation request
type CreateComicRequest struct {
	CharacterID string `json:"character_id"`
}
