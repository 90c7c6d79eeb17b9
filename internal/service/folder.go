package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/domain/services"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// folderService implements the FolderService interface
type folderService struct {
	folderRepo  repositories.FolderRepository
	journalRepo repositories.JournalRepository
	integrity   *treeIntegrity
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	journalRepo repositories.JournalRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo:  folderRepo,
		journalRepo: journalRepo,
		integrity:   newTreeIntegrity(folderRepo),
		txManager:   txManager,
		logger:      logger,
	}
}

// CreateFolder creates a new folder under an optional parent
func (s *folderService) CreateFolder(ctx context.Context, userID string, req *services.CreateFolderRequest) (*models.Folder, error) {
	name, err := s.integrity.ValidateName(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}

	color := req.Color
	if color == "" {
		color = "#ffffff"
	}

	folder := &models.Folder{
		UserID:   userID,
		ParentID: req.ParentID,
		Name:     name,
		Color:    color,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if req.ParentID != nil {
			// Parent must exist and belong to the same owner; a foreign
			// parent reads as not-found
			if _, err := s.folderRepo.GetByID(txCtx, *req.ParentID, userID); err != nil {
				return err
			}
		}
		return s.folderRepo.Create(txCtx, folder)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"user_id", userID,
		"parent_id", folder.ParentID,
	)

	return folder, nil
}

// GetFolder retrieves a folder with its immediate children
func (s *folderService) GetFolder(ctx context.Context, userID, folderID string) (*services.FolderContents, error) {
	folder, err := s.folderRepo.GetByID(ctx, folderID, userID)
	if err != nil {
		return nil, err
	}

	subfolders, err := s.folderRepo.ListChildren(ctx, &folder.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child folders: %w", err)
	}

	journals, err := s.journalRepo.ListByFolder(ctx, &folder.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	return &services.FolderContents{
		Folder:   folder,
		Folders:  subfolders,
		Journals: journals,
	}, nil
}

// RenameFolder renames a folder, enforcing sibling name uniqueness. The
// validate-then-write sequence runs in one transaction so concurrent sibling
// renames cannot both pass the pre-check; the unique index catches stragglers.
func (s *folderService) RenameFolder(ctx context.Context, userID, folderID, name string) (*models.Folder, error) {
	name, err := s.integrity.ValidateName(name)
	if err != nil {
		return nil, err
	}

	var folder *models.Folder
	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		folder, err = s.folderRepo.GetByID(txCtx, folderID, userID)
		if err != nil {
			return err
		}
		if err := s.integrity.ValidateRename(txCtx, folder, name); err != nil {
			return err
		}
		folder.Name = name
		return s.folderRepo.Update(txCtx, folder)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed", "id", folder.ID, "name", folder.Name, "user_id", userID)

	return folder, nil
}

// MoveFolder reparents a folder. A nil parentID moves it to the root. The
// cycle check covers both the direct self-parent case and the indirect
// descendant case; the original only blocked the former, which let a
// descendant move disconnect a whole subtree.
func (s *folderService) MoveFolder(ctx context.Context, userID, folderID string, parentID *string) (*models.Folder, error) {
	if parentID != nil && *parentID == "" {
		parentID = nil
	}

	var folder *models.Folder
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		folder, err = s.folderRepo.GetByID(txCtx, folderID, userID)
		if err != nil {
			return err
		}

		var newParent *models.Folder
		if parentID != nil {
			// Foreign or missing destination reads as not-found
			newParent, err = s.folderRepo.GetByID(txCtx, *parentID, userID)
			if err != nil {
				return err
			}
		}

		if err := s.integrity.ValidateMove(txCtx, folder, newParent); err != nil {
			return err
		}
		if err := s.integrity.ValidateRename(txCtx, &models.Folder{
			ID:       folder.ID,
			UserID:   folder.UserID,
			ParentID: parentID,
			Name:     folder.Name,
		}, folder.Name); err != nil {
			return err
		}

		folder.ParentID = parentID
		return s.folderRepo.Update(txCtx, folder)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder moved", "id", folder.ID, "parent_id", folder.ParentID, "user_id", userID)

	return folder, nil
}

// ToggleLock flips the folder's lock flag and returns the new value
func (s *folderService) ToggleLock(ctx context.Context, userID, folderID string) (bool, error) {
	folder, err := s.toggleFlag(ctx, userID, folderID, func(f *models.Folder) {
		f.IsLocked = !f.IsLocked
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("folder lock toggled", "id", folder.ID, "is_locked", folder.IsLocked, "user_id", userID)

	return folder.IsLocked, nil
}

// ToggleHidden flips the folder's hidden flag and returns the new value.
// Locked state is untouched; the flags are orthogonal.
func (s *folderService) ToggleHidden(ctx context.Context, userID, folderID string) (bool, error) {
	folder, err := s.toggleFlag(ctx, userID, folderID, func(f *models.Folder) {
		f.IsHidden = !f.IsHidden
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("folder hidden toggled", "id", folder.ID, "is_hidden", folder.IsHidden, "user_id", userID)

	return folder.IsHidden, nil
}

func (s *folderService) toggleFlag(ctx context.Context, userID, folderID string, flip func(*models.Folder)) (*models.Folder, error) {
	var folder *models.Folder
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		folder, err = s.folderRepo.GetByID(txCtx, folderID, userID)
		if err != nil {
			return err
		}
		flip(folder)
		return s.folderRepo.Update(txCtx, folder)
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// CloneFolder copies a single folder without its contents: same parent,
// color and flags, "_copy"-suffixed name, zero subfolders and journals.
// Recursive duplication belongs to Paste, not here.
func (s *folderService) CloneFolder(ctx context.Context, userID, folderID string) (*models.Folder, error) {
	var clone *models.Folder
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		folder, err := s.folderRepo.GetByID(txCtx, folderID, userID)
		if err != nil {
			return err
		}
		clone = folder.CloneInto(folder.ParentID)
		clone.Name = copyName(folder.Name, "_copy", config.MaxFolderNameLength)
		return s.folderRepo.Create(txCtx, clone)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder cloned", "id", folderID, "clone_id", clone.ID, "user_id", userID)

	return clone, nil
}

// DeleteFolder deletes a folder. Descendant folders go with it (store
// cascade); journal entries anywhere in the subtree are unfiled by the
// store's SET NULL, never deleted - journal content survives its folders.
func (s *folderService) DeleteFolder(ctx context.Context, userID, folderID string) error {
	if err := s.folderRepo.Delete(ctx, folderID, userID); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", folderID, "user_id", userID)

	return nil
}

// validateCreateRequest validates a folder creation request
func (s *folderService) validateCreateRequest(req *services.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
		),
		validation.Field(&req.Color,
			validation.Match(hexColorPattern).Error("color must be a hex string like #aabbcc"),
		),
	)
}
