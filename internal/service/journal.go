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

// journalService implements the JournalService interface
type journalService struct {
	journalRepo  repositories.JournalRepository
	folderRepo   repositories.FolderRepository
	txManager    repositories.TransactionManager
	gamification services.GamificationService
	enforceLock  bool
	logger       *slog.Logger
}

// NewJournalService creates a new journal service. When enforceLock is set,
// content-level writes to a locked entry fail with ErrLocked; unlocking first
// is required. Structural operations (move, clone, delete) are never blocked
// by the lock.
func NewJournalService(
	journalRepo repositories.JournalRepository,
	folderRepo repositories.FolderRepository,
	txManager repositories.TransactionManager,
	gamification services.GamificationService,
	enforceLock bool,
	logger *slog.Logger,
) services.JournalService {
	return &journalService{
		journalRepo:  journalRepo,
		folderRepo:   folderRepo,
		txManager:    txManager,
		gamification: gamification,
		enforceLock:  enforceLock,
		logger:       logger,
	}
}

// CreateJournal creates a new entry and advances the user's streak
func (s *journalService) CreateJournal(ctx context.Context, userID string, req *services.CreateJournalRequest) (*models.JournalEntry, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.FolderID != nil && *req.FolderID == "" {
		req.FolderID = nil
	}

	entry := &models.JournalEntry{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		MoodTag:  req.MoodTag,
		FolderID: req.FolderID,
		IsLocked: req.IsLocked,
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if req.FolderID != nil {
			if _, err := s.folderRepo.GetByID(txCtx, *req.FolderID, userID); err != nil {
				return err
			}
		}
		return s.journalRepo.Create(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("journal entry created",
		"id", entry.ID,
		"title", entry.Title,
		"user_id", userID,
		"folder_id", entry.FolderID,
	)

	// Streak and badge bookkeeping is best-effort; the entry is already
	// committed and must not be reported as failed.
	if err := s.gamification.RecordActivity(ctx, userID); err != nil {
		s.logger.Warn("failed to record journaling activity", "user_id", userID, "error", err)
	}

	return entry, nil
}

// GetJournal retrieves an entry
func (s *journalService) GetJournal(ctx context.Context, userID, entryID string) (*models.JournalEntry, error) {
	return s.journalRepo.GetByID(ctx, entryID, userID)
}

// ListJournals retrieves all of the user's entries, newest first
func (s *journalService) ListJournals(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.journalRepo.ListByUser(ctx, userID)
}

// ListLockedJournals retrieves the user's locked entries
func (s *journalService) ListLockedJournals(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.journalRepo.ListLocked(ctx, userID)
}

// UpdateJournal applies a partial update to title, content, mood and folder
func (s *journalService) UpdateJournal(ctx context.Context, userID, entryID string, req *services.UpdateJournalRequest) (*models.JournalEntry, error) {
	if req.MoodTag != nil && *req.MoodTag != "" {
		if err := validation.Validate(*req.MoodTag, validation.In(models.Moods...)); err != nil {
			return nil, &domain.ValidationError{Message: "unknown mood tag"}
		}
	}

	var entry *models.JournalEntry
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		entry, err = s.journalRepo.GetByID(txCtx, entryID, userID)
		if err != nil {
			return err
		}
		if err := s.checkLock(entry); err != nil {
			return err
		}

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return &domain.ValidationError{Message: "title required"}
			}
			if len(title) > config.MaxJournalTitleLength {
				return &domain.ValidationError{
					Message: fmt.Sprintf("title must be at most %d characters", config.MaxJournalTitleLength),
				}
			}
			entry.Title = title
		}
		if req.Content != nil {
			entry.Content = req.Content
		}
		if req.MoodTag != nil {
			entry.MoodTag = *req.MoodTag
		}
		if req.FolderID.Present {
			folderID, err := s.resolveFolder(txCtx, userID, req.FolderID.Value)
			if err != nil {
				return err
			}
			entry.FolderID = folderID
		}

		return s.journalRepo.Update(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("journal entry updated", "id", entry.ID, "user_id", userID)

	return entry, nil
}

// RenameJournal sets a new title. Journal titles carry no sibling uniqueness
// constraint; two entries in one folder may share a title.
func (s *journalService) RenameJournal(ctx context.Context, userID, entryID, title string) (*models.JournalEntry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &domain.ValidationError{Message: "title required"}
	}
	if len(title) > config.MaxJournalTitleLength {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("title must be at most %d characters", config.MaxJournalTitleLength),
		}
	}

	var entry *models.JournalEntry
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		entry, err = s.journalRepo.GetByID(txCtx, entryID, userID)
		if err != nil {
			return err
		}
		if err := s.checkLock(entry); err != nil {
			return err
		}
		entry.Title = title
		return s.journalRepo.Update(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("journal entry renamed", "id", entry.ID, "title", entry.Title, "user_id", userID)

	return entry, nil
}

// MoveJournal refiles an entry. A nil folderID unfiles it. Moving is a
// structural operation and is allowed on locked entries.
func (s *journalService) MoveJournal(ctx context.Context, userID, entryID string, folderID *string) (*models.JournalEntry, error) {
	var entry *models.JournalEntry
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		entry, err = s.journalRepo.GetByID(txCtx, entryID, userID)
		if err != nil {
			return err
		}
		resolved, err := s.resolveFolder(txCtx, userID, folderID)
		if err != nil {
			return err
		}
		entry.FolderID = resolved
		return s.journalRepo.Update(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("journal entry moved", "id", entry.ID, "folder_id", entry.FolderID, "user_id", userID)

	return entry, nil
}

// ToggleLock flips the entry's lock flag and returns the new value. Toggling
// is always allowed - it is how a locked entry gets unlocked.
func (s *journalService) ToggleLock(ctx context.Context, userID, entryID string) (bool, error) {
	var entry *models.JournalEntry
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		entry, err = s.journalRepo.GetByID(txCtx, entryID, userID)
		if err != nil {
			return err
		}
		entry.IsLocked = !entry.IsLocked
		return s.journalRepo.Update(txCtx, entry)
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("journal lock toggled", "id", entry.ID, "is_locked", entry.IsLocked, "user_id", userID)

	return entry.IsLocked, nil
}

// CloneJournal copies an entry into the same folder with a "(Copy)" title
// suffix. Content, mood and lock flag carry over; media and comic do not.
func (s *journalService) CloneJournal(ctx context.Context, userID, entryID string) (*models.JournalEntry, error) {
	var clone *models.JournalEntry
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		entry, err := s.journalRepo.GetByID(txCtx, entryID, userID)
		if err != nil {
			return err
		}
		clone = entry.CloneInto(entry.FolderID)
		clone.Title = copyName(entry.Title, " (Copy)", config.MaxJournalTitleLength)
		return s.journalRepo.Create(txCtx, clone)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("journal entry cloned", "id", entryID, "clone_id", clone.ID, "user_id", userID)

	return clone, nil
}

// DeleteJournal deletes an entry. Attached media rows and the comic cascade
// at the store; deletion is allowed on locked entries.
func (s *journalService) DeleteJournal(ctx context.Context, userID, entryID string) error {
	if err := s.journalRepo.Delete(ctx, entryID, userID); err != nil {
		return err
	}

	s.logger.Info("journal entry deleted", "id", entryID, "user_id", userID)

	return nil
}

// checkLock rejects content-level writes on locked entries when enforcement
// is on
func (s *journalService) checkLock(entry *models.JournalEntry) error {
	if s.enforceLock && entry.IsLocked {
		return &domain.LockedError{Message: "journal entry is locked; unlock it before editing"}
	}
	return nil
}

// resolveFolder normalizes and ownership-checks a destination folder id.
// nil (and empty string) mean unfiled.
func (s *journalService) resolveFolder(ctx context.Context, userID string, folderID *string) (*string, error) {
	if folderID == nil || *folderID == "" {
		return nil, nil
	}
	folder, err := s.folderRepo.GetByID(ctx, *folderID, userID)
	if err != nil {
		return nil, err
	}
	return &folder.ID, nil
}

// validateCreateRequest validates a journal creation request
func (s *journalService) validateCreateRequest(req *services.CreateJournalRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxJournalTitleLength),
		),
		validation.Field(&req.MoodTag,
			validation.In(models.Moods...),
		),
	)
}
