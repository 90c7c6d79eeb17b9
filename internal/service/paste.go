package service

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/services"
)

// Paste applies a clipboard of folder and journal ids to a destination
// folder. Each item runs in its own transaction: a bad item is reported as
// skipped and the rest of the batch proceeds. A bad destination fails the
// whole call instead, since nothing could land anywhere.
func (s *folderService) Paste(ctx context.Context, userID, destFolderID string, req *services.PasteRequest) ([]models.PasteItemResult, error) {
	if req.Operation != models.PasteCopy && req.Operation != models.PasteMove {
		return nil, &domain.ValidationError{Message: "operation must be copy or move"}
	}
	if len(req.FolderIDs)+len(req.JournalIDs) == 0 {
		return nil, &domain.ValidationError{Message: "nothing to paste"}
	}
	if len(req.FolderIDs)+len(req.JournalIDs) > config.MaxPasteItems {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("at most %d items per paste", config.MaxPasteItems),
		}
	}

	dest, err := s.folderRepo.GetByID(ctx, destFolderID, userID)
	if err != nil {
		return nil, err
	}

	results := make([]models.PasteItemResult, 0, len(req.FolderIDs)+len(req.JournalIDs))
	for _, folderID := range req.FolderIDs {
		results = append(results, s.pasteFolder(ctx, userID, dest, folderID, req.Operation))
	}
	for _, journalID := range req.JournalIDs {
		results = append(results, s.pasteJournal(ctx, userID, dest, journalID, req.Operation))
	}

	s.logger.Info("paste completed",
		"user_id", userID,
		"dest_id", dest.ID,
		"operation", req.Operation,
		"items", len(results),
	)

	return results, nil
}

func (s *folderService) pasteFolder(ctx context.Context, userID string, dest *models.Folder, folderID string, op models.PasteOperation) models.PasteItemResult {
	result := models.PasteItemResult{ID: folderID, Kind: "folder"}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		folder, err := s.folderRepo.GetByID(txCtx, folderID, userID)
		if err != nil {
			return err
		}

		// Destination inside the item's own subtree breaks acyclicity for a
		// move and diverges for a copy, so both reject it.
		if err := s.integrity.ValidateMove(txCtx, folder, dest); err != nil {
			return err
		}

		switch op {
		case models.PasteMove:
			if err := s.integrity.ValidateRename(txCtx, &models.Folder{
				ID:       folder.ID,
				UserID:   folder.UserID,
				ParentID: &dest.ID,
				Name:     folder.Name,
			}, folder.Name); err != nil {
				return err
			}
			folder.ParentID = &dest.ID
			if err := s.folderRepo.Update(txCtx, folder); err != nil {
				return err
			}
			result.Status = models.PasteStatusMoved
			return nil

		default:
			newID, err := s.copySubtree(txCtx, userID, folder, dest.ID)
			if err != nil {
				return err
			}
			result.Status = models.PasteStatusCopied
			result.NewID = newID
			return nil
		}
	})
	if err != nil {
		return skipResult(result, err)
	}
	return result
}

func (s *folderService) pasteJournal(ctx context.Context, userID string, dest *models.Folder, journalID string, op models.PasteOperation) models.PasteItemResult {
	result := models.PasteItemResult{ID: journalID, Kind: "journal"}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		entry, err := s.journalRepo.GetByID(txCtx, journalID, userID)
		if err != nil {
			return err
		}

		switch op {
		case models.PasteMove:
			entry.FolderID = &dest.ID
			if err := s.journalRepo.Update(txCtx, entry); err != nil {
				return err
			}
			result.Status = models.PasteStatusMoved
			return nil

		default:
			clone := entry.CloneInto(&dest.ID)
			clone.Title = copyName(entry.Title, " (Copy)", config.MaxJournalTitleLength)
			if err := s.journalRepo.Create(txCtx, clone); err != nil {
				return err
			}
			result.Status = models.PasteStatusCopied
			result.NewID = clone.ID
			return nil
		}
	})
	if err != nil {
		return skipResult(result, err)
	}
	return result
}

// copySubtree duplicates a folder and everything beneath it under newParentID
// and returns the new root's id. Every copied folder and journal, at every
// depth, carries a " (Copy)" suffix. The walk is a queue-driven breadth-first
// traversal - stored depth never drives recursion.
func (s *folderService) copySubtree(ctx context.Context, userID string, src *models.Folder, newParentID string) (string, error) {
	root := src.CloneInto(&newParentID)
	root.Name = copyName(src.Name, " (Copy)", config.MaxFolderNameLength)
	if err := s.folderRepo.Create(ctx, root); err != nil {
		return "", err
	}

	type pair struct {
		srcID string
		newID string
	}
	queue := []pair{{srcID: src.ID, newID: root.ID}}
	visited := map[string]bool{src.ID: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		entries, err := s.journalRepo.ListByFolder(ctx, &current.srcID, userID)
		if err != nil {
			return "", err
		}
		for i := range entries {
			clone := entries[i].CloneInto(&current.newID)
			clone.Title = copyName(entries[i].Title, " (Copy)", config.MaxJournalTitleLength)
			if err := s.journalRepo.Create(ctx, clone); err != nil {
				return "", err
			}
		}

		children, err := s.folderRepo.ListChildren(ctx, &current.srcID, userID)
		if err != nil {
			return "", err
		}
		for i := range children {
			child := &children[i]
			if visited[child.ID] {
				return "", &domain.CycleError{
					Message: fmt.Sprintf("folder %s has a corrupt subtree", src.ID),
				}
			}
			visited[child.ID] = true

			childCopy := child.CloneInto(&current.newID)
			childCopy.Name = copyName(child.Name, " (Copy)", config.MaxFolderNameLength)
			if err := s.folderRepo.Create(ctx, childCopy); err != nil {
				return "", err
			}
			queue = append(queue, pair{srcID: child.ID, newID: childCopy.ID})
		}
	}

	return root.ID, nil
}

// skipResult folds a per-item failure into a skipped result when the failure
// is a domain condition (missing item, cycle, name conflict). Infra errors
// still surface as skips with a generic reason - the batch keeps going.
func skipResult(result models.PasteItemResult, err error) models.PasteItemResult {
	result.Status = models.PasteStatusSkipped
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result.Reason = "item not found"
	case errors.Is(err, domain.ErrCycle):
		result.Reason = "cannot paste a folder into its own subtree"
	case errors.Is(err, domain.ErrDuplicateName):
		result.Reason = "name conflict in destination"
	default:
		result.Reason = "internal error"
	}
	return result
}
