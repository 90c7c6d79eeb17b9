package service

import (
	"context"
	"fmt"
	"log/slog"

	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/domain/services"
)

// treeService implements the TreeService interface
type treeService struct {
	folderRepo  repositories.FolderRepository
	journalRepo repositories.JournalRepository
	logger      *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(
	folderRepo repositories.FolderRepository,
	journalRepo repositories.JournalRepository,
	logger *slog.Logger,
) services.TreeService {
	return &treeService{
		folderRepo:  folderRepo,
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// BuildTree assembles the user's nested folder/journal projection from two
// flat queries. Three passes over maps, no recursion: create all nodes, link
// children to parents, then collect roots. A node whose parent is missing
// from the user's own set (corrupt or foreign reference) is surfaced as a
// root rather than dropped. Hidden folders and their entire subtrees are
// pruned unless includeHidden is set; hiding is presentation-level only and
// never restricts direct access by id.
func (s *treeService) BuildTree(ctx context.Context, userID string, includeHidden bool) (*models.Tree, error) {
	folders, err := s.folderRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}

	entries, err := s.journalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}

	// Pass 1: a node per folder
	nodes := make(map[string]*models.FolderTreeNode, len(folders))
	for i := range folders {
		f := &folders[i]
		nodes[f.ID] = &models.FolderTreeNode{
			ID:        f.ID,
			Name:      f.Name,
			Color:     f.Color,
			IsLocked:  f.IsLocked,
			IsHidden:  f.IsHidden,
			ParentID:  f.ParentID,
			CreatedAt: f.CreatedAt,
			Folders:   []*models.FolderTreeNode{},
			Journals:  []models.JournalTreeNode{},
		}
	}

	// Pass 2: attach journal metadata to folder nodes; unfiled entries
	// collect at the root. Entries in a missing folder are treated as
	// unfiled rather than lost.
	tree := &models.Tree{
		Folders:  []*models.FolderTreeNode{},
		Journals: []models.JournalTreeNode{},
	}
	for i := range entries {
		e := &entries[i]
		node := models.JournalTreeNode{
			ID:        e.ID,
			Title:     e.Title,
			MoodTag:   e.MoodTag,
			FolderID:  e.FolderID,
			IsLocked:  e.IsLocked,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		}
		if e.FolderID != nil {
			if parent, ok := nodes[*e.FolderID]; ok {
				parent.Journals = append(parent.Journals, node)
				continue
			}
		}
		tree.Journals = append(tree.Journals, node)
	}

	// Pass 3: link folders to parents, collecting roots. Walking the
	// name-ordered slice rather than the node map keeps every sibling list
	// in the store's sort order.
	for i := range folders {
		node := nodes[folders[i].ID]
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok {
				parent.Folders = append(parent.Folders, node)
				continue
			}
			s.logger.Warn("folder has unresolvable parent, surfacing at root",
				"id", node.ID, "parent_id", *node.ParentID, "user_id", userID)
		}
		tree.Folders = append(tree.Folders, node)
	}

	if !includeHidden {
		tree.Folders = pruneHidden(tree.Folders)
		for i := range folders {
			node := nodes[folders[i].ID]
			node.Folders = pruneHidden(node.Folders)
		}
	}

	return tree, nil
}

// pruneHidden drops hidden nodes from a sibling list. Dropping the node
// severs its whole subtree, so descendants of a hidden folder need no
// separate handling.
func pruneHidden(nodes []*models.FolderTreeNode) []*models.FolderTreeNode {
	visible := nodes[:0]
	for _, node := range nodes {
		if node.IsHidden {
			continue
		}
		visible = append(visible, node)
	}
	return visible
}
