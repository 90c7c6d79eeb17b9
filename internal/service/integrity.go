package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

// treeIntegrity guards the two structural invariants of the folder tree:
// sibling name uniqueness per (user, parent) and acyclicity of the parent
// chain. Services run these checks before writing; the store's unique
// indexes remain the authoritative backstop under concurrency, so the
// pre-checks here are an optimization for clean errors, not the sole guard.
type treeIntegrity struct {
	folderRepo repositories.FolderRepository
}

func newTreeIntegrity(folderRepo repositories.FolderRepository) *treeIntegrity {
	return &treeIntegrity{folderRepo: folderRepo}
}

// ValidateName checks a folder name in isolation: trimmed non-empty, length
// capped, no slashes. Returns the normalized name.
func (t *treeIntegrity) ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &domain.ValidationError{Message: "name required"}
	}
	if len(name) > config.MaxFolderNameLength {
		return "", &domain.ValidationError{
			Message: fmt.Sprintf("name must be at most %d characters", config.MaxFolderNameLength),
		}
	}
	if strings.Contains(name, "/") {
		return "", &domain.ValidationError{Message: "folder name cannot contain slashes"}
	}
	return name, nil
}

// copyName appends a copy suffix to a name, trimming the base first so the
// generated name still fits limit and passes the same length checks as a
// user-supplied one.
func copyName(base, suffix string, limit int) string {
	if max := limit - len(suffix); len(base) > max {
		base = base[:max]
	}
	return base + suffix
}

// ValidateRename checks that no sibling (same owner, same parent) already
// carries newName.
func (t *treeIntegrity) ValidateRename(ctx context.Context, folder *models.Folder, newName string) error {
	siblings, err := t.folderRepo.ListChildren(ctx, folder.ParentID, folder.UserID)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate names: %w", err)
	}
	for _, sibling := range siblings {
		if sibling.ID != folder.ID && sibling.Name == newName {
			return &domain.DuplicateNameError{
				Message:      fmt.Sprintf("a folder named %q already exists in this location", newName),
				ResourceType: "folder",
				ResourceID:   sibling.ID,
			}
		}
	}
	return nil
}

// ValidateMove checks that reparenting folder under newParent keeps the tree
// acyclic. A folder may not become its own parent, and the destination may
// not sit anywhere inside the folder's own subtree. The walk is iterative
// and loop-guarded: stored depth is user-controlled and must not drive
// recursion.
func (t *treeIntegrity) ValidateMove(ctx context.Context, folder *models.Folder, newParent *models.Folder) error {
	if newParent == nil {
		return nil // moving to root is always acyclic
	}
	if newParent.ID == folder.ID {
		return &domain.CycleError{Message: "cannot move folder into itself"}
	}

	ancestors, err := t.ResolveAncestors(ctx, newParent)
	if err != nil {
		return err
	}
	for _, ancestor := range ancestors {
		if ancestor.ID == folder.ID {
			return &domain.CycleError{Message: "cannot move folder into one of its descendants"}
		}
	}
	return nil
}

// ResolveAncestors walks the parent chain upward and returns the ordered
// ancestors of folder, nearest first, excluding folder itself. A visited set
// stops the walk if the stored chain is already corrupt, rather than
// spinning forever.
func (t *treeIntegrity) ResolveAncestors(ctx context.Context, folder *models.Folder) ([]*models.Folder, error) {
	var ancestors []*models.Folder
	visited := map[string]bool{folder.ID: true}

	current := folder
	for current.ParentID != nil {
		parent, err := t.folderRepo.GetByID(ctx, *current.ParentID, folder.UserID)
		if err != nil {
			return nil, fmt.Errorf("resolve ancestors of folder %s: %w", folder.ID, err)
		}
		if visited[parent.ID] {
			return nil, &domain.CycleError{
				Message: fmt.Sprintf("folder %s has a corrupt ancestor chain", folder.ID),
			}
		}
		visited[parent.ID] = true
		ancestors = append(ancestors, parent)
		current = parent
	}

	return ancestors, nil
}
