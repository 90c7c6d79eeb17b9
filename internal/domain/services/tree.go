package services

import (
	"context"

	"inkwell/internal/domain/models"
)

// TreeService builds the nested folder/journal projection from flat storage
// rows. Reads always hit the store; nothing is cached in-process.
type TreeService interface {
	// BuildTree returns the user's folder tree. Hidden folders (and their
	// entire subtrees) are pruned unless includeHidden is set.
	BuildTree(ctx context.Context, userID string, includeHidden bool) (*models.Tree, error)
}
