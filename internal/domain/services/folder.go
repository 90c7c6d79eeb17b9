package services

import (
	"context"

	"inkwell/internal/domain/models"
	"inkwell/internal/httputil"
)

// FolderService handles folder business logic. Every operation takes the
// acting user's ID explicitly; there is no ambient request-scoped user.
type FolderService interface {
	// CreateFolder creates a new folder
	CreateFolder(ctx context.Context, userID string, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a folder with its immediate children
	GetFolder(ctx context.Context, userID, folderID string) (*FolderContents, error)

	// RenameFolder renames a folder, enforcing sibling name uniqueness
	RenameFolder(ctx context.Context, userID, folderID, name string) (*models.Folder, error)

	// MoveFolder reparents a folder (nil parent = move to root), rejecting
	// moves that would create a cycle
	MoveFolder(ctx context.Context, userID, folderID string, parentID *string) (*models.Folder, error)

	// ToggleLock flips the folder's lock flag and returns the new value
	ToggleLock(ctx context.Context, userID, folderID string) (bool, error)

	// ToggleHidden flips the folder's hidden flag and returns the new value
	ToggleHidden(ctx context.Context, userID, folderID string) (bool, error)

	// CloneFolder copies a single folder without its contents
	CloneFolder(ctx context.Context, userID, folderID string) (*models.Folder, error)

	// DeleteFolder deletes a folder and its descendant folders; contained
	// journal entries are unfiled, never deleted
	DeleteFolder(ctx context.Context, userID, folderID string) error

	// Paste applies a bulk copy-or-move of folders and journals into a
	// destination folder, one transaction per item, best-effort
	Paste(ctx context.Context, userID, destFolderID string, req *PasteRequest) ([]models.PasteItemResult, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"` // nil for root
	Color    string  `json:"color,omitempty"`
}

// MoveFolderRequest represents a folder move request. ParentID distinguishes
// "move to root" (null) from "field absent" (invalid).
type MoveFolderRequest struct {
	ParentID httputil.OptionalString `json:"parent_id"`
}

// RenameRequest carries the new name for a folder rename
type RenameRequest struct {
	Name string `json:"name"`
}

// PasteRequest represents a bulk paste of clipboard items. The clipboard
// lives on the client; the server only sees the ids and the operation.
type PasteRequest struct {
	FolderIDs  []string              `json:"folders"`
	JournalIDs []string              `json:"journals"`
	Operation  models.PasteOperation `json:"operation"`
}

// FolderContents represents a folder with its immediate children
type FolderContents struct {
	Folder   *models.Folder        `json:"folder"`
	Folders  []models.Folder       `json:"folders"`
	Journals []models.JournalEntry `json:"journals"`
}
