package models

import (
	"time"
)

// Tree is the root of a user's folder/journal hierarchy: root-level folders
// plus unfiled journal entries.
type Tree struct {
	Folders  []*FolderTreeNode `json:"folders"`
	Journals []JournalTreeNode `json:"journals"`
}

// FolderTreeNode represents a folder in the tree with nested children
type FolderTreeNode struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Color     string            `json:"color"`
	IsLocked  bool              `json:"is_locked"`
	IsHidden  bool              `json:"is_hidden"`
	ParentID  *string           `json:"parent_id"`
	CreatedAt time.Time         `json:"created_at"`
	Folders   []*FolderTreeNode `json:"subfolders"` // Pointers for proper nesting
	Journals  []JournalTreeNode `json:"journals"`
}

// JournalTreeNode represents a journal entry in the tree (metadata only,
// no content)
type JournalTreeNode struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	MoodTag   Mood      `json:"mood_tag"`
	FolderID  *string   `json:"folder_id"`
	IsLocked  bool      `json:"is_locked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PasteOperation selects what a paste does with the clipboard items.
type PasteOperation string

const (
	PasteCopy PasteOperation = "copy"
	PasteMove PasteOperation = "move"
)

// PasteItemStatus reports what happened to one clipboard item.
type PasteItemStatus string

const (
	PasteStatusCopied  PasteItemStatus = "copied"
	PasteStatusMoved   PasteItemStatus = "moved"
	PasteStatusSkipped PasteItemStatus = "skipped"
)

// PasteItemResult is the per-item outcome of a paste. The original design
// returned a bare acknowledgment; reporting per item keeps silent skips
// (missing id, foreign owner, self-destination) visible to the caller.
type PasteItemResult struct {
	ID     string          `json:"id"`
	Kind   string          `json:"kind"` // "folder" or "journal"
	Status PasteItemStatus `json:"status"`
	NewID  string          `json:"new_id,omitempty"` // set for copies
	Reason string          `json:"reason,omitempty"` // set for skips
}
