package models

import (
	"time"
)

// Folder is a named, owned, hierarchical container for journal entries and
// other folders. ParentID is NULL for root-level folders. The (user, parent,
// name) triple is unique, Explorer-style.
type Folder struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ParentID  *string   `json:"parent_id" db:"parent_id"` // NULL = root level
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"` // hex, e.g. "#ffffff"
	IsLocked  bool      `json:"is_locked" db:"is_locked"`
	IsHidden  bool      `json:"is_hidden" db:"is_hidden"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CloneInto returns a single-level copy of the folder (no subfolders or
// journals) placed under the given parent. Distinct from paste's recursive
// copy: the clone keeps color and flags but carries none of the contents.
func (f *Folder) CloneInto(parentID *string) *Folder {
	return &Folder{
		UserID:   f.UserID,
		ParentID: parentID,
		Name:     f.Name + "_copy",
		Color:    f.Color,
		IsLocked: f.IsLocked,
		IsHidden: f.IsHidden,
	}
}
