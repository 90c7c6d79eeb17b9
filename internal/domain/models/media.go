package models

import (
	"time"
)

// FileType classifies a media asset attachment.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeDocument FileType = "document"
	FileTypeOther    FileType = "other"
)

// FileTypes lists the accepted file types for validation.
var FileTypes = []interface{}{
	FileTypeImage, FileTypeVideo, FileTypeAudio, FileTypeDocument, FileTypeOther,
}

// MediaAsset is an attachment on a journal entry. The blob itself lives in
// external storage; only the URL is recorded here. Deleting the journal
// entry cascades to its media assets.
type MediaAsset struct {
	ID             string    `json:"id" db:"id"`
	JournalEntryID string    `json:"journal_entry_id" db:"journal_entry_id"`
	FileURL        string    `json:"file_url" db:"file_url"`
	FileType       FileType  `json:"file_type" db:"file_type"`
	Caption        string    `json:"caption" db:"caption"`
	UploadedAt     time.Time `json:"uploaded_at" db:"uploaded_at"`
}

// ComicEntry is the AI-generated comic rendering of a journal entry. At most
// one comic exists per entry; it is deleted together with the entry.
type ComicEntry struct {
	ID               string    `json:"id" db:"id"`
	JournalEntryID   string    `json:"journal_entry_id" db:"journal_entry_id"`
	ImageURL         string    `json:"image_url" db:"image_url"`
	GenerationPrompt string    `json:"generation_prompt" db:"generation_prompt"`
	GeneratedAt      time.Time `json:"generated_at" db:"generated_at"`
}
