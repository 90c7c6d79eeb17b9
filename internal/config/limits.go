package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 100 to fit in PostgreSQL VARCHAR(100) and keep
	// Explorer-style listings readable.
	MaxFolderNameLength = 100

	// MaxJournalTitleLength is the maximum length for journal entry titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255).
	MaxJournalTitleLength = 255

	// MaxCharacterNameLength is the maximum length for character names.
	MaxCharacterNameLength = 100

	// MaxCaptionLength is the maximum length for media captions.
	MaxCaptionLength = 255

	// MaxPasteItems caps how many clipboard items one paste may carry.
	// Each item is its own transaction, so a huge paste would otherwise
	// hold the request open for a long time.
	MaxPasteItems = 200
)
