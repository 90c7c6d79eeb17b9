package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"inkwell/internal/domain"
	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
)

const journalColumns = "id, user_id, title, content, mood_tag, folder_id, is_locked, created_at, updated_at"

// PostgresJournalRepository implements the JournalRepository interface
type PostgresJournalRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(config *RepositoryConfig) repositories.JournalRepository {
	return &PostgresJournalRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func scanJournal(row interface{ Scan(...interface{}) error }, entry *models.JournalEntry) error {
	return row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Content,
		&entry.MoodTag,
		&entry.FolderID,
		&entry.IsLocked,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}

// Create creates a new journal entry
func (r *PostgresJournalRepository) Create(ctx context.Context, entry *models.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, title, content, mood_tag, folder_id, is_locked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`, r.tables.Journals)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Title,
		entry.Content,
		entry.MoodTag,
		entry.FolderID,
		entry.IsLocked,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("folder for journal entry: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create journal entry: %w", err)
	}

	return nil
}

// GetByID retrieves an entry by ID and owner. A foreign entry reads as
// not-found.
func (r *PostgresJournalRepository) GetByID(ctx context.Context, id, userID string) (*models.JournalEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, journalColumns, r.tables.Journals)

	var entry models.JournalEntry
	executor := GetExecutor(ctx, r.pool)
	if err := scanJournal(executor.QueryRow(ctx, query, id, userID), &entry); err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("journal entry %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get journal entry: %w", err)
	}

	return &entry, nil
}

// Update persists title, content, mood, folder and flag changes
func (r *PostgresJournalRepository) Update(ctx context.Context, entry *models.JournalEntry) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, content = $2, mood_tag = $3, folder_id = $4, is_locked = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING updated_at
	`, r.tables.Journals)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		entry.Title,
		entry.Content,
		entry.MoodTag,
		entry.FolderID,
		entry.IsLocked,
		entry.ID,
		entry.UserID,
	).Scan(&entry.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("journal entry %s: %w", entry.ID, domain.ErrNotFound)
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("folder for journal entry: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("update journal entry: %w", err)
	}

	return nil
}

// Delete deletes an entry. Media assets and the comic cascade with it.
func (r *PostgresJournalRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Journals)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("journal entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByUser retrieves all of the user's entries, newest first
func (r *PostgresJournalRepository) ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, journalColumns, r.tables.Journals)

	return r.list(ctx, query, userID)
}

// ListByFolder lists entries directly in a folder (folderID nil = unfiled)
func (r *PostgresJournalRepository) ListByFolder(ctx context.Context, folderID *string, userID string) ([]models.JournalEntry, error) {
	if folderID == nil {
		query := fmt.Sprintf(`
			SELECT %s
			FROM %s
			WHERE user_id = $1 AND folder_id IS NULL
			ORDER BY created_at DESC
		`, journalColumns, r.tables.Journals)
		return r.list(ctx, query, userID)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1 AND folder_id = $2
		ORDER BY created_at DESC
	`, journalColumns, r.tables.Journals)
	return r.list(ctx, query, userID, *folderID)
}

// ListLocked retrieves the user's locked entries
func (r *PostgresJournalRepository) ListLocked(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1 AND is_locked = TRUE
		ORDER BY created_at DESC
	`, journalColumns, r.tables.Journals)

	return r.list(ctx, query, userID)
}

// CountByUser returns how many entries the user owns
func (r *PostgresJournalRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s WHERE user_id = $1
	`, r.tables.Journals)

	var count int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count journal entries: %w", err)
	}

	return count, nil
}

func (r *PostgresJournalRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.JournalEntry, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var entry models.JournalEntry
		if err := scanJournal(rows, &entry); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}

	return entries, nil
}
