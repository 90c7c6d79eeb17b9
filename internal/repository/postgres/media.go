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

// PostgresMediaRepository implements the MediaRepository interface. Ownership
// checks join through the parent journal entry.
type PostgresMediaRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(config *RepositoryConfig) repositories.MediaRepository {
	return &PostgresMediaRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new media asset
func (r *PostgresMediaRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, journal_entry_id, file_url, file_type, caption, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING uploaded_at
	`, r.tables.MediaAssets)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		asset.ID,
		asset.JournalEntryID,
		asset.FileURL,
		asset.FileType,
		asset.Caption,
	).Scan(&asset.UploadedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("journal entry %s: %w", asset.JournalEntryID, domain.ErrNotFound)
		}
		return fmt.Errorf("create media asset: %w", err)
	}

	return nil
}

// GetByID retrieves an asset whose parent entry belongs to the user
func (r *PostgresMediaRepository) GetByID(ctx context.Context, id, userID string) (*models.MediaAsset, error) {
	query := fmt.Sprintf(`
		SELECT m.id, m.journal_entry_id, m.file_url, m.file_type, m.caption, m.uploaded_at
		FROM %s m
		JOIN %s j ON j.id = m.journal_entry_id
		WHERE m.id = $1 AND j.user_id = $2
	`, r.tables.MediaAssets, r.tables.Journals)

	var asset models.MediaAsset
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&asset.ID,
		&asset.JournalEntryID,
		&asset.FileURL,
		&asset.FileType,
		&asset.Caption,
		&asset.UploadedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("media asset %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get media asset: %w", err)
	}

	return &asset, nil
}

// ListByEntry lists assets attached to a journal entry
func (r *PostgresMediaRepository) ListByEntry(ctx context.Context, journalEntryID string) ([]models.MediaAsset, error) {
	query := fmt.Sprintf(`
		SELECT id, journal_entry_id, file_url, file_type, caption, uploaded_at
		FROM %s
		WHERE journal_entry_id = $1
		ORDER BY uploaded_at ASC
	`, r.tables.MediaAssets)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, journalEntryID)
	if err != nil {
		return nil, fmt.Errorf("list media assets: %w", err)
	}
	defer rows.Close()

	var assets []models.MediaAsset
	for rows.Next() {
		var asset models.MediaAsset
		err := rows.Scan(
			&asset.ID,
			&asset.JournalEntryID,
			&asset.FileURL,
			&asset.FileType,
			&asset.Caption,
			&asset.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan media asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media assets: %w", err)
	}

	return assets, nil
}

// Delete deletes an asset whose parent entry belongs to the user
func (r *PostgresMediaRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s m
		USING %s j
		WHERE m.id = $1 AND j.id = m.journal_entry_id AND j.user_id = $2
	`, r.tables.MediaAssets, r.tables.Journals)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete media asset: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("media asset %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountByUser returns how many assets the user has uploaded
func (r *PostgresMediaRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s m
		JOIN %s j ON j.id = m.journal_entry_id
		WHERE j.user_id = $1
	`, r.tables.MediaAssets, r.tables.Journals)

	var count int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count media assets: %w", err)
	}

	return count, nil
}

// PostgresComicRepository implements the ComicRepository interface
type PostgresComicRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewComicRepository creates a new comic repository
func NewComicRepository(config *RepositoryConfig) repositories.ComicRepository {
	return &PostgresComicRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new comic entry. The unique index on journal_entry_id
// enforces at most one comic per entry.
func (r *PostgresComicRepository) Create(ctx context.Context, comic *models.ComicEntry) error {
	if comic.ID == "" {
		comic.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, journal_entry_id, image_url, generation_prompt, generated_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING generated_at
	`, r.tables.Comics)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		comic.ID,
		comic.JournalEntryID,
		comic.ImageURL,
		comic.GenerationPrompt,
	).Scan(&comic.GeneratedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      "a comic for this journal entry already exists",
				ResourceType: "comic",
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("journal entry %s: %w", comic.JournalEntryID, domain.ErrNotFound)
		}
		return fmt.Errorf("create comic entry: %w", err)
	}

	return nil
}

// GetByEntry retrieves the comic for a journal entry
func (r *PostgresComicRepository) GetByEntry(ctx context.Context, journalEntryID string) (*models.ComicEntry, error) {
	query := fmt.Sprintf(`
		SELECT id, journal_entry_id, image_url, generation_prompt, generated_at
		FROM %s
		WHERE journal_entry_id = $1
	`, r.tables.Comics)

	var comic models.ComicEntry
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, journalEntryID).Scan(
		&comic.ID,
		&comic.JournalEntryID,
		&comic.ImageURL,
		&comic.GenerationPrompt,
		&comic.GeneratedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("comic for entry %s: %w", journalEntryID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get comic entry: %w", err)
	}

	return &comic, nil
}

// CountByUser returns how many comics the user has generated
func (r *PostgresComicRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s c
		JOIN %s j ON j.id = c.journal_entry_id
		WHERE j.user_id = $1
	`, r.tables.Comics, r.tables.Journals)

	var count int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comic entries: %w", err)
	}

	return count, nil
}
