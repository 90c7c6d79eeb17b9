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

// PostgresCharacterRepository implements the CharacterRepository interface
type PostgresCharacterRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(config *RepositoryConfig) repositories.CharacterRepository {
	return &PostgresCharacterRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new character
func (r *PostgresCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	if character.ID == "" {
		character.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name, description, relationship, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`, r.tables.Characters)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		character.ID,
		character.UserID,
		character.Name,
		character.Description,
		character.Relationship,
		character.AvatarURL,
	).Scan(&character.CreatedAt)

	if err != nil {
		return fmt.Errorf("create character: %w", err)
	}

	return nil
}

// GetByID retrieves a character by ID and owner
func (r *PostgresCharacterRepository) GetByID(ctx context.Context, id, userID string) (*models.Character, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, description, relationship, avatar_url, created_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Characters)

	var character models.Character
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&character.ID,
		&character.UserID,
		&character.Name,
		&character.Description,
		&character.Relationship,
		&character.AvatarURL,
		&character.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("character %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get character: %w", err)
	}

	return &character, nil
}

// Update persists name, description, relationship and avatar changes
func (r *PostgresCharacterRepository) Update(ctx context.Context, character *models.Character) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, relationship = $3, avatar_url = $4
		WHERE id = $5 AND user_id = $6
	`, r.tables.Characters)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		character.Name,
		character.Description,
		character.Relationship,
		character.AvatarURL,
		character.ID,
		character.UserID,
	)

	if err != nil {
		return fmt.Errorf("update character: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("character %s: %w", character.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete deletes a character and its assignments (FK cascade)
func (r *PostgresCharacterRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Characters)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("character %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByUser retrieves all of the user's characters
func (r *PostgresCharacterRepository) ListByUser(ctx context.Context, userID string) ([]models.Character, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, description, relationship, avatar_url, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY name ASC
	`, r.tables.Characters)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var characters []models.Character
	for rows.Next() {
		var character models.Character
		err := rows.Scan(
			&character.ID,
			&character.UserID,
			&character.Name,
			&character.Description,
			&character.Relationship,
			&character.AvatarURL,
			&character.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		characters = append(characters, character)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}

	return characters, nil
}

// PostgresAssignmentRepository implements the AssignmentRepository interface
type PostgresAssignmentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(config *RepositoryConfig) repositories.AssignmentRepository {
	return &PostgresAssignmentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create links a character to an entry. The unique index on
// (journal_entry_id, character_id) blocks double assignment.
func (r *PostgresAssignmentRepository) Create(ctx context.Context, assignment *models.CharacterAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, journal_entry_id, character_id, role)
		VALUES ($1, $2, $3, $4)
	`, r.tables.Assignments)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		assignment.ID,
		assignment.JournalEntryID,
		assignment.CharacterID,
		assignment.Role,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      "character already assigned to this entry",
				ResourceType: "character_assignment",
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("journal entry or character: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create character assignment: %w", err)
	}

	return nil
}

// ListByEntry lists assignments on a journal entry
func (r *PostgresAssignmentRepository) ListByEntry(ctx context.Context, journalEntryID string) ([]models.CharacterAssignment, error) {
	query := fmt.Sprintf(`
		SELECT id, journal_entry_id, character_id, role
		FROM %s
		WHERE journal_entry_id = $1
	`, r.tables.Assignments)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, journalEntryID)
	if err != nil {
		return nil, fmt.Errorf("list character assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.CharacterAssignment
	for rows.Next() {
		var assignment models.CharacterAssignment
		err := rows.Scan(
			&assignment.ID,
			&assignment.JournalEntryID,
			&assignment.CharacterID,
			&assignment.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("scan character assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate character assignments: %w", err)
	}

	return assignments, nil
}

// Exists reports whether the character is already assigned to the entry
func (r *PostgresAssignmentRepository) Exists(ctx context.Context, journalEntryID, characterID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s WHERE journal_entry_id = $1 AND character_id = $2
		)
	`, r.tables.Assignments)

	var exists bool
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, journalEntryID, characterID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check character assignment: %w", err)
	}

	return exists, nil
}
