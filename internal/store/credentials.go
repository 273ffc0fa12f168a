package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/shared"
)

// CredentialRepository persists [models.Credential] records.
//
// The identity adapter keeps at most one live record under
// [models.SessionRecordName]; sign-out soft-deletes it.
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository creates a new [CredentialRepository] with the given database connection
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts a new credential record with a generated ID.
func (r *CredentialRepository) Create(cred *models.Credential) error {
	id := shared.GenerateID()
	cred.SetID(id)

	if err := cred.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	p := cred.Principal()
	query := `
		INSERT INTO credentials (id, name, principal_id, display_name, email, avatar_url, token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, id, cred.Name(), p.ID, p.DisplayName, p.Email, p.AvatarURL, cred.Token(), cred.CreatedAt(), cred.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert credential: %w", err)
	}

	return nil
}

// Get retrieves a credential by ID, excluding soft-deleted records.
func (r *CredentialRepository) Get(id string) (*models.Credential, error) {
	return r.getBy("id", id)
}

// GetByName retrieves the live credential stored under the given record name.
// Returns (nil, nil) when no live record exists; startup restoration treats
// that as "no persisted session".
func (r *CredentialRepository) GetByName(name string) (*models.Credential, error) {
	cred, err := r.getBy("name", name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return cred, err
}

func (r *CredentialRepository) getBy(column, value string) (*models.Credential, error) {
	query := fmt.Sprintf(`
		SELECT id, name, principal_id, display_name, email, avatar_url, token, created_at, updated_at, deleted_at
		FROM credentials
		WHERE %s = ? AND deleted_at IS NULL
	`, column)

	var (
		credID      string
		name        string
		principalID string
		displayName string
		email       string
		avatarURL   string
		token       string
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := r.db.QueryRow(query, value).Scan(&credID, &name, &principalID, &displayName, &email, &avatarURL, &token, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		if column == "name" {
			return nil, err
		}
		return nil, fmt.Errorf("credential not found: %s", value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query credential: %w", err)
	}

	principal := models.Principal{
		ID:          principalID,
		DisplayName: displayName,
		Email:       email,
		AvatarURL:   avatarURL,
		Credential:  token,
	}

	cred := models.NewCredential(name, principal, token)
	cred.SetID(credID)
	cred.SetCreatedAt(createdAt)
	cred.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		cred.SetDeletedAt(&deletedAt.Time)
	}

	return cred, nil
}

// Update modifies an existing credential record.
func (r *CredentialRepository) Update(cred *models.Credential) error {
	if err := cred.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	cred.SetUpdatedAt(now)

	p := cred.Principal()
	query := `
		UPDATE credentials
		SET principal_id = ?, display_name = ?, email = ?, avatar_url = ?, token = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, p.ID, p.DisplayName, p.Email, p.AvatarURL, cred.Token(), now, cred.ID())
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("credential not found or already deleted: %s", cred.ID())
	}

	return nil
}

// Delete soft-deletes a credential by ID.
func (r *CredentialRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE credentials
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("credential not found or already deleted: %s", id)
	}

	return nil
}

// DeleteByName soft-deletes the live credential stored under the given record
// name. Deleting a name with no live record is not an error; sign-out must
// succeed regardless.
func (r *CredentialRepository) DeleteByName(name string) error {
	query := `
		UPDATE credentials
		SET deleted_at = ?
		WHERE name = ? AND deleted_at IS NULL
	`

	if _, err := r.db.Exec(query, time.Now(), name); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}

// List retrieves all live credentials matching the given criteria.
func (r *CredentialRepository) List(criteria map[string]any) ([]*models.Credential, error) {
	query := `
		SELECT id, name, principal_id, display_name, email, avatar_url, token, created_at, updated_at, deleted_at
		FROM credentials
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if principalID, ok := criteria["principal_id"].(string); ok && principalID != "" {
		query += " AND principal_id = ?"
		args = append(args, principalID)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query credentials: %w", err)
	}
	defer rows.Close()

	var creds []*models.Credential
	for rows.Next() {
		var (
			credID      string
			name        string
			principalID string
			displayName string
			email       string
			avatarURL   string
			token       string
			createdAt   time.Time
			updatedAt   time.Time
			deletedAt   sql.NullTime
		)

		err := rows.Scan(&credID, &name, &principalID, &displayName, &email, &avatarURL, &token, &createdAt, &updatedAt, &deletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}

		principal := models.Principal{
			ID:          principalID,
			DisplayName: displayName,
			Email:       email,
			AvatarURL:   avatarURL,
			Credential:  token,
		}

		cred := models.NewCredential(name, principal, token)
		cred.SetID(credID)
		cred.SetCreatedAt(createdAt)
		cred.SetUpdatedAt(updatedAt)
		if deletedAt.Valid {
			cred.SetDeletedAt(&deletedAt.Time)
		}

		creds = append(creds, cred)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return creds, nil
}
