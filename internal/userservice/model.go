package userservice

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/common"
)

func NewUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

// upsert creates the user on first sign-in and refreshes the profile fields on later ones.
// Email is the identity key.
func (m *UserModel) upsert(ctx context.Context, identity *Identity) (*User, error) {
	query := `
		INSERT INTO users (name, email, photo_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, photo_url = EXCLUDED.photo_url, updated_at = NOW()
		RETURNING id, name, email, photo_url, created_at, updated_at`

	var u User
	err := m.db.QueryRowContext(ctx, query, identity.Name, identity.Email, identity.PhotoURL).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PhotoURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, common.DBError(err)
	}

	return &u, nil
}

func (m *UserModel) getByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, name, email, photo_url, created_at, updated_at
		FROM users
		WHERE id = $1`

	var u User
	err := m.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PhotoURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, common.DBError(err)
	}

	return &u, nil
}
