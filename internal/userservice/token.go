package userservice

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base32"
	"time"

	"github.com/google/uuid"
	"github.com/sushihentaime/blognest/internal/common"
)

func NewTokenModel(db *sql.DB) *TokenModel {
	return &TokenModel{db: db}
}

func hashToken(token string) []byte {
	hash := sha256.Sum256([]byte(token))
	return hash[:]
}

func newToken(userID uuid.UUID, ttl time.Duration, scope tokenScope) (*Token, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return nil, err
	}

	token := &Token{
		Plain:  base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes),
		UserID: userID,
		Expiry: time.Now().Add(ttl),
		Scope:  scope,
	}

	token.Hash = hashToken(token.Plain)

	return token, nil
}

func (m *TokenModel) insert(ctx context.Context, token *Token) error {
	query := `
		INSERT INTO tokens (hash, user_id, expiry, scope)
		VALUES ($1, $2, $3, $4)`

	_, err := m.db.ExecContext(ctx, query, token.Hash, token.UserID, token.Expiry, string(token.Scope))
	return common.DBError(err)
}

func (m *TokenModel) createToken(ctx context.Context, userID uuid.UUID, ttl time.Duration, scope tokenScope) (*Token, error) {
	token, err := newToken(userID, ttl, scope)
	if err != nil {
		return nil, err
	}

	err = m.insert(ctx, token)
	if err != nil {
		return nil, err
	}

	return token, nil
}

// getUser returns the owner of an unexpired token of the given scope.
func (m *TokenModel) getUser(ctx context.Context, scope tokenScope, hash []byte) (*User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.photo_url, u.created_at, u.updated_at
		FROM users u
		INNER JOIN tokens t ON u.id = t.user_id
		WHERE t.hash = $1 AND t.scope = $2 AND t.expiry > $3`

	var u User
	err := m.db.QueryRowContext(ctx, query, hash, string(scope), time.Now()).Scan(
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

// deleteAllForUser removes every token of the scope held by the user. Deleting nothing is not an error.
func (m *TokenModel) deleteAllForUser(ctx context.Context, userID uuid.UUID, scope tokenScope) error {
	query := `
		DELETE FROM tokens
		WHERE user_id = $1 AND scope = $2`

	_, err := m.db.ExecContext(ctx, query, userID, string(scope))
	return common.DBError(err)
}

func (m *TokenModel) deleteExpired(ctx context.Context) (int64, error) {
	res, err := m.db.ExecContext(ctx, `DELETE FROM tokens WHERE expiry <= $1`, time.Now())
	if err != nil {
		return 0, common.DBError(err)
	}

	return res.RowsAffected()
}
