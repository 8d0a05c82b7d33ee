package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/classboard/classboard-api/internal/models"
)

// TokenRepository persists remember-me tokens.
type TokenRepository struct {
	db *sqlx.DB
}

// NewTokenRepository constructs a new token repository.
func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create stores a remember token.
func (r *TokenRepository) Create(ctx context.Context, token *models.RememberToken) error {
	const query = `INSERT INTO remember_tokens (id, teacher_id, secret_hash, expires_at, created_at, revoked)
		VALUES (:id, :teacher_id, :secret_hash, :expires_at, :created_at, :revoked)`
	if _, err := r.db.NamedExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("create remember token: %w", err)
	}
	return nil
}

// FindByID returns a remember token by its identifier.
func (r *TokenRepository) FindByID(ctx context.Context, id string) (*models.RememberToken, error) {
	const query = `SELECT id, teacher_id, secret_hash, expires_at, created_at, revoked, revoked_at FROM remember_tokens WHERE id = $1`
	var token models.RememberToken
	if err := r.db.GetContext(ctx, &token, query, id); err != nil {
		return nil, err
	}
	return &token, nil
}

// Revoke marks a remember token as revoked.
func (r *TokenRepository) Revoke(ctx context.Context, id string, revokedAt time.Time) error {
	const query = `UPDATE remember_tokens SET revoked = TRUE, revoked_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, revokedAt); err != nil {
		return fmt.Errorf("revoke remember token: %w", err)
	}
	return nil
}

// RevokeAllForTeacher revokes every live remember token for the teacher.
func (r *TokenRepository) RevokeAllForTeacher(ctx context.Context, teacherID int64, revokedAt time.Time) error {
	const query = `UPDATE remember_tokens SET revoked = TRUE, revoked_at = $2 WHERE teacher_id = $1 AND NOT revoked`
	if _, err := r.db.ExecContext(ctx, query, teacherID, revokedAt); err != nil {
		return fmt.Errorf("revoke remember tokens: %w", err)
	}
	return nil
}
