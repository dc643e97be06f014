package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abhisek/skillpath/internal/identity"
)

const userIDKey = "userId"

// IdentityRepo reads and writes the cached user identity. The quiz
// path only ever reads; writes happen through the login/logout
// commands.
type IdentityRepo struct {
	db *sql.DB
}

var _ identity.Provider = (*IdentityRepo)(nil)

// UserID returns the stored user id, identity.ErrNotFound when absent.
func (r *IdentityRepo) UserID(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM credentials WHERE key = ?", userIDKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", identity.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read identity: %w", err)
	}
	return value, nil
}

// SetUserID stores the user id, replacing any previous one.
func (r *IdentityRepo) SetUserID(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id must not be empty")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, userIDKey, userID)
	if err != nil {
		return fmt.Errorf("store identity: %w", err)
	}
	return nil
}

// ClearUserID removes the stored user id. Clearing an empty store is
// not an error.
func (r *IdentityRepo) ClearUserID(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM credentials WHERE key = ?", userIDKey)
	if err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}
	return nil
}
