// Package sessions stores the server-side records of issued bearer tokens.
// Only the token digest is kept; see cryptox.HashToken.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/server/models"
)

type Repository interface {
	// Create records a session for userID. A nil expiresAt never expires.
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt *time.Time) error

	// Find returns the session with the given digest or common.ErrorNotFound.
	Find(ctx context.Context, tokenHash string) (*models.Session, error)

	// Delete removes the session. common.ErrorNotFound when nothing was
	// deleted, so of two concurrent deletes only one succeeds.
	Delete(ctx context.Context, tokenHash string) error
}
