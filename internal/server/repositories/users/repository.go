// Package users declares the account repository and its Postgres and
// in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/studentsapi/internal/server/models"
)

type Repository interface {
	// Create stores user and fills in ID and CreatedAt. A taken email is
	// common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
