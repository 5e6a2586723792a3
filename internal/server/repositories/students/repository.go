// Package students declares the student record repository and its Postgres
// and in-memory implementations. Both enforce email uniqueness themselves
// and report a violation as common.ErrorConflict.
package students

import (
	"context"

	"github.com/dmitrijs2005/studentsapi/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, id int64) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	// List returns all students in id order.
	List(ctx context.Context) ([]*models.Student, error)
	Insert(ctx context.Context, s *models.Student) (*models.Student, error)
	// UpdateFields writes the set fields of f and returns the stored record.
	UpdateFields(ctx context.Context, id int64, f models.StudentFields) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}
