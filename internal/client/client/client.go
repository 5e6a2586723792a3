package client

import (
	"context"

	"github.com/dmitrijs2005/studentsapi/internal/client/models"
)

type Client interface {
	Close() error
	LoggedIn() bool
	Ping(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, fields map[string]any) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, fields map[string]any) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) (*models.Student, error)
	ExportStudents(ctx context.Context) (*models.Export, error)
}
