package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/studentsapi/internal/dbx"
	"github.com/dmitrijs2005/studentsapi/internal/server/config"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/students"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

func ptr[T any](v T) *T { return &v }

func testConfig() *config.Config {
	return &config.Config{BcryptCost: bcrypt.MinCost}
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// stubRepoManager serves the given repositories regardless of the handle.
type stubRepoManager struct {
	users    users.Repository
	sessions sessions.Repository
	students students.Repository
}

func (m *stubRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *stubRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *stubRepoManager) Sessions(dbx.DBTX) sessions.Repository        { return m.sessions }
func (m *stubRepoManager) Students(dbx.DBTX) students.Repository        { return m.students }

var _ repomanager.RepositoryManager = (*stubRepoManager)(nil)
