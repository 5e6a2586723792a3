package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studentsapi/internal/dbx"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/students"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/users"
)

// MemoryRepositoryManager hands out one shared in-memory repository per
// kind and ignores the DBTX argument. Nothing is persisted across restarts.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	sessions *sessions.MemoryRepository
	students *students.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		sessions: sessions.NewMemoryRepository(),
		students: students.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

func (m *MemoryRepositoryManager) Sessions(dbx.DBTX) sessions.Repository { return m.sessions }

func (m *MemoryRepositoryManager) Students(dbx.DBTX) students.Repository { return m.students }
