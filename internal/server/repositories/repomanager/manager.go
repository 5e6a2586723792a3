// Package repomanager vends repository implementations for one storage
// backend. Every factory takes the handle the repository should run on, so a
// service picks per call between the pool and an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studentsapi/internal/dbx"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/students"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Students(db dbx.DBTX) students.Repository
}
